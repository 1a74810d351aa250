package triage

import "errors"

var (
	ErrTradeNotFound = errors.New("trade not found")
)
