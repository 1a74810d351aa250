package knowledge

import "errors"

var (
	ErrEmptyQuery = errors.New("query is empty")
)
