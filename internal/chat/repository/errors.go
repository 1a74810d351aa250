package repository

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToSave   = errors.New("failed to save record")
	ErrFailedToDelete = errors.New("failed to delete record")
)
