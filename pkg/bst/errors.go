package bst

import "github.com/pkg/errors"

var (
	ErrOrderViolation = errors.New("bst order violation")
	ErrSizeMismatch   = errors.New("bst size mismatch")
)
