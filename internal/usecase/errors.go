package usecase

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrMissingPrimaryInfo = errors.New("missing primary info")
	ErrTimeout            = errors.New("analysis timed out")
	ErrInvalidConfig      = errors.New("invalid analysis config")
)
