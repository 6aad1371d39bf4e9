package domain

import "errors"

var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrInvalidStep    = errors.New("invalid action step")
	ErrAlreadyRunning = errors.New("another autokey instance is running")
)
