package usecase

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInternal        = errors.New("internal error")
	ErrJobNotFound     = errors.New("job not found")
	ErrStudentNotFound = errors.New("student profile not found")
)
