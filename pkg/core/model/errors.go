package model

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrWeakPassword   = errors.New("password too short")
	ErrDuplicateEmail = errors.New("an account with this email already exists")
	ErrValidation     = errors.New("validation failed")
)
