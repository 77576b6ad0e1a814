package service

import "errors"

var (
	ErrValidation         = errors.New("invalid input")
	ErrConflict           = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("not allowed")
)
