package entity

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotFound           = errors.New("record not found")
	ErrEmptyPatch         = errors.New("no fields provided for update")
)
