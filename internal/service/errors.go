package service

import "errors"

var ErrNotFound = errors.New("not found")

var (
	ErrValidation       = errors.New("validation")
	ErrOutOfStock       = errors.New("out of stock")
	ErrAlreadyDelivered = errors.New("already delivered")
)
