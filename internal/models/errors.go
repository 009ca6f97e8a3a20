package models

import (
	"errors"
)

var (
	ErrItemNotFound = errors.New("models: item not found")
	ErrInvalidItem  = errors.New("models: invalid item")
)
