package service

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrValidation        = errors.New("validation")         // 400
	ErrNotFound          = errors.New("not found")          // 404
	ErrInsufficientStock = errors.New("not enough stock")   // 400
	ErrEmptyCart         = errors.New("cart is empty")      // 400
	ErrForbidden         = errors.New("forbidden")          // 403
	ErrConflict          = errors.New("conflict")           // 409
)

// Identity is the authenticated caller as handed over by the auth
// middleware: id, display name snapshot and role.
type Identity struct {
	UserID uuid.UUID
	Name   string
	Role   string
}

func (i Identity) IsAdmin() bool {
	return i.Role == "admin"
}
