package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Services wrap them with a user-facing detail:
//
//	fmt.Errorf("%w: Password must be at least 6 characters", ErrValidation)
var (
	ErrValidation   = errors.New("invalid request")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

func invalid(msg string) error      { return fmt.Errorf("%w: %s", ErrValidation, msg) }
func notFound(msg string) error     { return fmt.Errorf("%w: %s", ErrNotFound, msg) }
func conflict(msg string) error     { return fmt.Errorf("%w: %s", ErrConflict, msg) }
func unauthorized(msg string) error { return fmt.Errorf("%w: %s", ErrUnauthorized, msg) }
func forbidden(msg string) error    { return fmt.Errorf("%w: %s", ErrForbidden, msg) }

// Detail returns the message a service attached to a sentinel, or the
// sentinel's own text.
func Detail(err, sentinel error) string {
	msg := err.Error()
	if d, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
		return d
	}
	return sentinel.Error()
}
