package kml

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidBool        = errors.New("invalid boolean")
	ErrInvalidColor       = errors.New("invalid color")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidNumber      = errors.New("invalid number")
	ErrInvalidAngle       = errors.New("angle out of range")
	ErrInvalidDate        = errors.New("invalid date")
)

// FormatError reports a leaf value whose text could not be converted.
type FormatError struct {
	Kind    error
	Literal string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: %q", e.Kind, e.Literal)
}

func (e *FormatError) Unwrap() error {
	return e.Kind
}

func formatError(kind error, literal string) error {
	return &FormatError{Kind: kind, Literal: literal}
}
