package pass

import (
	"errors"
	"fmt"
	"strings"
)

// DecodeError represents a failure while decoding a pass document.
//
// Decode errors include:
//   - Tag mismatch: pass_class names a payload field that is absent
//   - Unknown variant: pass_class outside the closed set of five
//   - Strict shape: unexpected extra fields, or missing required fields
//   - Type mismatch: a field's JSON type does not match its declared type
//   - Depth exceeded: nesting beyond the decoder's configured maximum
//
// Every DecodeError carries the field trail from the document root to the
// offending value. Hard errors never yield partial trees.
type DecodeError struct {
	// Code identifies the error category.
	Code DecodeErrorCode

	// Message is a human-readable description.
	Message string

	// Path is the field trail from the document root, e.g.
	// ["SequencePass", "sequence", "1", "StandardPass", "allow_swaps"].
	Path []string
}

// DecodeErrorCode categorizes decode errors.
type DecodeErrorCode string

const (
	// ErrCodeTagMismatch indicates pass_class is present but the matching
	// payload field is missing or differently named.
	ErrCodeTagMismatch DecodeErrorCode = "TAG_MISMATCH"

	// ErrCodeUnknownVariant indicates a pass_class value outside the fixed
	// set of five outer discriminants.
	ErrCodeUnknownVariant DecodeErrorCode = "UNKNOWN_VARIANT"

	// ErrCodeStrictShape indicates unexpected extra fields, or missing
	// required fields within a known variant's payload.
	ErrCodeStrictShape DecodeErrorCode = "STRICT_SHAPE"

	// ErrCodeTypeMismatch indicates a field's JSON type does not match its
	// declared semantic type.
	ErrCodeTypeMismatch DecodeErrorCode = "TYPE_MISMATCH"

	// ErrCodeDepthExceeded indicates recursive nesting beyond the
	// configured maximum.
	ErrCodeDepthExceeded DecodeErrorCode = "DEPTH_EXCEEDED"
)

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if len(e.Path) > 0 {
		return fmt.Sprintf("%s: %s (at %s)", e.Code, e.Message, strings.Join(e.Path, "."))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsTagMismatch returns true if the error is a tag mismatch error.
// Uses errors.As to handle wrapped errors.
func IsTagMismatch(err error) bool { return hasCode(err, ErrCodeTagMismatch) }

// IsUnknownVariant returns true if the error is an unknown variant error.
func IsUnknownVariant(err error) bool { return hasCode(err, ErrCodeUnknownVariant) }

// IsStrictShape returns true if the error is a strict shape error.
func IsStrictShape(err error) bool { return hasCode(err, ErrCodeStrictShape) }

// IsTypeMismatch returns true if the error is a type mismatch error.
func IsTypeMismatch(err error) bool { return hasCode(err, ErrCodeTypeMismatch) }

// IsDepthExceeded returns true if the error is a depth exceeded error.
func IsDepthExceeded(err error) bool { return hasCode(err, ErrCodeDepthExceeded) }

func hasCode(err error, code DecodeErrorCode) bool {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// newDecodeError builds a DecodeError, copying the path so later appends by
// the decoder cannot mutate it.
func newDecodeError(code DecodeErrorCode, path []string, format string, args ...any) *DecodeError {
	return &DecodeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Path:    append([]string(nil), path...),
	}
}
