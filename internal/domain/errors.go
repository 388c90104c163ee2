package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode standardizes failure semantics across entity operations.
type ErrorCode string

const (
	// CodeValidation marks an invalid argument: nil required reference,
	// non-positive quantity, negative price or stock, blank text field.
	CodeValidation ErrorCode = "validation"
	// CodeInvariant marks an operation that would break a structural bound:
	// removing the last order item, unbinding a required owner, self-parenting.
	CodeInvariant ErrorCode = "invariant_violation"
	// CodeConflict marks duplicate or exclusive-membership violations.
	CodeConflict ErrorCode = "conflict"
	// CodeNotFound marks a missing lookup key or a missing persisted extent.
	CodeNotFound ErrorCode = "not_found"
	// CodeCorruptData marks persisted bytes that cannot be decoded.
	CodeCorruptData ErrorCode = "corrupt_data"
	CodeInternal    ErrorCode = "internal"
)

// Error is the canonical domain error wrapper.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds a domain error with explicit code + operation.
func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap annotates an existing error with domain error semantics.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return NewError(code, op, err.Error(), err)
}

// IsCode checks whether err (or a wrapped err) carries the given code.
func IsCode(err error, code ErrorCode) bool {
	var domErr *Error
	if !errors.As(err, &domErr) {
		return false
	}
	return domErr.Code == code
}

// CodeOf extracts the domain error code when available.
func CodeOf(err error) ErrorCode {
	var domErr *Error
	if !errors.As(err, &domErr) {
		return ""
	}
	return domErr.Code
}
