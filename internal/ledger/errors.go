package ledger

import (
	"errors"
	"fmt"
)

// Kind classifies ledger failures so the boundary can map them to
// transport-level status codes.
type Kind int

const (
	// KindNotFound means the referenced entity ID is absent.
	KindNotFound Kind = iota + 1
	// KindConflict means a duplicate ID or a delete blocked by a reference.
	KindConflict
	// KindValidation means a foreign ID does not exist or a field is malformed.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is a ledger failure with a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound returns a KindNotFound error.
func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict returns a KindConflict error.
func Conflict(format string, args ...any) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Validation returns a KindValidation error.
func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or 0 if err is not a ledger error.
func KindOf(err error) Kind {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.Kind
	}
	return 0
}

// IsKind reports whether err (or anything it wraps) is a ledger error of kind k.
func IsKind(err error, k Kind) bool {
	return KindOf(err) == k
}
