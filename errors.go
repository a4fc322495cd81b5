package jsonvalue

import (
	"errors"
	"fmt"

	"github.com/cybergodev/jsonvalue/internal"
)

// Core error definitions
var (
	// Input and lookup errors
	ErrInvalidJSON     = errors.New("invalid JSON format")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrKeyNotFound     = errors.New("key not found")
	ErrConversion      = errors.New("conversion failed")
	ErrEmptyValue      = errors.New("value holds no node")
	ErrAmbiguousTarget = errors.New("ambiguous target")
	ErrInvalidArgument = errors.New("invalid argument")

	// Structural errors
	ErrCycle      = errors.New("value would contain itself")
	ErrAllocation = errors.New("node allocation failed")

	// Limit-related errors
	ErrSizeLimit  = errors.New("size limit exceeded")
	ErrDepthLimit = errors.New("depth limit exceeded")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// ValueError represents a failed accessor call with essential context
type ValueError struct {
	Op      string `json:"op"`      // Operation that failed
	Key     string `json:"key"`     // Key involved, if any
	Message string `json:"message"` // Human-readable error message
	Err     error  `json:"err"`     // Underlying error
}

func (e *ValueError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("JSON %s failed at key '%s': %s", e.Op, e.Key, e.Message)
	}
	return fmt.Sprintf("JSON %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *ValueError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling
func (e *ValueError) Is(target error) bool {
	if target == nil {
		return false
	}

	if targetErr, ok := target.(*ValueError); ok {
		return e.Op == targetErr.Op && e.Err == targetErr.Err
	}

	return errors.Is(e.Err, target)
}

func newValueError(op, key, message string, err error) error {
	return &ValueError{
		Op:      op,
		Key:     key,
		Message: message,
		Err:     err,
	}
}

func emptyError(op, key string) error {
	return newValueError(op, key, "value holds no node", ErrEmptyValue)
}

func notObjectError(op, key string, kind Kind) error {
	return newValueError(op, key, fmt.Sprintf("expected object, found %s", kind), ErrTypeMismatch)
}

func notFoundError(op, key string) error {
	return newValueError(op, key, "key not present", ErrKeyNotFound)
}

// backendError maps a backend failure onto the public taxonomy, keeping the
// backend message.
func backendError(op, key string, err error) error {
	var target error
	switch {
	case errors.Is(err, internal.ErrSyntax), errors.Is(err, internal.ErrBadNumber):
		target = ErrInvalidJSON
	case errors.Is(err, internal.ErrTooLarge):
		target = ErrSizeLimit
	case errors.Is(err, internal.ErrTooDeep):
		target = ErrDepthLimit
	case errors.Is(err, internal.ErrCycle):
		target = ErrCycle
	case errors.Is(err, internal.ErrNotObject), errors.Is(err, internal.ErrNotArray):
		target = ErrTypeMismatch
	case errors.Is(err, internal.ErrNilNode), errors.Is(err, internal.ErrReleased):
		target = ErrEmptyValue
	default:
		target = ErrAllocation
	}
	return newValueError(op, key, err.Error(), target)
}

// IsNotFound reports whether err means the requested key was absent
func IsNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}

// IsTypeMismatch reports whether err means a node had the wrong JSON type
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

// IsUserError determines if an error is caused by caller input rather than
// resource limits
func IsUserError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidJSON),
		errors.Is(err, ErrKeyNotFound),
		errors.Is(err, ErrTypeMismatch),
		errors.Is(err, ErrConversion),
		errors.Is(err, ErrEmptyValue),
		errors.Is(err, ErrAmbiguousTarget),
		errors.Is(err, ErrInvalidArgument),
		errors.Is(err, ErrCycle):
		return true
	default:
		return false
	}
}
