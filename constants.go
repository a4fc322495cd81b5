package jsonvalue

import "github.com/cybergodev/jsonvalue/internal"

const (
	// Size and depth limits
	DefaultMaxJSONSize     = 10 * 1024 * 1024
	DefaultMaxNestingDepth = 50
	MaxAllowedJSONSize     = internal.MaxInputSize
	MaxAllowedNestingDepth = internal.MaxNestingDepth

	// DefaultLimit is the compatibility sentinel for "no limit" on string
	// collection accessors. See LimitFromInt.
	DefaultLimit = -1

	// Metrics
	DefaultMetricsNamespace = "jsonvalue"
)

// Error codes for machine-readable error identification
const (
	ErrCodeInvalidJSON  = "ERR_INVALID_JSON"
	ErrCodeKeyNotFound  = "ERR_KEY_NOT_FOUND"
	ErrCodeTypeMismatch = "ERR_TYPE_MISMATCH"
	ErrCodeConversion   = "ERR_CONVERSION"
	ErrCodeEmptyValue   = "ERR_EMPTY_VALUE"
	ErrCodeAmbiguous    = "ERR_AMBIGUOUS_TARGET"
	ErrCodeInvalidArg   = "ERR_INVALID_ARGUMENT"
	ErrCodeCycle        = "ERR_CYCLE"
	ErrCodeSizeLimit    = "ERR_SIZE_LIMIT"
	ErrCodeDepthLimit   = "ERR_DEPTH_LIMIT"
	ErrCodeUnknown      = "ERR_UNKNOWN"
)
