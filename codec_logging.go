package jsonvalue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// logError logs a failed codec or accessor operation. Caller mistakes are
// expected conditions and log at debug; anything else logs at error.
func (c *Codec) logError(operation, key string, size int, err error) {
	logger := c.logger.Load()
	if logger == nil || err == nil {
		return
	}

	errorType := errorCode(err)
	if c.config.EnableMetrics {
		c.metrics.RecordError(errorType)
	}

	level := slog.LevelError
	if IsUserError(err) || errors.Is(err, ErrSizeLimit) || errors.Is(err, ErrDepthLimit) {
		level = slog.LevelDebug
	}

	logger.LogAttrs(context.Background(), level, "JSON operation failed",
		slog.String("operation", operation),
		slog.String("key", sanitizeKey(key)),
		slog.Int("size", size),
		slog.String("error", sanitizeError(err, key)),
		slog.String("error_type", errorType),
		slog.String("codec_id", c.id()),
	)
}

// logFailure logs *errp as a failed accessor call on key when it is set.
// Backend failures from parse and serialize are logged where they occur.
func (v *Value) logFailure(op, key string, errp *error) {
	if *errp == nil {
		return
	}
	v.getCodec().logError(op, key, 0, *errp)
}

// errorCode maps an error onto its machine-readable code
func errorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidJSON):
		return ErrCodeInvalidJSON
	case errors.Is(err, ErrKeyNotFound):
		return ErrCodeKeyNotFound
	case errors.Is(err, ErrTypeMismatch):
		return ErrCodeTypeMismatch
	case errors.Is(err, ErrConversion):
		return ErrCodeConversion
	case errors.Is(err, ErrEmptyValue):
		return ErrCodeEmptyValue
	case errors.Is(err, ErrAmbiguousTarget):
		return ErrCodeAmbiguous
	case errors.Is(err, ErrInvalidArgument):
		return ErrCodeInvalidArg
	case errors.Is(err, ErrCycle):
		return ErrCodeCycle
	case errors.Is(err, ErrSizeLimit):
		return ErrCodeSizeLimit
	case errors.Is(err, ErrDepthLimit):
		return ErrCodeDepthLimit
	default:
		return ErrCodeUnknown
	}
}

// sanitizeKey keeps keys that look like credentials out of the logs
func sanitizeKey(key string) string {
	if len(key) > 100 {
		return truncateString(key, 100)
	}
	lowerKey := strings.ToLower(key)
	sensitivePatterns := []string{
		"password", "passwd", "pwd",
		"token", "bearer",
		"apikey", "api_key", "api-key",
		"secret", "credential",
		"authorization", "cookie",
	}
	for _, pattern := range sensitivePatterns {
		if strings.Contains(lowerKey, pattern) {
			return "[REDACTED_KEY]"
		}
	}
	return key
}

// sanitizeError bounds the length of logged error messages and keeps a
// redacted key out of them
func sanitizeError(err error, key string) string {
	if err == nil {
		return ""
	}
	errMsg := err.Error()
	if key != "" {
		if safe := sanitizeKey(key); safe != key {
			errMsg = strings.ReplaceAll(errMsg, key, safe)
		}
	}
	if len(errMsg) > 200 {
		return truncateString(errMsg, 200)
	}
	return errMsg
}

// truncateString truncates a string with ellipsis
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// id returns a unique identifier for this codec instance
func (c *Codec) id() string {
	return fmt.Sprintf("codec_%p", c)
}
