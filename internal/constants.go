package internal

// Limits applied by the backend when the caller supplies none

const (
	MaxNestingDepth = 200              // Maximum JSON nesting depth accepted by Parse
	MaxInputSize    = 64 * 1024 * 1024 // Maximum input size accepted by Parse
)
