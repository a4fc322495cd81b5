package jsonvalue

import "strconv"

// Limit caps the number of elements a string collection accessor visits.
// The zero Limit means no cap.
type Limit struct {
	n int
}

// NoLimit returns a Limit without a cap
func NoLimit() Limit {
	return Limit{}
}

// LimitOf returns a Limit capping at n elements. n <= 0 means no cap.
func LimitOf(n int) Limit {
	if n <= 0 {
		return Limit{}
	}
	return Limit{n: n}
}

// LimitFromInt converts an integer limit as used by older callers:
// DefaultLimit and any value <= 0 mean no cap.
func LimitFromInt(n int) Limit {
	if n == DefaultLimit {
		return NoLimit()
	}
	return LimitOf(n)
}

// Max returns the cap and whether one is set
func (l Limit) Max() (int, bool) {
	return l.n, l.n > 0
}

// IsUnlimited reports whether l has no cap
func (l Limit) IsUnlimited() bool {
	return l.n <= 0
}

// Int returns the cap, DefaultLimit when there is none
func (l Limit) Int() int {
	if l.IsUnlimited() {
		return DefaultLimit
	}
	return l.n
}

// take returns how many of size elements fall under the cap
func (l Limit) take(size int) int {
	if n, ok := l.Max(); ok && n <= size {
		return n
	}
	return size
}

func (l Limit) String() string {
	if l.IsUnlimited() {
		return "unlimited"
	}
	return strconv.Itoa(l.n)
}
