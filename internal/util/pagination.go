package util

const (
	DefaultLimit = 100
	MaxLimit     = 100
)

// Clamp normalizes offset/limit pagination params. Negative skip becomes 0,
// a non-positive or oversized limit falls back to DefaultLimit.
func Clamp(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return skip, limit
}
