package gagyebu

import (
	"fmt"
	"strconv"
)

// MaxAmount is the largest amount a single record or budget may carry.
const MaxAmount = 999_999_999

// ParseAmount parses a record or budget amount: decimal digits only, no
// leading zero, value in [1, MaxAmount]. A single "0" is well formed but
// rejected as non-positive.
func ParseAmount(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("amount is empty: %w", ErrNotInteger)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("amount %q: %w", s, ErrNotInteger)
		}
	}
	if s == "0" {
		return 0, fmt.Errorf("amount %q: %w", s, ErrNonPositive)
	}
	if s[0] == '0' {
		return 0, fmt.Errorf("amount %q has a leading zero: %w", s, ErrNotInteger)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n > MaxAmount {
		return 0, fmt.Errorf("amount %q exceeds %d: %w", s, int64(MaxAmount), ErrTooLarge)
	}
	return n, nil
}
