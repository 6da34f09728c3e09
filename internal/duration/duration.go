// Package duration converts human-readable slide durations such as "15m" or
// "3600" into whole seconds.
package duration

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidDuration is returned when a string has no parseable leading quantity.
var ErrInvalidDuration = errors.New("invalid duration")

// Unit multipliers in seconds.
const (
	Second = 1
	Minute = 60 * Second
	Hour   = 60 * Minute
	Day    = 24 * Hour
)

// durationPattern matches a positive amount, optionally followed by a single
// whitespace character and a unit letter. Anything after the match is ignored.
// RE2's \s is ASCII-only; the class extends it to Unicode whitespace.
var durationPattern = regexp.MustCompile(`^([1-9][0-9]*)([\s\x{1c}-\x{1f}\x{85}\x{2028}\x{2029}\p{Zs}]?([dDhHmMsS])\w*)?`)

// Parse returns the number of seconds described by s.
// A missing unit means seconds.
func Parse(s string) (int, error) {
	match := durationPattern.FindStringSubmatch(s)
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}

	amount, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidDuration, s, err)
	}

	var multiplier int
	switch strings.ToLower(match[3]) {
	case "d":
		multiplier = Day
	case "h":
		multiplier = Hour
	case "m":
		multiplier = Minute
	case "s", "":
		multiplier = Second
	}

	if amount > math.MaxInt/multiplier {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidDuration, s)
	}

	return amount * multiplier, nil
}

// Format renders seconds the way slideshow documents expect them, e.g. "3600.0".
func Format(seconds int) string {
	return strconv.Itoa(seconds) + ".0"
}
