package scheduling

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

var (
	// ErrMalformedTime reports a clock string that is not a valid "HH:MM".
	ErrMalformedTime = errors.New("malformed clock time")
	// ErrTimeOutOfRange reports a clock arithmetic result outside
	// [00:00, 24:00). The spa never operates past midnight, so results are
	// never wrapped.
	ErrTimeOutOfRange = errors.New("clock time out of range")
)

// ToMinutes parses an "HH:MM" clock string into minutes since midnight.
func ToMinutes(clock string) (int, error) {
	hourStr, minuteStr, found := strings.Cut(clock, ":")
	if !found {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, clock)
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, clock)
	}

	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, clock)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, clock)
	}

	return hour*60 + minute, nil
}

// FromMinutes formats minutes since midnight as "HH:MM". The value must be
// within [0, 1440).
func FromMinutes(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// AddMinutes returns the clock time delta minutes after (or before, for
// negative delta) the given one.
func AddMinutes(clock string, delta int) (string, error) {
	total, err := ToMinutes(clock)
	if err != nil {
		return "", err
	}

	total += delta
	if total < 0 || total >= minutesPerDay {
		return "", fmt.Errorf("%w: %s%+d minutes", ErrTimeOutOfRange, clock, delta)
	}

	return FromMinutes(total), nil
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. This is the single overlap primitive used by the
// whole engine; buffer semantics are expressed by widening intervals before
// calling it, never by special cases here.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
