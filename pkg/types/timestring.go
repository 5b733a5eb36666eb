// Package types contains small shared value types.
package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeFormat is the wire format of TimeString values.
const TimeFormat = "15:04"

// ErrInvalidTimeString is returned when a string is not a valid "HH:MM" time.
var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

// TimeString represents a wall-clock time of day as "HH:MM".
type TimeString string

// NewTimeString builds a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value is a well-formed "HH:MM" time.
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

func (t TimeString) String() string {
	return string(t)
}

// HourMinute returns the hour and minute components.
func (t TimeString) HourMinute() (int, int, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour(), parsed.Minute(), nil
}

// AddMinutes returns the time shifted forward by m minutes, wrapping at 24h.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return TimeString(parsed.Add(time.Duration(m) * time.Minute).Format(TimeFormat)), nil
}

// IsBefore reports whether t is earlier in the day than other.
// Comparison is lexicographic, which is correct for zero-padded "HH:MM".
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}
