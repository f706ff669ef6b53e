// Package clock normalizes the date and time-of-day strings exchanged at the
// service boundary. Dates are "2006-01-02" and times are zero-padded "15:04".
package clock

import (
	"errors"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTime = errors.New("invalid time format, use HH:MM")
)

// accepted time-of-day shapes, most common first
var timeLayouts = []string{TimeLayout, "15:04:05", "3:04", "3:04PM", "3:04 PM"}

// NormalizeDate parses s and returns it in DateLayout.
func NormalizeDate(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

// ParseDate parses a calendar date. A trailing time component
// ("2024-07-15T00:00:00Z") is tolerated and dropped.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, 'T'); i == len(DateLayout) {
		s = s[:i]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// NormalizeTime parses s and returns it in TimeLayout, so "9:00" and
// "09:00:00" both become "09:00".
func NormalizeTime(s string) (string, error) {
	t, err := ParseTime(s)
	if err != nil {
		return "", err
	}
	return t.Format(TimeLayout), nil
}

// ParseTime parses a time of day. The returned value lives on 0000-01-01.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidTime
}

// Weekday returns the English weekday name of a canonical date.
func Weekday(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.Weekday().String(), nil
}

// Today returns the current date in DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}
