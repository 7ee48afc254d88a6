package model

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date with no time-of-day component. It marshals to
// JSON as a "2006-01-02" string.
type Date time.Time

const dateLayout = "2006-01-02"

// NewDate returns the Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Today returns the current date in the local time zone.
func Today() Date {
	year, month, day := time.Now().Date()
	return NewDate(year, month, day)
}

// ParseDate parses a "2006-01-02" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("failed to parse date %q: %w", s, err)
	}
	return Date(t), nil
}

// DateOf truncates a time to its calendar date.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// String returns the date formatted as 2006-01-02.
func (d Date) String() string {
	return time.Time(d).Format(dateLayout)
}

// Time returns the date as a time.Time at midnight UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// Equal reports whether two dates are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.String() == other.String()
}

// Before reports whether d is before other.
func (d Date) Before(other Date) bool {
	return time.Time(d).Before(time.Time(other))
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. Both plain
// dates and RFC3339 timestamps are accepted; only the date portion of a
// timestamp is kept.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	pattern := time.RFC3339
	if len(value) == len(dateLayout) {
		pattern = dateLayout
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return fmt.Errorf("failed to parse date %q: %w", value, err)
	}

	*d = DateOf(t)
	return nil
}
