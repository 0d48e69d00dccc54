package gagyebu

import (
	"fmt"
	"regexp"
	"time"
)

// DateFormat is the format used to represent dates as strings, ISO-8601.
const DateFormat = "2006-01-02"

// MonthFormat is the format used to represent calendar months as strings.
const MonthFormat = "2006-01"

// Ledger dates are confined to this range; anything outside is rejected as
// malformed input, matching the file format contract.
const (
	MinYear = 1900
	MaxYear = 2099
)

// Date represents a calendar date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the calendar month the date belongs to.
func (d Date) Month() Month { return Month{d.y, d.m} }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date as YYYY-MM-DD.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current wall-clock date. Validators never call it
// themselves; the current date is always injected by the caller so that
// the future-date rule stays testable.
func Today() Date { return NewDate(time.Now().Date()) }

var dateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate parses a strict YYYY-MM-DD date. The year must be within
// [MinYear, MaxYear] and the date must exist on the calendar: "2024-02-30"
// is rejected, not normalized.
func ParseDate(s string) (Date, error) {
	if !dateRE.MatchString(s) {
		return Date{}, fmt.Errorf("invalid date %q, want format %q: %w", s, DateFormat, ErrInvalidDate)
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, ErrInvalidDate)
	}
	d := NewDate(t.Date())
	if d.y < MinYear || d.y > MaxYear {
		return Date{}, fmt.Errorf("date %q out of range [%d, %d]: %w", s, MinYear, MaxYear, ErrInvalidDate)
	}
	return d, nil
}

// ValidateEntryDate parses a ledger-entry date and additionally rejects
// dates after today. The current date is injected for testability.
func ValidateEntryDate(s string, today Date) (Date, error) {
	d, err := ParseDate(s)
	if err != nil {
		return Date{}, err
	}
	if d.After(today) {
		return Date{}, fmt.Errorf("date %q is after %s: %w", s, today, ErrFutureDate)
	}
	return d, nil
}

// MustDate is like ParseDate but panics on error. For tests and constants.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Month represents a calendar month, the granularity of budget entries.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	d := NewDate(year, month, 1)
	return Month{d.y, d.m}
}

// String formats the month as YYYY-MM.
func (m Month) String() string {
	return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC).Format(MonthFormat)
}

// IsZero returns true if the month is the zero value.
func (m Month) IsZero() bool { return m.y == 0 && m.m == 0 }

// Contains reports whether the date d falls within the month.
func (m Month) Contains(d Date) bool { return m.y == d.y && m.m == d.m }

// Before reports whether the month m is before x.
func (m Month) Before(x Month) bool {
	return m.y < x.y || (m.y == x.y && m.m < x.m)
}

var monthRE = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ParseMonth parses a strict YYYY-MM month within the ledger year range.
func ParseMonth(s string) (Month, error) {
	if !monthRE.MatchString(s) {
		return Month{}, fmt.Errorf("invalid month %q, want format %q: %w", s, MonthFormat, ErrInvalidDate)
	}
	t, err := time.Parse(MonthFormat, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, ErrInvalidDate)
	}
	if t.Year() < MinYear || t.Year() > MaxYear {
		return Month{}, fmt.Errorf("month %q out of range [%d, %d]: %w", s, MinYear, MaxYear, ErrInvalidDate)
	}
	return Month{t.Year(), t.Month()}, nil
}

// MustMonth is like ParseMonth but panics on error. For tests.
func MustMonth(s string) Month {
	m, err := ParseMonth(s)
	if err != nil {
		panic(err.Error())
	}
	return m
}
