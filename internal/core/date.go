package core

import (
	"errors"
	"fmt"
	"time"
)

// Date is a pure calendar date. It deliberately carries no time.Time:
// month and year comparisons read the literal stored fields, so a
// timezone shift can never move a transaction into a neighboring day.
type Date struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31
}

var ErrInvalidDate = errors.New("invalid date")

// ParseDate parses an ISO-8601 calendar date ("YYYY-MM-DD").
// Anything with a time or zone component is rejected. Every non-dash
// byte must be an ASCII digit: no signs, no spaces, no normalization of
// sloppy input.
func ParseDate(s string) (Date, error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return Date{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, s)
	}
	for i := 0; i < len(s); i++ {
		if i == 4 || i == 7 {
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return Date{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, s)
		}
	}
	d := Date{
		Year:  digits(s[0:4]),
		Month: digits(s[5:7]),
		Day:   digits(s[8:10]),
	}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// digits converts an already-verified ASCII digit string to an int.
func digits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// NewDate builds a Date from its calendar fields.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// Today returns the current calendar date in local time. Used as the
// form default and as the reference date for monthly summaries.
func Today() Date {
	now := time.Now()
	return Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

func (d Date) Validate() error {
	if d.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	if d.Year < 1 || d.Year > 9999 {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidDate, d.Year)
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidDate, d.Month)
	}
	if d.Day < 1 || d.Day > daysInMonth(d.Year, d.Month) {
		return fmt.Errorf("%w: day %d out of range for %04d-%02d", ErrInvalidDate, d.Day, d.Year, d.Month)
	}
	return nil
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// String renders the date back in ISO-8601 form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Compare orders dates chronologically: -1 if d is before o, 0 if equal,
// +1 if d is after o.
func (d Date) Compare(o Date) int {
	a := d.Year*10000 + d.Month*100 + d.Day
	b := o.Year*10000 + o.Month*100 + o.Day
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SameMonth reports whether both dates fall in the same calendar year
// and month, compared as plain integers.
func (d Date) SameMonth(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	default:
		return 0
	}
}
