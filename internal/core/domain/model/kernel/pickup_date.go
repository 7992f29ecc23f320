package kernel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"kakanin/internal/pkg/errs"
	"kakanin/internal/pkg/guard"
)

const (
	// PickupDateLayout is the wire and form format of a pickup date.
	PickupDateLayout = "2006-01-02"

	MinPickupYear = 1
	MaxPickupYear = 9999
)

var ErrPickupDateIsNotConstructed = errors.New(
	"PickupDate must be created via NewPickupDate, PickupDateFromTime, or ParsePickupDate",
)

// PickupDate is the calendar date a buyer collects an order. It carries no time
// of day and no zone.
//
// A constructed PickupDate is always a real calendar date with a year of at most
// four digits, so Key always fits in eight decimal digits.
type PickupDate struct {
	year  int
	month int
	day   int

	guard guard.ConstructorGuard
}

// NewPickupDate validates year, month and day and returns the date.
// Impossible dates such as 2023-02-30 are rejected rather than normalised.
func NewPickupDate(year, month, day int) (PickupDate, error) {
	if year < MinPickupYear || year > MaxPickupYear {
		return PickupDate{}, errs.NewValueIsOutOfRangeError("year", year, MinPickupYear, MaxPickupYear)
	}
	if month < 1 || month > 12 {
		return PickupDate{}, errs.NewValueIsOutOfRangeError("month", month, 1, 12)
	}
	if last := daysIn(year, time.Month(month)); day < 1 || day > last {
		return PickupDate{}, errs.NewValueIsOutOfRangeError("day", day, 1, last)
	}

	return PickupDate{
		year:  year,
		month: month,
		day:   day,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// PickupDateFromTime takes the calendar date of t in t's own location.
func PickupDateFromTime(t time.Time) (PickupDate, error) {
	y, m, d := t.Date()
	return NewPickupDate(y, int(m), d)
}

// ParsePickupDate parses a "YYYY-MM-DD" string as submitted by the order form.
func ParsePickupDate(s string) (PickupDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PickupDate{}, errs.NewValueIsRequiredError("pickup date")
	}
	t, err := time.Parse(PickupDateLayout, s)
	if err != nil {
		return PickupDate{}, errs.NewValueIsInvalidErrorWithCause("pickup date", err)
	}
	return PickupDateFromTime(t)
}

// Validate returns ErrPickupDateIsNotConstructed for a zero value.
func (d PickupDate) Validate() error {
	return d.guard.Validate(ErrPickupDateIsNotConstructed)
}

func (d PickupDate) Year() int {
	return d.year
}

func (d PickupDate) Month() int {
	return d.month
}

func (d PickupDate) Day() int {
	return d.day
}

// Key composes the date into year*10000 + month*100 + day, e.g. 2024-03-07 -> 20240307.
// Ordering keys numerically orders dates chronologically.
func (d PickupDate) Key() int {
	return d.year*10000 + d.month*100 + d.day
}

// Time returns midnight UTC of the date.
func (d PickupDate) Time() time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC)
}

// IsEqual reports whether both values denote the same calendar date.
func (d PickupDate) IsEqual(other PickupDate) bool {
	return d.year == other.year && d.month == other.month && d.day == other.day
}

// Before reports whether d is strictly earlier than other.
func (d PickupDate) Before(other PickupDate) bool {
	return d.Key() < other.Key()
}

func (d PickupDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
