package calendar

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinYear = 1
	MaxYear = 9999

	// DaysPerWeek is the number of weekday rows in a grid.
	DaysPerWeek = 7
)

// ErrOutOfRange is returned when a month falls outside MinYear..MaxYear.
var ErrOutOfRange = errors.New("month out of range")

// Date is a civil date without time of day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the civil date of t in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// MonthOf returns the month descriptor the date belongs to.
func (d Date) MonthOf() Month {
	return Month{Year: d.Year, Month: d.Month}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Month identifies a calendar month independent of any day.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth validates year and month and returns the descriptor.
func NewMonth(year int, month time.Month) (Month, error) {
	if month < time.January || month > time.December {
		return Month{}, fmt.Errorf("%w: month %d", ErrOutOfRange, int(month))
	}
	if year < MinYear || year > MaxYear {
		return Month{}, fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	}
	return Month{Year: year, Month: month}, nil
}

// First returns midnight UTC on the first day of the month.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Offset returns the number of empty cells before day 1, 0 when the 1st is a Monday.
func (m Month) Offset() int {
	return Weekday(m.First()) - 1
}

var daysInMonth = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Days returns the number of days in the month.
func (m Month) Days() int {
	if m.Month == time.February && IsLeapYear(m.Year) {
		return 29
	}
	return daysInMonth[m.Month-1]
}

// Add returns the month n positions away, rolling over year boundaries.
func (m Month) Add(n int) Month {
	idx := m.Year*12 + int(m.Month-1) + n
	year, month := idx/12, idx%12
	if month < 0 {
		year--
		month += 12
	}
	return Month{Year: year, Month: time.Month(month + 1)}
}

// Contains reports whether d lies in the month.
func (m Month) Contains(d Date) bool {
	return d.Year == m.Year && d.Month == m.Month
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Weekday returns the ISO weekday of t: 1 for Monday through 7 for Sunday.
func Weekday(t time.Time) int {
	return (int(t.Weekday())+6)%7 + 1
}

func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
