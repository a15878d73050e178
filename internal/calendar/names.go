package calendar

import "time"

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// WeekdayAbbrevs labels grid rows, Monday first.
var WeekdayAbbrevs = [DaysPerWeek]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// MonthName returns the English name of a month (January is 1).
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}
