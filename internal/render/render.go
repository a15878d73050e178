package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/teuram/calendar/internal/calendar"
)

const (
	cellWidth    = 2
	headerIndent = "     "
)

// Month writes the header, the seven weekday rows and a trailing blank line for m.
// The cell for today is passed through st when today falls in m.
func Month(w io.Writer, m calendar.Month, today calendar.Date, st Styler) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s%s %04d\n", headerIndent, calendar.MonthName(m.Month), m.Year)

	for r, row := range m.Grid() {
		b.WriteString(calendar.WeekdayAbbrevs[r])
		for _, c := range row {
			b.WriteByte(' ')
			b.WriteString(cell(c, m, today, st))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing %s: %w", m, err)
	}
	return nil
}

func cell(c calendar.Cell, m calendar.Month, today calendar.Date, st Styler) string {
	if c.Empty() {
		return pad("", cellWidth)
	}
	payload := pad(strconv.Itoa(c.Day), cellWidth)
	if IsToday(m, c.Day, today) {
		return st.Highlight(payload)
	}
	return payload
}

// IsToday reports whether day of m is the given date.
func IsToday(m calendar.Month, day int, today calendar.Date) bool {
	return m.Contains(today) && today.Day == day
}

// pad right-justifies s to width visible columns.
func pad(s string, width int) string {
	n := width - lipgloss.Width(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(" ", n) + s
}
