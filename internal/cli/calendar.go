package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/teuram/calendar/internal/calendar"
	"github.com/teuram/calendar/internal/render"
)

// monthsShown is the current month plus the one after it.
const monthsShown = 2

// driverDeps bundles the clock and styling for testability.
type driverDeps struct {
	now    func() time.Time
	styler render.Styler
}

func defaultDriverDeps() driverDeps {
	return driverDeps{
		now:    time.Now,
		styler: render.NewStyled(),
	}
}

func runCalendar(cmd *cobra.Command, deps driverDeps) error {
	// Captured once so both months agree on today.
	today := calendar.DateOf(deps.now())

	months, err := calendar.Months(today.MonthOf(), monthsShown)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, m := range months {
		if err := render.Month(out, m, today, deps.styler); err != nil {
			return err
		}
	}
	return nil
}
