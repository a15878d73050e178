package calendar

// Cell is one grid position. A zero Day marks an empty cell.
type Cell struct {
	Day int
}

func (c Cell) Empty() bool { return c.Day == 0 }

// Grid holds one row of cells per weekday, Monday first.
type Grid [][]Cell

// BuildGrid lays dayCount days out over columns rows after offset empty cells.
// Virtual cell i goes to row i%columns, so reading the rows round-robin
// yields offset empties followed by 1..dayCount.
func BuildGrid(dayCount, offset, columns int) Grid {
	total := offset + dayCount
	g := make(Grid, columns)
	for r := range g {
		g[r] = make([]Cell, 0, rowLen(total, r, columns))
	}
	for i := 0; i < total; i++ {
		var c Cell
		if i >= offset {
			c.Day = i - offset + 1
		}
		g[i%columns] = append(g[i%columns], c)
	}
	return g
}

// rowLen is ceil((total-r)/columns), clamped at zero.
func rowLen(total, r, columns int) int {
	if total <= r {
		return 0
	}
	return (total - r + columns - 1) / columns
}

// Grid returns the Monday-first layout of the month.
func (m Month) Grid() Grid {
	return BuildGrid(m.Days(), m.Offset(), DaysPerWeek)
}

// Days reads the grid back in calendar order, skipping empty cells.
func (g Grid) Days() []int {
	var days []int
	for col := 0; ; col++ {
		found := false
		for _, row := range g {
			if col >= len(row) {
				continue
			}
			found = true
			if !row[col].Empty() {
				days = append(days, row[col].Day)
			}
		}
		if !found {
			return days
		}
	}
}
