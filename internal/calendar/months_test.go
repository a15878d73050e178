package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonths(t *testing.T) {
	tests := []struct {
		name  string
		start Month
		n     int
		want  []Month
	}{
		{
			name:  "current and next",
			start: Month{2024, time.February},
			n:     2,
			want:  []Month{{2024, time.February}, {2024, time.March}},
		},
		{
			name:  "december rollover",
			start: Month{2025, time.December},
			n:     2,
			want:  []Month{{2025, time.December}, {2026, time.January}},
		},
		{
			name:  "long month start",
			start: Month{2024, time.January},
			n:     3,
			want:  []Month{{2024, time.January}, {2024, time.February}, {2024, time.March}},
		},
		{
			name:  "single",
			start: Month{2024, time.May},
			n:     1,
			want:  []Month{{2024, time.May}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Months(tt.start, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonths_Empty(t *testing.T) {
	got, err := Months(Month{2024, time.May}, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMonths_OutOfRange(t *testing.T) {
	_, err := Months(Month{MaxYear, time.December}, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Months(Month{2024, 13}, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestMonths_AgreesWithAdd(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			start := Month{Year: year, Month: month}
			got, err := Months(start, 3)
			require.NoError(t, err)
			assert.Equal(t, []Month{start, start.Add(1), start.Add(2)}, got, start.String())
		}
	}
}

func TestMonths_LastRepresentableMonth(t *testing.T) {
	got, err := Months(Month{MaxYear, time.November}, 2)
	require.NoError(t, err)
	assert.Equal(t, []Month{{MaxYear, time.November}, {MaxYear, time.December}}, got)
}
