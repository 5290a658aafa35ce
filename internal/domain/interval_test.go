package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInterval(t *testing.T) {
	interval, err := NewInterval("10:00", 60)
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: "10:00", End: "11:00"}, interval)
}

func TestNewInterval_InvalidDuration(t *testing.T) {
	_, err := NewInterval("10:00", 0)
	assert.Error(t, err)

	_, err = NewInterval("10:00", -30)
	assert.Error(t, err)
}

func TestNewInterval_OverflowsDay(t *testing.T) {
	_, err := NewInterval("23:30", 60)
	assert.Error(t, err)
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        Interval
		b        Interval
		overlaps bool
	}{
		{
			name:     "identical intervals",
			a:        Interval{Start: "10:00", End: "11:00"},
			b:        Interval{Start: "10:00", End: "11:00"},
			overlaps: true,
		},
		{
			name:     "partial overlap",
			a:        Interval{Start: "10:00", End: "11:00"},
			b:        Interval{Start: "10:30", End: "11:30"},
			overlaps: true,
		},
		{
			name:     "containment",
			a:        Interval{Start: "09:00", End: "12:00"},
			b:        Interval{Start: "10:00", End: "11:00"},
			overlaps: true,
		},
		{
			name:     "touching boundaries do not overlap",
			a:        Interval{Start: "10:00", End: "11:00"},
			b:        Interval{Start: "11:00", End: "12:00"},
			overlaps: false,
		},
		{
			name:     "touching boundaries reversed",
			a:        Interval{Start: "11:00", End: "12:00"},
			b:        Interval{Start: "10:00", End: "11:00"},
			overlaps: false,
		},
		{
			name:     "disjoint",
			a:        Interval{Start: "07:00", End: "08:00"},
			b:        Interval{Start: "09:00", End: "10:00"},
			overlaps: false,
		},
		{
			name:     "one minute overlap",
			a:        Interval{Start: "10:00", End: "11:00"},
			b:        Interval{Start: "10:59", End: "12:00"},
			overlaps: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_Padded(t *testing.T) {
	interval := Interval{Start: "10:00", End: "11:00"}

	padded, err := interval.Padded(5)
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: "09:55", End: "11:05"}, padded)
}

func TestInterval_Padded_ZeroBuffer(t *testing.T) {
	interval := Interval{Start: "10:00", End: "11:00"}

	padded, err := interval.Padded(0)
	require.NoError(t, err)
	assert.Equal(t, interval, padded)
}

func TestInterval_Padded_ClampsToDayBounds(t *testing.T) {
	interval := Interval{Start: "00:03", End: "23:58"}

	padded, err := interval.Padded(10)
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: "00:00", End: "24:00"}, padded)
}

func TestInterval_PaddedExtendsConflictWindow(t *testing.T) {
	// Брони, разделенные ровно буфером, после расширения пересекаются
	existing := Interval{Start: "09:00", End: "10:00"}

	window := Interval{Start: "10:00", End: "11:00"}
	padded, err := window.Padded(5)
	require.NoError(t, err)

	assert.False(t, window.Overlaps(existing))
	assert.True(t, padded.Overlaps(existing))
}
