package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), ts)
}

func TestNewTimeStringFromString_Invalid(t *testing.T) {
	for _, s := range []string{"", "10", "10:60", "25:00", "ab:cd", "10:30:00"} {
		_, err := NewTimeStringFromString(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestTimeString_Validate_EndOfDay(t *testing.T) {
	// "24:00" допустимо как верхняя граница суток
	assert.NoError(t, TimeString("24:00").Validate())
	assert.Error(t, TimeString("24:01").Validate())
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), ts)
}

func TestTimeString_AddMinutes_ToEndOfDay(t *testing.T) {
	ts, err := TimeString("23:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), ts)
}

func TestTimeString_AddMinutes_PastEndOfDay(t *testing.T) {
	_, err := TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_SubMinutes_ClampsToMidnight(t *testing.T) {
	ts, err := TimeString("00:03").SubMinutes(10)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), ts)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("11:00").IsAfter("10:59"))
	assert.False(t, TimeString("10:59").IsAfter("10:59"))

	// Сравнение с верхней границей суток
	assert.True(t, TimeString("19:05").IsAfter("19:00"))
	assert.True(t, TimeString("24:00").IsAfter("23:59"))
}

func TestTimeString_MinutesUntil(t *testing.T) {
	mins, err := TimeString("10:00").MinutesUntil("11:30")
	require.NoError(t, err)
	assert.Equal(t, 90, mins)

	mins, err = TimeString("11:30").MinutesUntil("10:00")
	require.NoError(t, err)
	assert.Equal(t, -90, mins)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит как "HH:MM:SS"
	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("07:05:59")))
	assert.Equal(t, TimeString("07:05"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 7, 15, 14, 45, 12, 0, time.UTC)))
	assert.Equal(t, TimeString("14:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
