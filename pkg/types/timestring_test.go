package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   TimeString
		wantErr error
	}{
		{name: "valid morning", value: "09:30"},
		{name: "midnight", value: "00:00"},
		{name: "last minute", value: "23:59"},
		{name: "missing colon", value: "0930", wantErr: ErrInvalidFormat},
		{name: "too short", value: "9:30", wantErr: ErrInvalidFormat},
		{name: "hour out of range", value: "24:00", wantErr: ErrOutOfRange},
		{name: "minute out of range", value: "12:60", wantErr: ErrOutOfRange},
		{name: "not numeric", value: "ab:cd", wantErr: ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.value.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 570, TimeString("09:30").Minutes())
	assert.Equal(t, 23*60+59, TimeString("23:59").Minutes())
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	got, err = TimeString("10:00").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), got)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	got := TimeString("14:45").OnDate(date)
	assert.Equal(t, time.Date(2026, 9, 7, 14, 45, 0, 0, time.UTC), got)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 7, 8, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("08:05"), ts)

	parsed, err := NewTimeStringFromString("17:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("17:00"), parsed)

	_, err = NewTimeStringFromString("17-00")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
