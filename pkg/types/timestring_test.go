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
		value   string
		wantErr bool
	}{
		{name: "valid morning", value: "08:00", wantErr: false},
		{name: "valid afternoon", value: "17:00", wantErr: false},
		{name: "valid midnight", value: "00:00", wantErr: false},
		{name: "non-canonical hour", value: "8:00", wantErr: true},
		{name: "missing minutes", value: "08", wantErr: true},
		{name: "with seconds", value: "08:00:00", wantErr: true},
		{name: "out of range hour", value: "25:00", wantErr: true},
		{name: "out of range minutes", value: "10:61", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "garbage", value: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TimeString(tt.value).Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9:30")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 6, 10, 14, 45, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:45"), NewTimeString(moment))
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("13:00"))
	assert.False(t, TimeString("13:00").IsBefore("08:00"))
	assert.True(t, TimeString("17:00").IsAfter("16:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		value   TimeString
		minutes int
		want    TimeString
	}{
		{name: "within hour", value: "08:00", minutes: 30, want: "08:30"},
		{name: "crosses hour", value: "10:45", minutes: 30, want: "11:15"},
		{name: "zero", value: "13:00", minutes: 0, want: "13:00"},
		{name: "wraps midnight", value: "23:30", minutes: 60, want: "00:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.value.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := TimeString("bad").AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("08:00").IsZero())
}
