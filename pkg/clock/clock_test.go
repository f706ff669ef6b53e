package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-07-15", want: "2024-07-15"},
		{in: " 2024-07-15 ", want: "2024-07-15"},
		{in: "2024-07-15T00:00:00Z", want: "2024-07-15"},
		{in: "2024-02-30", wantErr: true},
		{in: "15/07/2024", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeDate(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "09:00", want: "09:00"},
		{in: "9:00", want: "09:00"},
		{in: "09:00:00", want: "09:00"},
		{in: "2:30PM", want: "14:30"},
		{in: "2:30 PM", want: "14:30"},
		{in: "25:00", wantErr: true},
		{in: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeTime(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeekday(t *testing.T) {
	day, err := Weekday("2024-07-15")
	require.NoError(t, err)
	assert.Equal(t, "Monday", day)

	_, err = Weekday("Monday")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestToday(t *testing.T) {
	_, err := ParseDate(Today())
	assert.NoError(t, err)
}
