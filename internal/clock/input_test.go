package clock

import (
	"errors"
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantError bool
	}{
		// 24-hour format
		{name: "24h evening", input: "22:30", want: "22:30"},
		{name: "24h morning", input: "09:45", want: "09:45"},
		{name: "24h midnight", input: "00:00", want: "00:00"},
		{name: "24h noon", input: "12:00", want: "12:00"},
		{name: "24h single digit hour", input: "9:05", want: "09:05"},

		// 12-hour format
		{name: "12h PM", input: "10:30PM", want: "22:30"},
		{name: "12h AM", input: "09:45AM", want: "09:45"},
		{name: "12h with space", input: "10:30 PM", want: "22:30"},
		{name: "12h lowercase", input: "9:45 am", want: "09:45"},
		{name: "12h midnight", input: "12:00AM", want: "00:00"},
		{name: "12h noon", input: "12:15PM", want: "12:15"},

		// blank means no value
		{name: "empty", input: "", want: ""},
		{name: "spaces only", input: "   ", want: ""},

		// errors
		{name: "no minutes", input: "22:", wantError: true},
		{name: "no separator", input: "2230", wantError: true},
		{name: "wrong separator", input: "22.30", wantError: true},
		{name: "extra characters", input: "22:30xyz", wantError: true},
		{name: "hour out of range", input: "25:00", wantError: true},
		{name: "minute out of range", input: "22:60", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInput(tt.input)
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))

				oopsErr, ok := oops.AsOops(err)
				require.True(t, ok)
				assert.Contains(t, oopsErr.Hint(), "Valid formats")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
