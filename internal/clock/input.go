package clock

import (
	"errors"
	"strings"
	"time"

	"github.com/samber/oops"
)

// ErrInvalidInput is wrapped by ParseInput errors.
var ErrInvalidInput = errors.New("invalid time format")

// ValidFormats describes the layouts ParseInput accepts.
const ValidFormats = "Valid formats:\n" +
	"• 24-hour format: HH:MM (e.g., '23:30', '09:45')\n" +
	"• 12-hour format: HH:MM[AM|PM] (e.g., '11:30PM', '9:45 AM')"

var inputLayouts = []string{"15:04", "3:04PM", "3:04 PM", "03:04PM", "03:04 PM"}

// ParseInput accepts a user-typed time in either 24-hour or 12-hour form and
// returns its canonical "HH:MM" value. Blank input returns an empty value.
func ParseInput(s string) (string, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return "", nil
	}

	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Format(FromClock(t.Hour(), t.Minute())), nil
		}
	}

	return "", oops.
		In(errDomain).
		With("input", s).
		Hint(ValidFormats).
		Wrapf(ErrInvalidInput, "%q", s)
}
