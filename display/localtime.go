package display

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"weather-cli/models"
)

// DisplayOffset is the fixed UTC offset forecast times are shown in. It is
// not adjusted for daylight saving.
const DisplayOffset = -4 * time.Hour

// LocalTimeLayout renders as "MM-DD at HH:MM", 24-hour clock.
const LocalTimeLayout = "01-02 at 15:04"

var displayZone = time.FixedZone("UTC-4", int(DisplayOffset/time.Second))

// errTrailingText rejects input time.Parse tolerates past the layout, such as
// fractional seconds.
var errTrailingText = errors.New("extra text after seconds field")

// ParseError reports a forecast timestamp that does not match
// models.ForecastTimeLayout.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid forecast timestamp %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Localize converts a "YYYY-MM-DD HH:MM:SS" UTC timestamp to the display
// offset and formats it as "MM-DD at HH:MM".
func Localize(utc string) (string, error) {
	trimmed := strings.TrimSpace(utc)
	t, err := time.ParseInLocation(models.ForecastTimeLayout, trimmed, time.UTC)
	if err != nil {
		return "", &ParseError{Input: utc, Err: err}
	}
	if t.Format(models.ForecastTimeLayout) != trimmed {
		return "", &ParseError{Input: utc, Err: errTrailingText}
	}
	return t.In(displayZone).Format(LocalTimeLayout), nil
}
