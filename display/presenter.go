package display

import (
	"fmt"
	"io"
	"strings"

	"weather-cli/models"
)

// ForecastRows is the number of forecast entries rendered: six 3-hour steps.
const ForecastRows = 6

// InsufficientDataError is returned when a forecast series is too short to
// fill the table.
type InsufficientDataError struct {
	Have int
	Want int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("forecast has %d entries, need at least %d", e.Have, e.Want)
}

// Options controls how output is styled.
type Options struct {
	// Color enables ANSI escapes in the full report and forecast table.
	// The status-bar line never carries escapes.
	Color bool
}

// Presenter renders weather data to a writer.
type Presenter struct {
	out  io.Writer
	opts Options
}

func NewPresenter(out io.Writer, opts Options) *Presenter {
	return &Presenter{out: out, opts: opts}
}

// FormatFahrenheit renders a temperature with one decimal and the unit.
func FormatFahrenheit(f float64) string {
	return fmt.Sprintf("%.1f°F", f)
}

// Current writes the one-line full report.
func (p *Presenter) Current(cw *models.CurrentWeather) error {
	_, err := io.WriteString(p.out, p.currentLine(cw)+"\n")
	return err
}

func (p *Presenter) currentLine(cw *models.CurrentWeather) string {
	place := []string{cw.DisplayName}
	if s := cw.State(); s != "" {
		place = append(place, s)
	}
	place = append(place, cw.CountryCode)

	c := p.opts.Color
	return fmt.Sprintf("Current weather in %s - %s %s - %s",
		paint(c, escBoldRed, strings.Join(place, ", ")),
		paint(c, escBoldGreen, cw.Condition),
		Glyph(cw.Condition),
		paint(c, escBoldYellow, FormatFahrenheit(cw.TemperatureF)))
}

// Bar writes a single unstyled line for status bars.
func (p *Presenter) Bar(cw *models.CurrentWeather) error {
	_, err := io.WriteString(p.out, BarLine(cw)+"\n")
	return err
}

// BarLine is the status-bar rendering of cw, without a trailing newline.
func BarLine(cw *models.CurrentWeather) string {
	return fmt.Sprintf("%s %s %s", cw.Condition, Glyph(cw.Condition), FormatFahrenheit(cw.TemperatureF))
}

// Forecast writes the forecast header and a table of the first ForecastRows
// entries of series. Nothing is written if the series is short or a
// timestamp cannot be parsed.
func (p *Presenter) Forecast(name string, series models.ForecastSeries) error {
	if len(series) < ForecastRows {
		return &InsufficientDataError{Have: len(series), Want: ForecastRows}
	}

	t := newTable("Time", "Temp (°F)", "Description")
	t.headerStyle = escBold
	t.colStyles = []string{escMagenta, escGreen, escRed}

	for _, point := range series[:ForecastRows] {
		when, err := Localize(point.TimestampUTC)
		if err != nil {
			return err
		}
		t.addRow(when, FormatFahrenheit(point.TemperatureF), Glyph(point.Condition)+" "+point.ConditionDetail)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Forecast for the next 18 hours in %s:\n", name)
	if err := t.render(&b, p.opts.Color); err != nil {
		return err
	}
	b.WriteString("\n")

	_, err := io.WriteString(p.out, b.String())
	return err
}

// PointSummary renders a forecast point compactly, e.g.
// "2024-03-01 18:00:00 🌧️ : 72.3°F".
func PointSummary(point models.ForecastPoint) string {
	return fmt.Sprintf("%s %s : %s", point.TimestampUTC, Glyph(point.Condition), FormatFahrenheit(point.TemperatureF))
}
