package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Response shapes decoded by this package.
const (
	ShapeCurrent  = "current weather"
	ShapeForecast = "forecast"
)

// DecodeError reports a response body that does not match the expected shape.
type DecodeError struct {
	Shape string
	Field string // empty when the body is not valid JSON at all
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("failed to decode %s response: %v", e.Shape, e.Err)
	}
	return fmt.Sprintf("failed to decode %s response: field %q: %v", e.Shape, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ErrMissingField is wrapped by DecodeError when a required field is absent.
var ErrMissingField = errors.New("required field missing")

// Wire structs use pointers so that absent fields can be told apart from
// zero values.
type wireMain struct {
	Temp *float64 `json:"temp"`
}

type wireCondition struct {
	Main        *string `json:"main"`
	Description *string `json:"description"`
}

type wireCurrent struct {
	Coord *Coord  `json:"coord"`
	Name  *string `json:"name"`
	Sys   *struct {
		Country *string `json:"country"`
		State   *string `json:"state"`
	} `json:"sys"`
	Main    *wireMain       `json:"main"`
	Weather []wireCondition `json:"weather"`
}

type wireForecastEntry struct {
	DtTxt   *string         `json:"dt_txt"`
	Main    *wireMain       `json:"main"`
	Weather []wireCondition `json:"weather"`
}

type wireForecast struct {
	List *[]wireForecastEntry `json:"list"`
}

// DecodeCurrent parses a /weather response body.
func DecodeCurrent(body []byte) (*CurrentWeather, error) {
	var resp wireCurrent
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, unmarshalError(ShapeCurrent, err)
	}

	missing := func(field string) error {
		return &DecodeError{Shape: ShapeCurrent, Field: field, Err: ErrMissingField}
	}

	if resp.Name == nil {
		return nil, missing("name")
	}
	if resp.Sys == nil || resp.Sys.Country == nil {
		return nil, missing("sys.country")
	}
	if resp.Main == nil || resp.Main.Temp == nil {
		return nil, missing("main.temp")
	}
	// Only the first condition entry is authoritative.
	cond, field := firstCondition(resp.Weather, "weather")
	if field != "" {
		return nil, missing(field)
	}

	cw := &CurrentWeather{
		DisplayName:     *resp.Name,
		CountryCode:     *resp.Sys.Country,
		RegionState:     resp.Sys.State,
		Condition:       *cond.Main,
		ConditionDetail: *cond.Description,
		TemperatureF:    *resp.Main.Temp,
	}
	if resp.Coord != nil {
		cw.Coord = *resp.Coord
	}
	return cw, nil
}

// DecodeForecast parses a /forecast response body.
func DecodeForecast(body []byte) (ForecastSeries, error) {
	var resp wireForecast
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, unmarshalError(ShapeForecast, err)
	}
	if resp.List == nil {
		return nil, &DecodeError{Shape: ShapeForecast, Field: "list", Err: ErrMissingField}
	}

	series := make(ForecastSeries, 0, len(*resp.List))
	for i, item := range *resp.List {
		prefix := fmt.Sprintf("list[%d]", i)
		missing := func(field string) error {
			return &DecodeError{Shape: ShapeForecast, Field: prefix + "." + field, Err: ErrMissingField}
		}

		if item.DtTxt == nil {
			return nil, missing("dt_txt")
		}
		if item.Main == nil || item.Main.Temp == nil {
			return nil, missing("main.temp")
		}
		cond, field := firstCondition(item.Weather, "weather")
		if field != "" {
			return nil, missing(field)
		}

		series = append(series, ForecastPoint{
			TimestampUTC:    *item.DtTxt,
			Condition:       *cond.Main,
			ConditionDetail: *cond.Description,
			TemperatureF:    *item.Main.Temp,
		})
	}
	return series, nil
}

// firstCondition returns weather[0], or the name of the first missing field.
func firstCondition(conds []wireCondition, name string) (wireCondition, string) {
	if len(conds) == 0 {
		return wireCondition{}, name + "[0]"
	}
	c := conds[0]
	if c.Main == nil {
		return c, name + "[0].main"
	}
	if c.Description == nil {
		return c, name + "[0].description"
	}
	return c, ""
}

func unmarshalError(shape string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &DecodeError{Shape: shape, Field: typeErr.Field, Err: err}
	}
	return &DecodeError{Shape: shape, Err: err}
}
