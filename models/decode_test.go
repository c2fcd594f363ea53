package models

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("Failed to read fixture %s: %v", name, err)
	}
	return data
}

func TestDecodeCurrent(t *testing.T) {
	cw, err := DecodeCurrent(readFixture(t, "current.json"))
	if err != nil {
		t.Fatalf("DecodeCurrent() error = %v", err)
	}

	want := &CurrentWeather{
		DisplayName:     "Pittsburgh",
		CountryCode:     "US",
		Condition:       "Rain",
		ConditionDetail: "light rain",
		TemperatureF:    72.34,
		Coord:           Coord{Lat: 40.4406, Lon: -79.9959},
	}
	if diff := cmp.Diff(want, cw); diff != "" {
		t.Errorf("DecodeCurrent() mismatch (-want +got):\n%s", diff)
	}
	if cw.State() != "" {
		t.Errorf("Expected empty state, got %q", cw.State())
	}
}

func TestDecodeCurrentWithState(t *testing.T) {
	body := []byte(`{"name":"Springfield","sys":{"country":"US","state":"IL"},"main":{"temp":40},"weather":[{"main":"Snow","description":"light snow"}]}`)

	cw, err := DecodeCurrent(body)
	if err != nil {
		t.Fatalf("DecodeCurrent() error = %v", err)
	}
	if cw.State() != "IL" {
		t.Errorf("Expected state IL, got %q", cw.State())
	}
	if cw.Coord != (Coord{}) {
		t.Errorf("Expected zero coord when absent, got %+v", cw.Coord)
	}
}

func TestDecodeCurrentErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "Invalid JSON",
			body:  `{"name":`,
			field: "",
		},
		{
			name:  "Missing name",
			body:  `{"sys":{"country":"US"},"main":{"temp":1},"weather":[{"main":"Clear","description":"clear sky"}]}`,
			field: "name",
		},
		{
			name:  "Missing country",
			body:  `{"name":"X","sys":{},"main":{"temp":1},"weather":[{"main":"Clear","description":"clear sky"}]}`,
			field: "sys.country",
		},
		{
			name:  "Missing temperature",
			body:  `{"name":"X","sys":{"country":"US"},"main":{},"weather":[{"main":"Clear","description":"clear sky"}]}`,
			field: "main.temp",
		},
		{
			name:  "Empty weather list",
			body:  `{"name":"X","sys":{"country":"US"},"main":{"temp":1},"weather":[]}`,
			field: "weather[0]",
		},
		{
			name:  "Missing condition category",
			body:  `{"name":"X","sys":{"country":"US"},"main":{"temp":1},"weather":[{"description":"clear sky"}]}`,
			field: "weather[0].main",
		},
		{
			name:  "Temperature has wrong type",
			body:  `{"name":"X","sys":{"country":"US"},"main":{"temp":"warm"},"weather":[{"main":"Clear","description":"clear sky"}]}`,
			field: "main.temp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCurrent([]byte(tt.body))
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("Expected *DecodeError, got %T (%v)", err, err)
			}
			if decodeErr.Shape != ShapeCurrent {
				t.Errorf("Expected shape %q, got %q", ShapeCurrent, decodeErr.Shape)
			}
			if decodeErr.Field != tt.field {
				t.Errorf("Expected field %q, got %q", tt.field, decodeErr.Field)
			}
		})
	}
}

func TestDecodeForecast(t *testing.T) {
	series, err := DecodeForecast(readFixture(t, "forecast.json"))
	if err != nil {
		t.Fatalf("DecodeForecast() error = %v", err)
	}

	if len(series) != 7 {
		t.Fatalf("Expected 7 forecast points, got %d", len(series))
	}

	want := ForecastPoint{
		TimestampUTC:    "2024-03-01 18:00:00",
		Condition:       "Clouds",
		ConditionDetail: "overcast clouds",
		TemperatureF:    50.0,
	}
	if diff := cmp.Diff(want, series[0]); diff != "" {
		t.Errorf("First point mismatch (-want +got):\n%s", diff)
	}

	// Delivery order is preserved.
	if series[6].TimestampUTC != "2024-03-02 12:00:00" {
		t.Errorf("Expected last point at 2024-03-02 12:00:00, got %s", series[6].TimestampUTC)
	}
}

func TestDecodeForecastErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "Missing list",
			body:  `{"cod":"200"}`,
			field: "list",
		},
		{
			name:  "Missing timestamp",
			body:  `{"list":[{"main":{"temp":1},"weather":[{"main":"Rain","description":"rain"}]}]}`,
			field: "list[0].dt_txt",
		},
		{
			name:  "Missing description in second entry",
			body:  `{"list":[{"dt_txt":"2024-03-01 18:00:00","main":{"temp":1},"weather":[{"main":"Rain","description":"rain"}]},{"dt_txt":"2024-03-01 21:00:00","main":{"temp":1},"weather":[{"main":"Rain"}]}]}`,
			field: "list[1].weather[0].description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeForecast([]byte(tt.body))
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("Expected *DecodeError, got %T (%v)", err, err)
			}
			if decodeErr.Field != tt.field {
				t.Errorf("Expected field %q, got %q", tt.field, decodeErr.Field)
			}
			if !errors.Is(err, ErrMissingField) {
				t.Errorf("Expected error to wrap ErrMissingField, got %v", err)
			}
		})
	}
}

func TestDecodeForecastEmptyList(t *testing.T) {
	series, err := DecodeForecast([]byte(`{"list":[]}`))
	if err != nil {
		t.Fatalf("DecodeForecast() error = %v", err)
	}
	if len(series) != 0 {
		t.Errorf("Expected empty series, got %d points", len(series))
	}
}
