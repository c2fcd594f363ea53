package datasource

import (
	"context"

	"weather-cli/models"
)

// WeatherProvider is an interface for services that can fetch current weather data
type WeatherProvider interface {
	// GetWeather fetches current weather for a location
	GetWeather(ctx context.Context, location string) (*models.CurrentWeather, error)

	// Name returns the provider's name
	Name() string
}

// ForecastSource is an interface for services that can fetch weather forecasts
type ForecastSource interface {
	// FetchForecast fetches the 3-hour step forecast list for a location
	FetchForecast(ctx context.Context, location string) (models.ForecastSeries, error)

	// Name returns the source's name
	Name() string
}

// Provider is a source of both current weather and forecasts.
type Provider interface {
	WeatherProvider
	ForecastSource
}
