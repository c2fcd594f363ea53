package datasource

import (
	"context"
	"fmt"

	"weather-cli/models"

	"golang.org/x/time/rate"
)

// RateLimitedProvider wraps a Provider so that its current-weather and
// forecast requests share a single request budget.
type RateLimitedProvider struct {
	provider Provider
	limiter  *rate.Limiter
	name     string
}

var _ Provider = (*RateLimitedProvider)(nil)

// NewRateLimitedProvider creates a rate limited provider.
// rps is the maximum requests per second allowed (can be fractional for less than 1 request per second)
// burst is the maximum burst size allowed
func NewRateLimitedProvider(provider Provider, rps float64, burst int) *RateLimitedProvider {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// GetWeather fetches weather data, respecting rate limits
func (r *RateLimitedProvider) GetWeather(ctx context.Context, location string) (*models.CurrentWeather, error) {
	// Wait for rate limiter permission or context cancellation
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.GetWeather(ctx, location)
}

// FetchForecast fetches forecast data, respecting rate limits
func (r *RateLimitedProvider) FetchForecast(ctx context.Context, location string) (models.ForecastSeries, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.FetchForecast(ctx, location)
}

// Name returns the provider name
func (r *RateLimitedProvider) Name() string {
	return r.name
}
