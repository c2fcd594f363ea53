package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weather-cli/models"
)

const (
	// DefaultBaseURL is the OpenWeatherMap 2.5 API root.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
	// DefaultTimeout bounds each request when Options.Timeout is unset.
	DefaultTimeout = 10 * time.Second

	units = "imperial"
)

// Options configures an OpenWeatherMapProvider.
type Options struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// OpenWeatherMapProvider implements both WeatherProvider and ForecastSource interfaces
type OpenWeatherMapProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ Provider = (*OpenWeatherMapProvider)(nil)

// NewOpenWeatherMapProvider creates a new OpenWeatherMap provider
func NewOpenWeatherMapProvider(opts Options) *OpenWeatherMapProvider {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &OpenWeatherMapProvider{
		apiKey:     opts.APIKey,
		baseURL:    baseURL,
		httpClient: client,
	}
}

// Name returns the provider name
func (p *OpenWeatherMapProvider) Name() string {
	return "OpenWeatherMap"
}

// GetWeather fetches current weather for a location
func (p *OpenWeatherMapProvider) GetWeather(ctx context.Context, location string) (*models.CurrentWeather, error) {
	body, err := p.get(ctx, "weather", location)
	if err != nil {
		return nil, err
	}
	return models.DecodeCurrent(body)
}

// FetchForecast fetches the 5-day/3-hour forecast for a location
func (p *OpenWeatherMapProvider) FetchForecast(ctx context.Context, location string) (models.ForecastSeries, error) {
	body, err := p.get(ctx, "forecast", location)
	if err != nil {
		return nil, err
	}
	return models.DecodeForecast(body)
}

// get issues one GET against an endpoint and returns the body of a 200 response.
func (p *OpenWeatherMapProvider) get(ctx context.Context, endpoint, location string) ([]byte, error) {
	params := url.Values{}
	params.Add("q", location)
	params.Add("appid", p.apiKey)
	params.Add("units", units)
	reqURL := fmt.Sprintf("%s/%s?%s", p.baseURL, endpoint, params.Encode())
	safeURL := redact(reqURL, url.QueryEscape(p.apiKey))

	log.Printf("Making OpenWeatherMap %s request to: %s", endpoint, safeURL)

	// Create request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Execute request
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: safeURL, Err: redactErr(err, p.apiKey)}
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: safeURL, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	// Check for error status code
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: apiMessage(body)}
	}

	log.Printf("OpenWeatherMap %s response: %d bytes", endpoint, len(body))
	return body, nil
}

// apiMessage extracts the "message" of an OpenWeatherMap error body such as
// {"cod":"404","message":"city not found"}.
func apiMessage(body []byte) string {
	var errResp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return strings.TrimSpace(string(body))
}

// redactErr strips the API key from *url.Error messages, which embed the
// full request URL.
func redactErr(err error, apiKey string) error {
	if urlErr, ok := err.(*url.Error); ok {
		return &url.Error{
			Op:  urlErr.Op,
			URL: redact(urlErr.URL, url.QueryEscape(apiKey)),
			Err: urlErr.Err,
		}
	}
	return err
}
