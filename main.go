package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-cli/config"
	"weather-cli/datasource"
	"weather-cli/display"

	"github.com/mattn/go-isatty"
)

const version = "v1.1.0"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// cliOptions holds the parsed command line.
type cliOptions struct {
	location    string
	forecast    bool
	bar         bool
	verbose     bool
	showVersion bool
	timeout     time.Duration
}

// usageError marks bad command line input.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func parseFlags(args []string, output io.Writer) (*cliOptions, error) {
	opts := &cliOptions{}
	fs := flag.NewFlagSet("weather", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.location, "location", "", "The name of the city to get weather for (default from config, else Pittsburgh)")
	fs.StringVar(&opts.location, "l", "", "Shorthand for -location")
	fs.BoolVar(&opts.forecast, "forecast", false, "Append the forecast for the next 18 hours")
	fs.BoolVar(&opts.forecast, "f", false, "Shorthand for -forecast")
	fs.BoolVar(&opts.bar, "bar", false, "Print a single plain line for use in a status bar")
	fs.BoolVar(&opts.bar, "b", false, "Shorthand for -bar")
	fs.BoolVar(&opts.verbose, "verbose", false, "Log requests to stderr")
	fs.BoolVar(&opts.verbose, "v", false, "Shorthand for -verbose")
	fs.BoolVar(&opts.showVersion, "version", false, "Print the version and exit")
	fs.DurationVar(&opts.timeout, "timeout", 0, "HTTP request timeout (default from config, else 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.timeout < 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", opts.timeout)
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return &usageError{err: err}
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "weather-cli %s\n", version)
		return nil
	}

	if opts.verbose {
		log.SetOutput(stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	// The API key is checked here, before any request is made.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	location := cfg.Location
	if opts.location != "" {
		location = opts.location
	}
	timeout := cfg.RequestTimeout()
	if opts.timeout > 0 {
		timeout = opts.timeout
	}

	owm := datasource.NewOpenWeatherMapProvider(datasource.Options{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Timeout: timeout,
	})
	provider := datasource.NewRateLimitedProvider(owm, cfg.RequestsPerSecond, cfg.Burst)
	log.Printf("Using %s for %q (timeout %v)", provider.Name(), location, timeout)

	presenter := display.NewPresenter(stdout, display.Options{
		Color: !opts.bar && colorEnabled(stdout),
	})

	return report(ctx, provider, presenter, location, opts.bar, opts.forecast)
}

// report fetches and prints the current weather, then the forecast when
// requested. The current report is written before the forecast request is
// issued, so a forecast failure leaves the current report on stdout.
func report(ctx context.Context, provider datasource.Provider, p *display.Presenter, location string, bar, forecast bool) error {
	current, err := provider.GetWeather(ctx, location)
	if err != nil {
		return fmt.Errorf("failed to fetch current weather for %s: %w", location, err)
	}
	if !display.Known(current.Condition) {
		log.Printf("Unrecognized condition %q, showing %s", current.Condition, display.UnknownGlyph)
	}

	if bar {
		err = p.Bar(current)
	} else {
		err = p.Current(current)
	}
	if err != nil {
		return fmt.Errorf("failed to write current weather: %w", err)
	}

	if !forecast {
		return nil
	}

	series, err := provider.FetchForecast(ctx, location)
	if err != nil {
		return fmt.Errorf("failed to fetch forecast for %s: %w", location, err)
	}
	log.Printf("Received %d forecast points", len(series))
	for i := 0; i < len(series) && i < display.ForecastRows; i++ {
		log.Printf("Forecast point: %s", display.PointSummary(series[i]))
	}

	if err := p.Forecast(current.DisplayName, series); err != nil {
		return fmt.Errorf("failed to render forecast: %w", err)
	}
	return nil
}

// colorEnabled reports whether w is an interactive terminal that should get
// ANSI colors.
func colorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func exitCode(err error) int {
	var usageErr *usageError
	var cfgErr *config.Error
	if errors.As(err, &usageErr) || errors.As(err, &cfgErr) {
		return 2
	}
	return 1
}
