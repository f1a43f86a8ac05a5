package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/infra/httpclient"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/ports"
)

const defaultCooldown = 30 * time.Second

// Client queries a forecast endpoint for current conditions and reads the
// values at the configured JSONPath fields (Open-Meteo's by default).
// Every call is bounded by the configured timeout.
type Client struct {
	baseURL  string
	exec     *httpclient.Executor
	breaker  *gobreaker.CircuitBreaker
	log      *slog.Logger
	cooldown time.Duration
	fields   domain.WeatherFields
}

type Option func(*Client)

// WithExecutor replaces the HTTP executor (tests point it at httptest servers).
func WithExecutor(e *httpclient.Executor) Option {
	return func(c *Client) { c.exec = e }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithCooldown sets how long the breaker stays open before probing again.
func WithCooldown(d time.Duration) Option {
	return func(c *Client) { c.cooldown = d }
}

func New(cfg domain.WeatherConfig, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultConfig().Weather.Timeout
	}

	c := &Client{
		baseURL:  cfg.BaseURL,
		exec:     httpclient.NewExecutor(httpclient.WithTimeout(timeout)),
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		cooldown: defaultCooldown,
		fields:   cfg.Fields,
	}
	if c.fields == (domain.WeatherFields{}) {
		c.fields = domain.DefaultWeatherFields()
	}
	for _, opt := range opts {
		opt(c)
	}
	c.breaker = newBreaker("Weather-OpenMeteo", c.cooldown, c.log)
	return c
}

var _ ports.WeatherProvider = (*Client)(nil)

// Current returns the current conditions at lat/lon. Failures come back as
// *domain.OpError with KindExternal; they are never fatal to the caller.
func (c *Client) Current(ctx context.Context, lat, lon float64) (domain.Weather, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current_weather", "true")

	req, err := httpclient.BuildGet(ctx, c.baseURL, q)
	if err != nil {
		return domain.Weather{}, err
	}

	out, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.exec.Do(ctx, req)
		if err != nil {
			return nil, err
		}
		if !resp.OK() {
			return nil, fmt.Errorf("unexpected status %d", resp.Status)
		}
		if resp.Truncated {
			return nil, errors.New("response body too large")
		}
		c.log.Debug("weather.response", "status", resp.Status, "duration_ms", resp.Duration.Milliseconds())
		return resp.Body, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.log.Warn("weather.skipped", "reason", err.Error())
		} else {
			c.log.Error("weather.failed", "err", err)
		}
		return domain.Weather{}, external(err)
	}

	w, err := readings(out.([]byte), c.fields)
	if err != nil {
		return domain.Weather{}, external(err)
	}
	w.Latitude, w.Longitude = lat, lon
	c.log.Info("weather.fetched", "lat", lat, "lon", lon, "temp_c", w.TemperatureC)
	return w, nil
}

func external(err error) error {
	return &domain.OpError{
		Op:   "weather.current",
		Kind: domain.KindExternal,
		Err:  errors.Join(err, domain.ErrExternal),
	}
}
