package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/padraicbc/teemarket/metrics"
)

// CourseLocator resolves a course to its coordinates.
type CourseLocator interface {
	CourseLocation(ctx context.Context, courseID string) (lat, lon float64, err error)
}

// Config configures a Client.
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	CacheTTL  time.Duration
}

// Client reads forecasts from a National Weather Service style API:
// /points/{lat},{lon} names the forecast endpoint, which lists periods.
type Client struct {
	http    *http.Client
	cfg     Config
	cache   Cache
	locator CourseLocator
	log     *zap.Logger
}

func NewClient(cfg Config, cache Cache, locator CourseLocator, log *zap.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		cfg:     cfg,
		cache:   cache,
		locator: locator,
		log:     log,
	}
}

type pointsResponse struct {
	Properties struct {
		Forecast       string `json:"forecast"`
		ForecastHourly string `json:"forecastHourly"`
	} `json:"properties"`
}

type forecastResponse struct {
	Properties struct {
		Periods []struct {
			Name          string    `json:"name"`
			StartTime     time.Time `json:"startTime"`
			EndTime       time.Time `json:"endTime"`
			Temperature   int       `json:"temperature"`
			ShortForecast string    `json:"shortForecast"`
			Icon          string    `json:"icon"`
		} `json:"periods"`
	} `json:"properties"`
}

// Forecast returns the forecast periods for a course. Any failure is
// logged and yields an empty slice.
func (c *Client) Forecast(ctx context.Context, courseID string) []Period {
	periods, err := c.forecast(ctx, courseID)
	if err != nil {
		metrics.UpstreamFailures.WithLabelValues("weather").Inc()
		c.log.Warn("forecast unavailable", zap.String("courseId", courseID), zap.Error(err))
		return []Period{}
	}
	return periods
}

func (c *Client) forecast(ctx context.Context, courseID string) ([]Period, error) {
	lat, lon, err := c.locator.CourseLocation(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("locating course: %w", err)
	}

	var points pointsResponse
	pointsURL := fmt.Sprintf("%s/points/%.4f,%.4f", c.cfg.BaseURL, lat, lon)
	if err := c.getJSON(ctx, pointsURL, &points); err != nil {
		return nil, err
	}

	endpoint := points.Properties.ForecastHourly
	if endpoint == "" {
		endpoint = points.Properties.Forecast
	}
	if endpoint == "" {
		return nil, fmt.Errorf("no forecast endpoint for %s", pointsURL)
	}

	var fr forecastResponse
	if err := c.getJSON(ctx, endpoint, &fr); err != nil {
		return nil, err
	}

	out := make([]Period, 0, len(fr.Properties.Periods))
	for _, p := range fr.Properties.Periods {
		out = append(out, Period{
			Name:          p.Name,
			StartTime:     p.StartTime,
			EndTime:       p.EndTime,
			Temperature:   p.Temperature,
			ShortForecast: p.ShortForecast,
			IconCode:      iconCode(p.Icon),
		})
	}
	return out, nil
}

// getJSON decodes the body at url into v, going through the cache first.
// Concurrent misses for one key may both fetch; the result is the same.
func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	if body, ok := c.cached(ctx, url); ok {
		if err := json.Unmarshal(body, v); err == nil {
			return nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/geo+json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s: %w", url, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, url, body, c.cfg.CacheTTL); err != nil {
			c.log.Warn("forecast cache store failed", zap.String("key", url), zap.Error(err))
		}
	}
	return nil
}

func (c *Client) cached(ctx context.Context, key string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}
	body, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.Warn("forecast cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !ok {
		metrics.ForecastCache.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.ForecastCache.WithLabelValues("hit").Inc()
	return body, true
}
