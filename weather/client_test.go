package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	return b, ok, nil
}

func (m *memCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

type staticLocator struct {
	lat, lon float64
	err      error
}

func (s staticLocator) CourseLocation(context.Context, string) (float64, float64, error) {
	return s.lat, s.lon, s.err
}

const forecastBody = `{
  "properties": {
    "periods": [
      {
        "name": "This Afternoon",
        "startTime": "2026-10-20T12:00:00-06:00",
        "endTime": "2026-10-20T13:00:00-06:00",
        "temperature": 68,
        "shortForecast": "Sunny",
        "icon": "https://api.weather.gov/icons/land/day/skc?size=small"
      },
      {
        "name": "",
        "startTime": "2026-10-20T13:00:00-06:00",
        "endTime": "2026-10-20T14:00:00-06:00",
        "temperature": 70,
        "shortForecast": "Chance Showers",
        "icon": "https://api.weather.gov/icons/land/day/rain_showers,30?size=small"
      }
    ]
  }
}`

func newUpstream(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/points/39.6500,-104.7700", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "teemarket-test", r.Header.Get("User-Agent"))
		fmt.Fprintf(w, `{"properties":{"forecastHourly":"%s/gridpoints/BOU/70,60/forecast/hourly"}}`, srv.URL)
	})
	mux.HandleFunc("/gridpoints/BOU/70,60/forecast/hourly", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(forecastBody))
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientForecast(t *testing.T) {
	var hits atomic.Int32
	srv := newUpstream(t, &hits)
	cache := newMemCache()
	c := NewClient(Config{BaseURL: srv.URL, UserAgent: "teemarket-test", CacheTTL: 10 * time.Minute},
		cache, staticLocator{lat: 39.65, lon: -104.77}, zap.NewNop())

	periods := c.Forecast(context.Background(), "course-1")

	require.Len(t, periods, 2)
	assert.Equal(t, "This Afternoon", periods[0].Name)
	assert.Equal(t, 68, periods[0].Temperature)
	assert.Equal(t, "skc", periods[0].IconCode)
	assert.Equal(t, "rain_showers", periods[1].IconCode)
	assert.True(t, periods[0].StartTime.Equal(time.Date(2026, 10, 20, 18, 0, 0, 0, time.UTC)))
	assert.EqualValues(t, 2, hits.Load())

	hourly := srv.URL + "/gridpoints/BOU/70,60/forecast/hourly"
	assert.Contains(t, cache.data, hourly)
	assert.Equal(t, 10*time.Minute, cache.ttls[hourly])

	again := c.Forecast(context.Background(), "course-1")
	assert.Equal(t, periods, again)
	assert.EqualValues(t, 2, hits.Load(), "second lookup is served from cache")
}

func TestClientForecastFailuresAreEmpty(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(failing.Close)

	tests := []struct {
		name    string
		baseURL string
		locator CourseLocator
	}{
		{"upstream 503", failing.URL, staticLocator{lat: 1, lon: 2}},
		{"unknown course", failing.URL, staticLocator{err: errors.New("no rows")}},
		{"unreachable", "http://127.0.0.1:1", staticLocator{lat: 1, lon: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(Config{BaseURL: tt.baseURL, Timeout: time.Second}, newMemCache(), tt.locator, zap.NewNop())
			periods := c.Forecast(context.Background(), "course-1")
			assert.NotNil(t, periods)
			assert.Empty(t, periods)
		})
	}
}

func TestClientForecastWithoutCache(t *testing.T) {
	var hits atomic.Int32
	srv := newUpstream(t, &hits)
	c := NewClient(Config{BaseURL: srv.URL, UserAgent: "teemarket-test"}, nil, staticLocator{lat: 39.65, lon: -104.77}, zap.NewNop())

	require.Len(t, c.Forecast(context.Background(), "course-1"), 2)
	require.Len(t, c.Forecast(context.Background(), "course-1"), 2)
	assert.EqualValues(t, 4, hits.Load())
}
