// Package weather fetches course forecasts and matches them to tee times.
package weather

import (
	"net/url"
	"path"
	"strings"
	"time"
)

// Period is one forecast window, [StartTime, EndTime).
type Period struct {
	Name          string    `json:"name"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Temperature   int       `json:"temperature"`
	ShortForecast string    `json:"shortForecast"`
	IconCode      string    `json:"iconCode"`
}

// Summary is the forecast shown next to a single tee time. The zero value
// means no forecast was available.
type Summary struct {
	Temperature   int    `json:"temperature"`
	ShortForecast string `json:"shortForecast"`
	Name          string `json:"name"`
	IconCode      string `json:"iconCode"`
}

// MatchForecast returns the first period containing t, or a zero Summary.
func MatchForecast(t time.Time, periods []Period) Summary {
	for _, p := range periods {
		if !t.Before(p.StartTime) && t.Before(p.EndTime) {
			return Summary{
				Temperature:   p.Temperature,
				ShortForecast: p.ShortForecast,
				Name:          p.Name,
				IconCode:      p.IconCode,
			}
		}
	}
	return Summary{}
}

// iconCode reduces an upstream icon URL such as
// https://api.weather.gov/icons/land/day/tsra,40?size=small to "tsra".
func iconCode(icon string) string {
	if icon == "" {
		return ""
	}
	u, err := url.Parse(icon)
	if err != nil {
		return ""
	}
	code := path.Base(u.Path)
	if i := strings.IndexByte(code, ','); i >= 0 {
		code = code[:i]
	}
	if code == "." || code == "/" {
		return ""
	}
	return code
}
