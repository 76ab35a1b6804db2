package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ao561/cues-hackathon/models"
)

const openWeatherBase = "https://api.openweathermap.org/data/2.5/weather"

// OpenWeatherProvider reports the current condition at a point via the
// OpenWeather API, collapsed into the categorical gate the planner needs.
type OpenWeatherProvider struct {
	APIKey string
	Client *http.Client
}

type openWeatherResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
	Snow struct {
		OneHour float64 `json:"1h"`
	} `json:"snow"`
}

func (p *OpenWeatherProvider) Condition(ctx context.Context, point models.GeoPoint) (*models.WeatherReport, error) {
	if p.APIKey == "" {
		return nil, NewProviderError(models.FailureUnauthorized, fmt.Errorf("openweather api key not configured"))
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(point.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(point.Lng, 'f', -1, 64))
	params.Set("appid", p.APIKey)
	params.Set("units", "metric")

	var data openWeatherResponse
	if err := getJSON(ctx, p.Client, openWeatherBase, params, &data); err != nil {
		return nil, err
	}

	var main, description string
	if len(data.Weather) > 0 {
		main = strings.ToLower(data.Weather[0].Main)
		description = data.Weather[0].Description
	}

	return &models.WeatherReport{
		Condition:   categorize(main, data.Main.Temp, data.Rain.OneHour, data.Snow.OneHour),
		TempC:       data.Main.Temp,
		WindSpeed:   data.Wind.Speed,
		Description: description,
	}, nil
}

// categorize collapses raw weather data into the planner's gate categories.
// Freezing or scorching temperatures count as extreme; any active rain, snow,
// drizzle or thunderstorm counts as precipitation.
func categorize(condition string, tempC, rain1h, snow1h float64) models.WeatherCondition {
	switch {
	case strings.Contains(condition, "rain"),
		strings.Contains(condition, "drizzle"),
		strings.Contains(condition, "snow"),
		strings.Contains(condition, "thunderstorm"),
		rain1h > 0,
		snow1h > 0:
		return models.WeatherPrecipitation
	case tempC < 0 || tempC > 35:
		return models.WeatherExtremeTemp
	default:
		return models.WeatherClear
	}
}
