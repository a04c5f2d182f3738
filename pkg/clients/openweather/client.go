package openweather

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/kisanseva/kisanseva/internal/config"
)

// Client exposes the OpenWeatherMap operations the application uses.
type Client interface {
	Current(ctx context.Context, lat, lon float64) (*CurrentResponse, error)
	Forecast(ctx context.Context, lat, lon float64) (*ForecastResponse, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	apiKey     string
}

// NewClient builds an OpenWeatherMap client from the provided configuration.
func NewClient(cfg config.WeatherConfig) *APIClient {
	base := strings.TrimSuffix(cfg.BaseURL, "/")

	restyClient := resty.New()
	restyClient.
		SetBaseURL(base).
		SetTimeout(15 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		apiKey:     cfg.APIKey,
	}
}

// Condition is one weather condition descriptor.
type Condition struct {
	Main string `json:"main"`
	Icon string `json:"icon"`
}

// Readings carries the numeric measurements of an observation.
type Readings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
	Pressure  int     `json:"pressure"`
}

// Wind carries wind measurements.
type Wind struct {
	Speed float64 `json:"speed"`
}

// CurrentResponse mirrors the current-weather payload.
type CurrentResponse struct {
	Weather []Condition `json:"weather"`
	Main    Readings    `json:"main"`
	Wind    Wind        `json:"wind"`
}

// ForecastEntry is one 3-hourly forecast slot.
type ForecastEntry struct {
	DtTxt   string      `json:"dt_txt"`
	Main    Readings    `json:"main"`
	Weather []Condition `json:"weather"`
	Pop     float64     `json:"pop"`
}

// ForecastResponse mirrors the 5-day/3-hour forecast payload.
type ForecastResponse struct {
	List []ForecastEntry `json:"list"`
}

// apiError represents an OpenWeatherMap error payload.
type apiError struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}

// Current fetches the present conditions for a coordinate.
func (c *APIClient) Current(ctx context.Context, lat, lon float64) (*CurrentResponse, error) {
	result := new(CurrentResponse)
	if err := c.get(ctx, "/weather", lat, lon, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Forecast fetches the 5-day/3-hour forecast for a coordinate.
func (c *APIClient) Forecast(ctx context.Context, lat, lon float64) (*ForecastResponse, error) {
	result := new(ForecastResponse)
	if err := c.get(ctx, "/forecast", lat, lon, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *APIClient) get(ctx context.Context, path string, lat, lon float64, result any) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":   strconv.FormatFloat(lat, 'f', -1, 64),
			"lon":   strconv.FormatFloat(lon, 'f', -1, 64),
			"appid": c.apiKey,
			"units": "metric",
		}).
		SetResult(result).
		SetError(apiErr).
		Get(path)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("openweather api error: status=%d, message=%s", resp.StatusCode(), apiErr.Message)
	}
	return nil
}
