package weather

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kisanseva/kisanseva/internal/domain/models"
	"github.com/kisanseva/kisanseva/internal/repository/docstore"
	"github.com/kisanseva/kisanseva/pkg/clients/openweather"
)

// heatwaveThresholdC is the temperature above which heatwave alerts apply.
const heatwaveThresholdC = 38.0

// Service combines live conditions from the weather API with cloud-managed
// advisory alerts.
type Service struct {
	client openweather.Client
	alerts docstore.AlertStore
	logger *zap.Logger
}

// NewService wires a new weather service instance.
func NewService(client openweather.Client, alerts docstore.AlertStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, alerts: alerts, logger: logger}
}

// Bulletin fetches the current conditions and a three-day midday forecast,
// then attaches the alerts matching those conditions. Alert lookup failures
// degrade to an empty alert list rather than failing the bulletin.
func (s *Service) Bulletin(ctx context.Context, lat, lon float64) (models.WeatherBulletin, error) {
	current, err := s.client.Current(ctx, lat, lon)
	if err != nil {
		return models.WeatherBulletin{}, fmt.Errorf("fetch current weather: %w", err)
	}

	forecast, err := s.client.Forecast(ctx, lat, lon)
	if err != nil {
		return models.WeatherBulletin{}, fmt.Errorf("fetch forecast: %w", err)
	}

	bulletin := models.WeatherBulletin{
		Current:  reduceCurrent(current),
		Forecast: reduceForecast(forecast.List),
	}

	alerts, err := s.alerts.ListAlerts(ctx)
	if err != nil {
		s.logger.Warn("weather alert lookup failed", zap.Error(err))
		alerts = nil
	}
	bulletin.Alerts = filterAlerts(alerts, bulletin.Current)

	return bulletin, nil
}

func reduceCurrent(resp *openweather.CurrentResponse) models.CurrentWeather {
	current := models.CurrentWeather{
		TempC:     resp.Main.Temp,
		FeelsLike: resp.Main.FeelsLike,
		Humidity:  resp.Main.Humidity,
		WindSpeed: resp.Wind.Speed,
		Pressure:  resp.Main.Pressure,
	}
	if len(resp.Weather) > 0 {
		current.Condition = resp.Weather[0].Main
		current.Icon = resp.Weather[0].Icon
	}
	return current
}

// reduceForecast keeps the midday slot of each upcoming day, at most three
// days out.
func reduceForecast(entries []openweather.ForecastEntry) []models.ForecastDay {
	days := make([]models.ForecastDay, 0, 3)
	seen := make(map[string]bool)

	for _, entry := range entries {
		date, _, found := strings.Cut(entry.DtTxt, " ")
		if !found || seen[date] || !strings.Contains(entry.DtTxt, "12:00:00") {
			continue
		}
		seen[date] = true

		day := models.ForecastDay{
			Date:       date,
			TempC:      entry.Main.Temp,
			Humidity:   entry.Main.Humidity,
			RainChance: int(entry.Pop*100 + 0.5),
		}
		if len(entry.Weather) > 0 {
			day.Condition = entry.Weather[0].Main
			day.Icon = entry.Weather[0].Icon
		}

		days = append(days, day)
		if len(days) == 3 {
			break
		}
	}
	return days
}

// filterAlerts keeps the alerts applicable to the current conditions.
// Untyped alerts always apply.
func filterAlerts(alerts []models.WeatherAlert, current models.CurrentWeather) []models.WeatherAlert {
	condition := strings.ToLower(current.Condition)

	matched := make([]models.WeatherAlert, 0, len(alerts))
	for _, alert := range alerts {
		switch alert.Type {
		case "":
			matched = append(matched, alert)
		case "rain":
			if strings.Contains(condition, "rain") {
				matched = append(matched, alert)
			}
		case "storm":
			if strings.Contains(condition, "storm") || strings.Contains(condition, "thunder") {
				matched = append(matched, alert)
			}
		case "heatwave":
			if current.TempC > heatwaveThresholdC {
				matched = append(matched, alert)
			}
		}
	}
	return matched
}
