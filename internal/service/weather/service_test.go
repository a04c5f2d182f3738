package weather

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisanseva/kisanseva/internal/domain/models"
	"github.com/kisanseva/kisanseva/internal/repository/memory"
	"github.com/kisanseva/kisanseva/pkg/clients/openweather"
)

type fakeClient struct {
	current     *openweather.CurrentResponse
	forecast    *openweather.ForecastResponse
	currentErr  error
	forecastErr error
}

func (f *fakeClient) Current(context.Context, float64, float64) (*openweather.CurrentResponse, error) {
	return f.current, f.currentErr
}

func (f *fakeClient) Forecast(context.Context, float64, float64) (*openweather.ForecastResponse, error) {
	return f.forecast, f.forecastErr
}

func slot(dtTxt string, temp float64) openweather.ForecastEntry {
	return openweather.ForecastEntry{
		DtTxt:   dtTxt,
		Main:    openweather.Readings{Temp: temp, Humidity: 60},
		Weather: []openweather.Condition{{Main: "Clouds", Icon: "03d"}},
		Pop:     0.42,
	}
}

func TestBulletin(t *testing.T) {
	store := memory.New()
	store.SeedAlerts([]models.WeatherAlert{
		{Type: "", Message: "general advisory"},
		{Type: "rain", Message: "cover harvested produce"},
	})

	client := &fakeClient{
		current: &openweather.CurrentResponse{
			Weather: []openweather.Condition{{Main: "Rain", Icon: "10d"}},
			Main:    openweather.Readings{Temp: 27.5, FeelsLike: 29, Humidity: 85, Pressure: 1008},
			Wind:    openweather.Wind{Speed: 3.4},
		},
		forecast: &openweather.ForecastResponse{List: []openweather.ForecastEntry{
			slot("2026-09-01 09:00:00", 26),
			slot("2026-09-01 12:00:00", 30),
			slot("2026-09-02 12:00:00", 31),
			slot("2026-09-03 12:00:00", 29),
			slot("2026-09-04 12:00:00", 28),
		}},
	}

	svc := NewService(client, store, nil)
	bulletin, err := svc.Bulletin(context.Background(), 28.6, 77.2)
	require.NoError(t, err)

	assert.Equal(t, "Rain", bulletin.Current.Condition)
	assert.InDelta(t, 27.5, bulletin.Current.TempC, 1e-9)
	assert.Equal(t, 85, bulletin.Current.Humidity)

	require.Len(t, bulletin.Forecast, 3)
	assert.Equal(t, "2026-09-01", bulletin.Forecast[0].Date)
	assert.Equal(t, "2026-09-02", bulletin.Forecast[1].Date)
	assert.Equal(t, "2026-09-03", bulletin.Forecast[2].Date)
	assert.InDelta(t, 30.0, bulletin.Forecast[0].TempC, 1e-9)
	assert.Equal(t, 42, bulletin.Forecast[0].RainChance)

	require.Len(t, bulletin.Alerts, 2)
}

func TestBulletinClientErrors(t *testing.T) {
	store := memory.New()

	svc := NewService(&fakeClient{currentErr: errors.New("boom")}, store, nil)
	_, err := svc.Bulletin(context.Background(), 0, 0)
	require.Error(t, err)

	svc = NewService(&fakeClient{
		current:     &openweather.CurrentResponse{},
		forecastErr: errors.New("boom"),
	}, store, nil)
	_, err = svc.Bulletin(context.Background(), 0, 0)
	require.Error(t, err)
}

func TestReduceForecastSkipsNonMiddaySlots(t *testing.T) {
	days := reduceForecast([]openweather.ForecastEntry{
		slot("2026-09-01 03:00:00", 20),
		slot("2026-09-01 21:00:00", 18),
	})
	assert.Empty(t, days)
}

func TestFilterAlerts(t *testing.T) {
	alerts := []models.WeatherAlert{
		{Type: "", Message: "always"},
		{Type: "rain", Message: "rain only"},
		{Type: "storm", Message: "storm only"},
		{Type: "heatwave", Message: "heat only"},
	}

	messages := func(matched []models.WeatherAlert) []string {
		out := make([]string, len(matched))
		for i, a := range matched {
			out[i] = a.Message
		}
		return out
	}

	got := filterAlerts(alerts, models.CurrentWeather{Condition: "Clear", TempC: 25})
	assert.Equal(t, []string{"always"}, messages(got))

	got = filterAlerts(alerts, models.CurrentWeather{Condition: "Light Rain", TempC: 25})
	assert.Equal(t, []string{"always", "rain only"}, messages(got))

	got = filterAlerts(alerts, models.CurrentWeather{Condition: "Thunderstorm", TempC: 25})
	assert.Equal(t, []string{"always", "storm only"}, messages(got))

	got = filterAlerts(alerts, models.CurrentWeather{Condition: "Clear", TempC: 41})
	assert.Equal(t, []string{"always", "heat only"}, messages(got))
}
