package models

// WeatherAlert is a cloud-managed advisory shown when it matches the current
// conditions. Alerts without a type are always shown.
type WeatherAlert struct {
	Type    string `bson:"type" json:"type"`
	Message string `bson:"message" json:"message"`
}

// CurrentWeather is the reduced view of the present conditions.
type CurrentWeather struct {
	Condition string  `json:"condition"`
	Icon      string  `json:"icon"`
	TempC     float64 `json:"temp_c"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
	WindSpeed float64 `json:"wind_speed"`
	Pressure  int     `json:"pressure"`
}

// ForecastDay is one midday forecast entry for an upcoming day.
type ForecastDay struct {
	Date       string  `json:"date"`
	Condition  string  `json:"condition"`
	Icon       string  `json:"icon"`
	TempC      float64 `json:"temp_c"`
	Humidity   int     `json:"humidity"`
	RainChance int     `json:"rain_chance"`
}

// WeatherBulletin bundles everything the weather endpoint returns.
type WeatherBulletin struct {
	Current  CurrentWeather `json:"current"`
	Forecast []ForecastDay  `json:"forecast"`
	Alerts   []WeatherAlert `json:"alerts"`
}
