package model

// ForecastDay is one day of the forecast. Built once per fetch and never
// mutated; a new fetch rebuilds the whole collection.
type ForecastDay struct {
	Date        string `json:"date"`
	WeatherCode int    `json:"weather_code"`
	Description string `json:"description"`
}

// ForecastCollection is the ordered 7-day forecast. Order matches the
// chronological order returned by the provider.
type ForecastCollection []ForecastDay
