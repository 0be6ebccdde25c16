package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/BryanPMX/weather-forecast-api/internal/config"
	"github.com/BryanPMX/weather-forecast-api/internal/model"
	"github.com/BryanPMX/weather-forecast-api/internal/weathercode"
)

// Custom error types
var (
	ErrTransport         = errors.New("weather provider unreachable")
	ErrMalformedResponse = errors.New("malformed weather provider response")
)

// StatusError reports a non-200 response from the weather provider.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("weather provider returned status %d", e.Code)
}

// ForecastRepository defines the interface for forecast data access
type ForecastRepository interface {
	GetForecast(ctx context.Context) (model.ForecastCollection, error)
}

// forecastRepository implements ForecastRepository
type forecastRepository struct {
	httpClient *http.Client
}

// NewForecastRepository creates a new forecast repository instance
func NewForecastRepository(httpClient ...*http.Client) ForecastRepository {
	client := http.DefaultClient
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}
	return &forecastRepository{
		httpClient: client,
	}
}

// GetForecast issues a single GET to the Open-Meteo daily forecast endpoint
// for the configured coordinates and assembles the 7-day collection. There
// is no retry and no caching; one failed attempt surfaces immediately.
func (r *forecastRepository) GetForecast(ctx context.Context) (model.ForecastCollection, error) {
	latitude, longitude := config.GetLocation()
	url := fmt.Sprintf("%s?latitude=%g&longitude=%g&daily=weather_code&timezone=auto",
		config.GetOpenMeteoAPIURL(), latitude, longitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var data model.OpenMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return assembleForecast(data)
}

// assembleForecast zips the provider's parallel daily arrays into ordered
// ForecastDay entries. The arrays must be present and equal in length; a
// mismatch is a parse failure, never a truncation.
func assembleForecast(data model.OpenMeteoResponse) (model.ForecastCollection, error) {
	if data.Daily.Time == nil || data.Daily.WeatherCode == nil {
		return nil, fmt.Errorf("%w: daily block is missing", ErrMalformedResponse)
	}
	if len(data.Daily.Time) != len(data.Daily.WeatherCode) {
		return nil, fmt.Errorf("%w: daily arrays are misaligned (%d dates, %d codes)",
			ErrMalformedResponse, len(data.Daily.Time), len(data.Daily.WeatherCode))
	}

	forecast := make(model.ForecastCollection, 0, len(data.Daily.Time))
	for i, date := range data.Daily.Time {
		code := data.Daily.WeatherCode[i]
		forecast = append(forecast, model.ForecastDay{
			Date:        date,
			WeatherCode: code,
			Description: weathercode.Describe(code),
		})
	}
	return forecast, nil
}
