package service

import (
	"context"
	"errors"

	"github.com/BryanPMX/weather-forecast-api/internal/config"
	"github.com/BryanPMX/weather-forecast-api/internal/model"
	"github.com/BryanPMX/weather-forecast-api/internal/repository"
)

// ErrForecastService is returned when the forecast could not be produced.
var ErrForecastService = errors.New("forecast service error")

// ForecastServiceInterface defines the service contract for fetching the forecast
type ForecastServiceInterface interface {
	GetForecast(ctx context.Context) (model.ForecastCollection, error)
}

// ForecastService orchestrates forecast retrieval through the repository
type ForecastService struct {
	ForecastRepo repository.ForecastRepository
}

// NewForecastService creates a new forecast service instance
func NewForecastService(repo ...repository.ForecastRepository) *ForecastService {
	var forecastRepo repository.ForecastRepository
	if len(repo) > 0 && repo[0] != nil {
		forecastRepo = repo[0]
	} else {
		forecastRepo = repository.NewForecastRepository()
	}
	return &ForecastService{
		ForecastRepo: forecastRepo,
	}
}

// GetForecast fetches the 7-day forecast. Failures are logged with their
// underlying cause; callers only see the error, never a partial collection.
func (s *ForecastService) GetForecast(ctx context.Context) (model.ForecastCollection, error) {
	forecast, err := s.ForecastRepo.GetForecast(ctx)
	if err != nil {
		config.GetLogger().Errorw("failed to fetch forecast", "error", err)
		return nil, err
	}
	return forecast, nil
}
