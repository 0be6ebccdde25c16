package integrationtest

import (
	"net/http"
	"net/http/httptest"

	"github.com/BryanPMX/weather-forecast-api/internal/handler"
	"github.com/BryanPMX/weather-forecast-api/internal/middleware"
	"github.com/BryanPMX/weather-forecast-api/internal/repository"
	"github.com/BryanPMX/weather-forecast-api/internal/service"
)

// mockProviderHandler is swapped per test to shape the upstream response.
var mockProviderHandler func(w http.ResponseWriter, r *http.Request)

// startMockProvider starts an httptest server standing in for Open-Meteo.
func startMockProvider() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if mockProviderHandler != nil {
			mockProviderHandler(w, r)
			return
		}
		http.Error(w, "no mock provider handler configured", http.StatusInternalServerError)
	}))
}

// setupIntegrationTestServer wires the full request path the way main does:
// rate limiter -> handler -> service -> repository.
func setupIntegrationTestServer() *httptest.Server {
	forecastRepo := repository.NewForecastRepository()
	forecastService := service.NewForecastService(forecastRepo)
	forecastHandler := handler.NewForecastHandler(forecastService)

	mux := http.NewServeMux()
	mux.Handle("/forecast", middleware.RateLimitMiddleware(http.HandlerFunc(forecastHandler.HandleForecast)))

	return httptest.NewServer(mux)
}
