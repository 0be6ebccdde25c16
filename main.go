package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/BryanPMX/weather-forecast-api/internal/config"
	"github.com/BryanPMX/weather-forecast-api/internal/handler"
	"github.com/BryanPMX/weather-forecast-api/internal/middleware"
	"github.com/BryanPMX/weather-forecast-api/internal/repository"
	"github.com/BryanPMX/weather-forecast-api/internal/service"
)

func main() {
	logger := config.GetLogger()

	forecastRepo := repository.NewForecastRepository()
	forecastService := service.NewForecastService(forecastRepo)
	forecastHandler := handler.NewForecastHandler(forecastService)

	mux := http.NewServeMux()
	mux.Handle("/forecast", middleware.RateLimitMiddleware(http.HandlerFunc(forecastHandler.HandleForecast)))

	middleware.StartRateLimiterCleanup()

	port := config.GetServerPort()
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: config.GetServerTimeout("read_header_timeout", 15*time.Second),
		ReadTimeout:       config.GetServerTimeout("read_timeout", 15*time.Second),
		WriteTimeout:      config.GetServerTimeout("write_timeout", 10*time.Second),
		IdleTimeout:       config.GetServerTimeout("idle_timeout", 30*time.Second),
	}

	logger.Infow("Forecast API server running", "port", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalw("server stopped", "error", err)
	}
}
