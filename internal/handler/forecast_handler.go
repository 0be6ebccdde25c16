package handler

import (
	"encoding/json"
	"net/http"

	"github.com/BryanPMX/weather-forecast-api/internal/config"
	"github.com/BryanPMX/weather-forecast-api/internal/model"
	"github.com/BryanPMX/weather-forecast-api/internal/service"
)

// userFacingError is the single message shown for every fetch failure;
// the distinction between transport, parse, and upstream-status errors
// is only logged.
const userFacingError = "Failed to load weather data. Please try again later."

type ForecastHandler struct {
	ForecastService service.ForecastServiceInterface
}

func NewForecastHandler(svc ...service.ForecastServiceInterface) *ForecastHandler {
	var forecastService service.ForecastServiceInterface
	if len(svc) > 0 && svc[0] != nil {
		forecastService = svc[0]
	} else {
		forecastService = service.NewForecastService()
	}
	return &ForecastHandler{
		ForecastService: forecastService,
	}
}

func (h *ForecastHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		config.GetLogger().Errorw("could not encode json", "error", err)
	}
}

func (h *ForecastHandler) HandleForecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		errMsg := "Method not allowed"
		w.Header().Set("Allow", http.MethodGet)
		h.writeJSONResponse(w, http.StatusMethodNotAllowed, model.Response{
			Error:   &errMsg,
			Message: "Error",
		})
		return
	}

	forecast, err := h.ForecastService.GetForecast(r.Context())
	if err != nil {
		errMsg := userFacingError
		h.writeJSONResponse(w, http.StatusBadGateway, model.Response{
			Error:   &errMsg,
			Message: "Error",
		})
		return
	}

	h.writeJSONResponse(w, http.StatusOK, model.Response{
		Data:    forecast,
		Message: "Success",
	})
}
