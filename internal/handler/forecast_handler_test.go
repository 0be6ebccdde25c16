package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BryanPMX/weather-forecast-api/internal/model"
	"github.com/BryanPMX/weather-forecast-api/internal/service"
)

// Mock service for testing
type mockForecastService struct {
	shouldError bool
	mockData    model.ForecastCollection
}

func (m *mockForecastService) GetForecast(ctx context.Context) (model.ForecastCollection, error) {
	if m.shouldError {
		return nil, service.ErrForecastService
	}
	return m.mockData, nil
}

// Ensure mockForecastService implements ForecastServiceInterface
var _ service.ForecastServiceInterface = (*mockForecastService)(nil)

func TestNewForecastHandler(t *testing.T) {
	handler := NewForecastHandler()
	if handler == nil {
		t.Fatal("Expected handler to be created")
	}
	if handler.ForecastService == nil {
		t.Error("Expected forecast service to be initialized")
	}
}

func TestForecastHandler_HandleForecast(t *testing.T) {
	sevenDays := model.ForecastCollection{
		{Date: "2025-01-01", WeatherCode: 0, Description: "Clear sky ☀️"},
		{Date: "2025-01-02", WeatherCode: 2, Description: "Partly cloudy ⛅"},
		{Date: "2025-01-03", WeatherCode: 45, Description: "Fog 🌫️"},
		{Date: "2025-01-04", WeatherCode: 53, Description: "Drizzle 🌦️"},
		{Date: "2025-01-05", WeatherCode: 65, Description: "Rain 🌧️"},
		{Date: "2025-01-06", WeatherCode: 71, Description: "Snow ❄️"},
		{Date: "2025-01-07", WeatherCode: 96, Description: "Thunderstorm ⛈️"},
	}

	tests := []struct {
		name           string
		method         string
		shouldError    bool
		mockData       model.ForecastCollection
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Successful forecast request",
			method:         http.MethodGet,
			shouldError:    false,
			mockData:       sevenDays,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Service error",
			method:         http.MethodGet,
			shouldError:    true,
			expectedStatus: http.StatusBadGateway,
			expectedError:  "Failed to load weather data. Please try again later.",
		},
		{
			name:           "Method not allowed",
			method:         http.MethodPost,
			shouldError:    false,
			expectedStatus: http.StatusMethodNotAllowed,
			expectedError:  "Method not allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := &ForecastHandler{
				ForecastService: &mockForecastService{
					shouldError: tt.shouldError,
					mockData:    tt.mockData,
				},
			}

			req := httptest.NewRequest(tt.method, "/forecast", nil)
			rr := httptest.NewRecorder()

			handler.HandleForecast(rr, req)

			if status := rr.Code; status != tt.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v", status, tt.expectedStatus)
			}

			if tt.expectedError != "" {
				var response model.Response
				if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode JSON response: %v", err)
				}
				if response.Error == nil {
					t.Fatal("Expected error message in response")
				}
				if *response.Error != tt.expectedError {
					t.Errorf("Expected error %q, got %q", tt.expectedError, *response.Error)
				}
			}

			if tt.expectedStatus == http.StatusOK {
				var response struct {
					Data    model.ForecastCollection `json:"data"`
					Message string                   `json:"message"`
				}
				if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode JSON response: %v", err)
				}
				if response.Message != "Success" {
					t.Errorf("Expected message Success, got %q", response.Message)
				}
				if len(response.Data) != len(tt.mockData) {
					t.Fatalf("Expected %d days, got %d", len(tt.mockData), len(response.Data))
				}
				for i, day := range response.Data {
					if day != tt.mockData[i] {
						t.Errorf("day %d: expected %+v, got %+v", i, tt.mockData[i], day)
					}
				}
			}
		})
	}
}

func TestForecastHandler_MethodNotAllowed_AllowHeader(t *testing.T) {
	handler := &ForecastHandler{ForecastService: &mockForecastService{}}

	req := httptest.NewRequest(http.MethodDelete, "/forecast", nil)
	rr := httptest.NewRecorder()
	handler.HandleForecast(rr, req)

	if allow := rr.Header().Get("Allow"); allow != http.MethodGet {
		t.Errorf("Expected Allow: GET header, got %q", allow)
	}
}
