package model

// OpenMeteoResponse mirrors the Open-Meteo daily forecast envelope.
// The daily block carries positionally aligned parallel arrays: time[i]
// and weather_code[i] describe the same day.
type OpenMeteoResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Daily     struct {
		Time        []string `json:"time"`
		WeatherCode []int    `json:"weather_code"`
	} `json:"daily"`
}
