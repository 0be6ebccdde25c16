package weathercode

// Describe maps a WMO weather interpretation code, as returned by
// Open-Meteo's daily weather_code variable, to a display label with a
// trailing pictogram. It is total: codes outside the table fall back to
// the unknown label instead of failing.
func Describe(code int) string {
	switch code {
	case 0:
		return "Clear sky ☀️"
	case 1, 2, 3:
		return "Partly cloudy ⛅"
	case 45, 48:
		return "Fog 🌫️"
	case 51, 53, 55:
		return "Drizzle 🌦️"
	case 61, 63, 65:
		return "Rain 🌧️"
	case 71, 73, 75:
		return "Snow ❄️"
	case 80, 81, 82:
		return "Rain showers 🌧️"
	case 95, 96, 99:
		return "Thunderstorm ⛈️"
	default:
		return "Unknown weather ❓"
	}
}
