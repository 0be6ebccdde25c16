package weathercode

import "testing"

func TestDescribe(t *testing.T) {
	tests := []struct {
		name  string
		codes []int
		want  string
	}{
		{"Clear sky", []int{0}, "Clear sky ☀️"},
		{"Partly cloudy", []int{1, 2, 3}, "Partly cloudy ⛅"},
		{"Fog", []int{45, 48}, "Fog 🌫️"},
		{"Drizzle", []int{51, 53, 55}, "Drizzle 🌦️"},
		{"Rain", []int{61, 63, 65}, "Rain 🌧️"},
		{"Snow", []int{71, 73, 75}, "Snow ❄️"},
		{"Rain showers", []int{80, 81, 82}, "Rain showers 🌧️"},
		{"Thunderstorm", []int{95, 96, 99}, "Thunderstorm ⛈️"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, code := range tt.codes {
				if got := Describe(code); got != tt.want {
					t.Errorf("Describe(%d) = %q, want %q", code, got, tt.want)
				}
			}
		})
	}
}

func TestDescribe_UnknownCodes(t *testing.T) {
	// Totality: every integer outside the table maps to the fallback.
	for _, code := range []int{-1, 4, 44, 50, 66, 77, 83, 94, 100, 999} {
		if got := Describe(code); got != "Unknown weather ❓" {
			t.Errorf("Describe(%d) = %q, want fallback label", code, got)
		}
	}
}
