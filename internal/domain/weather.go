package domain

import "fmt"

// Weather is the current conditions at the configured coordinate.
type Weather struct {
	Latitude     float64
	Longitude    float64
	TemperatureC float64
	WindSpeedKmh float64
	Code         int
	ObservedAt   string
}

// Condition maps a WMO weather code to a short description.
func (w Weather) Condition() string {
	switch c := w.Code; {
	case c == 0:
		return "Clear sky"
	case c >= 1 && c <= 3:
		return "Partly cloudy"
	case c == 45 || c == 48:
		return "Fog"
	case c >= 51 && c <= 57:
		return "Drizzle"
	case c >= 61 && c <= 67, c >= 80 && c <= 82:
		return "Rain"
	case c >= 71 && c <= 77, c == 85 || c == 86:
		return "Snow"
	case c >= 95:
		return "Thunderstorm"
	default:
		return fmt.Sprintf("Code %d", c)
	}
}

func (w Weather) String() string {
	return fmt.Sprintf("%.1f°C, wind %.1f km/h, %s (%s)", w.TemperatureC, w.WindSpeedKmh, w.Condition(), w.ObservedAt)
}
