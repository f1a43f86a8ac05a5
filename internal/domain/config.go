package domain

import "time"

// Config represents the club configuration loaded from club.yaml.
type Config struct {
	Paths   PathsConfig
	Weather WeatherConfig
}

type PathsConfig struct {
	DataDir string
}

// WeatherConfig points the optional weather lookup at a fixed coordinate.
type WeatherConfig struct {
	Enabled   bool
	Latitude  float64
	Longitude float64
	BaseURL   string
	Timeout   time.Duration
	Fields    WeatherFields
}

// WeatherFields are JSONPath expressions locating each reading in the
// provider's response. Temperature is required; an empty path skips the
// other readings.
type WeatherFields struct {
	Temperature string
	WindSpeed   string
	Code        string
	Time        string
}

// DefaultWeatherFields match Open-Meteo's current_weather block.
func DefaultWeatherFields() WeatherFields {
	return WeatherFields{
		Temperature: "$.current_weather.temperature",
		WindSpeed:   "$.current_weather.windspeed",
		Code:        "$.current_weather.weathercode",
		Time:        "$.current_weather.time",
	}
}

// DefaultConfig provides sane defaults if club.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			DataDir: "data",
		},
		Weather: WeatherConfig{
			Enabled:   true,
			Latitude:  -34.6037,
			Longitude: -58.3816,
			BaseURL:   "https://api.open-meteo.com/v1/forecast",
			Timeout:   5 * time.Second,
			Fields:    DefaultWeatherFields(),
		},
	}
}

// WorkspaceSpec describes a club workspace to initialize.
type WorkspaceSpec struct {
	Root string
}
