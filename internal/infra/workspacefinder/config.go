package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the workspace marker and configuration file.
const ConfigFile = "club.yaml"

// LoadConfig loads club.yaml from the workspace root and applies defaults.
// A missing file returns the defaults together with a KindNotFound error.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Club.Paths.DataDir != "" {
		cfg.Paths.DataDir = y.Club.Paths.DataDir
	}
	w := y.Club.Weather
	if w.Enabled != nil {
		cfg.Weather.Enabled = *w.Enabled
	}
	if w.Latitude != nil {
		cfg.Weather.Latitude = *w.Latitude
	}
	if w.Longitude != nil {
		cfg.Weather.Longitude = *w.Longitude
	}
	if strings.TrimSpace(w.BaseURL) != "" {
		cfg.Weather.BaseURL = strings.TrimSpace(w.BaseURL)
	}
	if w.Timeout != "" {
		d, err := time.ParseDuration(w.Timeout)
		if err != nil || d <= 0 {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("field club.weather.timeout: invalid duration %q: %w", w.Timeout, domain.ErrInvalidConfig),
			}
		}
		cfg.Weather.Timeout = d
	}
	f := w.Fields
	for _, fp := range []struct {
		key string
		in  string
		dst *string
	}{
		{"temperature", f.Temperature, &cfg.Weather.Fields.Temperature},
		{"wind_speed", f.WindSpeed, &cfg.Weather.Fields.WindSpeed},
		{"code", f.Code, &cfg.Weather.Fields.Code},
		{"time", f.Time, &cfg.Weather.Fields.Time},
	} {
		expr := strings.TrimSpace(fp.in)
		if expr == "" {
			continue
		}
		if _, err := jsonpath.New(expr); err != nil {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("field club.weather.fields.%s: invalid jsonpath %q: %v: %w", fp.key, expr, err, domain.ErrInvalidConfig),
			}
		}
		*fp.dst = expr
	}

	if cfg.Weather.Latitude < -90 || cfg.Weather.Latitude > 90 ||
		cfg.Weather.Longitude < -180 || cfg.Weather.Longitude > 180 {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("field club.weather: coordinate out of range: %w", domain.ErrInvalidConfig),
		}
	}

	return cfg, nil
}

type yamlConfig struct {
	Club struct {
		Paths struct {
			DataDir string `yaml:"data_dir"`
		} `yaml:"paths"`

		Weather struct {
			Enabled   *bool    `yaml:"enabled"`
			Latitude  *float64 `yaml:"latitude"`
			Longitude *float64 `yaml:"longitude"`
			BaseURL   string   `yaml:"base_url"`
			Timeout   string   `yaml:"timeout"`
			Fields    struct {
				Temperature string `yaml:"temperature"`
				WindSpeed   string `yaml:"wind_speed"`
				Code        string `yaml:"code"`
				Time        string `yaml:"time"`
			} `yaml:"fields"`
		} `yaml:"weather"`
	} `yaml:"club"`
}
