package usecase

import (
	"context"
	"fmt"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/ports"
)

// CurrentWeather looks up the weather at the club's fixed coordinate.
type CurrentWeather struct {
	provider ports.WeatherProvider
	cfg      domain.WeatherConfig
}

func NewCurrentWeather(provider ports.WeatherProvider, cfg domain.WeatherConfig) *CurrentWeather {
	return &CurrentWeather{provider: provider, cfg: cfg}
}

func (uc *CurrentWeather) Execute(ctx context.Context) (domain.Weather, error) {
	if !uc.cfg.Enabled || uc.provider == nil {
		return domain.Weather{}, &domain.OpError{
			Op:   "usecase.current_weather",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("weather lookup disabled: %w", domain.ErrInvalidConfig),
		}
	}
	return uc.provider.Current(ctx, uc.cfg.Latitude, uc.cfg.Longitude)
}
