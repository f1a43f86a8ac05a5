package ports

import (
	"context"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
)

// WeatherProvider fetches current conditions for a coordinate.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (domain.Weather, error)
}
