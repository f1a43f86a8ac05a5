package tui

import (
	"log/slog"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/usecase"
)

type Deps struct {
	LoadClub *usecase.LoadClub
	Weather  *usecase.CurrentWeather // optional

	Logger *slog.Logger
	Debug  bool
}
