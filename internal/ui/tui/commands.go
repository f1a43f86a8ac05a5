package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
)

func cmdLoadClub(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.LoadClub == nil {
			return clubLoadedMsg{club: domain.NewClub()}
		}
		club, report := deps.LoadClub.Execute()
		return clubLoadedMsg{club: club, report: report}
	}
}

func cmdFetchWeather(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Weather == nil {
			return weatherMsg{err: errors.New("weather lookup not configured")}
		}
		w, err := deps.Weather.Execute(context.Background())
		if err != nil && deps.Logger != nil {
			deps.Logger.Warn("tui.weather_failed", "err", err)
		}
		return weatherMsg{weather: w, err: err}
	}
}
