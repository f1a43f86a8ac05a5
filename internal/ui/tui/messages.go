package tui

import "github.com/santiagonisi/Club-DeportivoUTN/internal/domain"

type clubLoadedMsg struct {
	club   *domain.Club
	report domain.LoadReport
}

type weatherMsg struct {
	weather domain.Weather
	err     error
}
