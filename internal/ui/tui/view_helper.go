package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderActivity(a *domain.Activity) string {
	var b strings.Builder

	b.WriteString(a.Name)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Días: %s\nHorario: %s\n\n", a.Days, a.Schedule))

	if len(a.Enrolled) == 0 {
		b.WriteString("Inscriptos: (ninguno)\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Inscriptos (%d):\n", len(a.Enrolled)))
	for _, m := range a.Enrolled {
		b.WriteString("  - ")
		b.WriteString(clampString(m.String(), 72))
		b.WriteString("\n")
	}
	return b.String()
}
