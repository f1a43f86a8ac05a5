package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const panicToast = "Error inesperado (ver logs)"

// safeModel keeps a panic in one keypress from tearing down the terminal.
// After a recovered Update the browser goes back to the home screen.
type safeModel struct {
	m      model
	log    *slog.Logger
	panics int
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) report(where string, r any) {
	s.log.Error("tui.panic",
		"where", where,
		"panic", fmt.Sprint(r),
		"count", s.panics+1,
		"stack", string(debug.Stack()),
	)
}

func (s safeModel) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.report("update", r)
			s.panics++
			s.m = s.m.back()
			s.m.scr = screenHome
			s.m.section = ""
			s.m.toast = panicToast
			next, cmd = s, nil
		}
	}()

	inner, c := s.m.Update(msg)
	if mm, ok := inner.(model); ok {
		s.m = mm
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.report("view", r)
			out = panicToast
		}
	}()
	return s.m.View()
}

var _ tea.Model = safeModel{}
