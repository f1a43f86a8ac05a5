// Package shell is the numbered, line-oriented console menu. It reads one
// line per prompt, mutates the Club, and triggers persistence on request.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/ui/display"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/usecase"
)

// Deps are the collaborators the shell drives. Weather may be nil.
type Deps struct {
	Club    *domain.Club
	Save    *usecase.SaveClub
	Weather *usecase.CurrentWeather
	Logger  *slog.Logger
}

// maxLineBytes bounds one input line. Longer lines are discarded whole and
// reported as invalid input.
const maxLineBytes = 4 << 10

type Shell struct {
	in    *bufio.Reader
	out   io.Writer
	deps  Deps
	theme display.Theme
}

type menuEntry struct {
	key   string
	label string
	run   func(s *Shell, ctx context.Context) (exit bool, err error)
}

var menu = []menuEntry{
	{"1", "Agregar Socio", (*Shell).addMember},
	{"2", "Agregar Empleado", (*Shell).addEmployee},
	{"3", "Listar Socios", (*Shell).listMembers},
	{"4", "Listar Empleados", (*Shell).listEmployees},
	{"5", "Agregar Actividad", (*Shell).addActivity},
	{"6", "Agregar Instalación", (*Shell).addFacility},
	{"7", "Guardar y Salir", (*Shell).saveAndExit},
	{"8", "Consultar Clima", (*Shell).showWeather},
	{"9", "Inscribir Socio en Actividad", (*Shell).enroll},
	{"10", "Listar Actividades", (*Shell).listActivities},
	{"11", "Listar Instalaciones", (*Shell).listFacilities},
	{"0", "Salir sin guardar", (*Shell).quit},
}

func New(in io.Reader, out io.Writer, deps Deps) *Shell {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Shell{
		in:    bufio.NewReader(in),
		out:   out,
		deps:  deps,
		theme: display.DefaultTheme(),
	}
}

// Run loops until the user saves, quits, or input ends. Errors from a single
// operation are printed and the menu is shown again; end of input exits
// without saving.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		choice, err := s.readLine("Seleccione una opción: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.deps.Logger.Info("shell.eof")
				return nil
			}
			if domain.IsKind(err, domain.KindInvalidInput) {
				s.printErr(err)
				continue
			}
			return err
		}

		entry, ok := lookup(choice)
		if !ok {
			s.printErr(invalidInput("opción %q inexistente", choice))
			continue
		}

		exit, err := entry.run(s, ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.deps.Logger.Info("shell.eof")
				return nil
			}
			s.deps.Logger.Warn("shell.op_failed", "option", entry.key, "err", err)
			s.printErr(err)
			continue
		}
		if exit {
			return nil
		}
	}
}

// ReportLoad prints the per-document outcome of the startup load.
func (s *Shell) ReportLoad(r domain.LoadReport) {
	for _, d := range r.Documents {
		if d.Status == domain.DocumentFailed {
			fmt.Fprintf(s.out, "No se pudo cargar %s: %s\n", d.Name, display.UserMessage(d.Err))
		}
	}
	for _, ref := range r.Dangling {
		fmt.Fprintf(s.out, "Instalación %q: actividad %s no encontrada\n", ref.Facility, ref.ActivityID)
	}
}

func lookup(choice string) (menuEntry, bool) {
	for _, e := range menu {
		if e.key == choice {
			return e, true
		}
	}
	return menuEntry{}, false
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.theme.Title.Render(" Menú Principal "))
	for _, e := range menu {
		fmt.Fprintf(s.out, "%s. %s\n", e.key, e.label)
	}
}

func (s *Shell) printErr(err error) {
	fmt.Fprintf(s.out, "Error: %s\n", display.UserMessage(err))
}

// readLine prints label and returns the next trimmed input line. A line
// longer than maxLineBytes is consumed and returned as invalid input.
func (s *Shell) readLine(label string) (string, error) {
	fmt.Fprint(s.out, label)

	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, more, err := s.in.ReadLine()
		if err != nil {
			if len(buf) > 0 || tooLong {
				break
			}
			return "", err
		}
		if !tooLong {
			if len(buf)+len(chunk) > maxLineBytes {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !more {
			break
		}
	}
	if tooLong {
		return "", invalidInput("línea de más de %d bytes", maxLineBytes)
	}
	return strings.TrimSpace(string(buf)), nil
}
