package display

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
)

// UserMessage turns an error into one short line for the console or TUI.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindInvalidInput, domain.KindOutOfRange:
			return "entrada inválida: " + rootCause(oe.Err)

		case domain.KindCorrupt:
			base := "documento"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			return "documento dañado " + base + " (" + firstLine(rootCause(oe.Err)) + ")"

		case domain.KindExternal:
			return "servicio externo: " + firstLine(rootCause(oe.Err))

		case domain.KindInvalidConfig:
			return "configuración inválida: " + firstLine(rootCause(oe.Err))

		case domain.KindExecution:
			if strings.TrimSpace(oe.Path) != "" {
				return "no se pudo escribir " + filepath.Base(oe.Path) + " (ver logs)"
			}
			return "error inesperado (ver logs)"

		case domain.KindNotFound:
			return "no encontrado"

		default:
			return "error inesperado (ver logs)"
		}
	}

	return err.Error()
}

// rootCause strips the trailing sentinel that domain errors wrap.
func rootCause(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, sentinel := range []error{domain.ErrInvalidInput, domain.ErrOutOfRange, domain.ErrCorrupt, domain.ErrExternal, domain.ErrInvalidConfig} {
		msg = strings.TrimSuffix(msg, ": "+sentinel.Error())
		msg = strings.TrimSuffix(msg, "\n"+sentinel.Error())
	}
	return msg
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
