package shell

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
)

const dateLayout = "2006-01-02"

func invalidInput(format string, args ...any) error {
	return &domain.OpError{
		Op:   "shell.input",
		Kind: domain.KindInvalidInput,
		Err:  fmt.Errorf(format+": %w", append(args, domain.ErrInvalidInput)...),
	}
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, invalidInput("fecha %q (use yyyy-mm-dd)", s)
	}
	return t, nil
}

// parseAmount accepts "5000", "5000.50" and "5000,50". Negative values are
// accepted as typed; NaN and infinities are not, since they cannot be saved.
func parseAmount(s string) (float64, error) {
	in := s
	if !strings.Contains(in, ".") {
		in = strings.Replace(in, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(in, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalidInput("importe %q", s)
	}
	return v, nil
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalidInput("número %q", s)
	}
	return n, nil
}

// enumPrompt renders "Label (0:A, 1:B): ".
func enumPrompt(label string, values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d:%s", i, v)
	}
	return fmt.Sprintf("%s (%s): ", label, strings.Join(parts, ", "))
}
