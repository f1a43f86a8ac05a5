package domain

import (
	"strings"
	"testing"
	"time"
)

func TestMemberString_ListingFormat(t *testing.T) {
	m := Member{
		Person: Person{
			Name:       "Ana",
			Surname:    "Diaz",
			NationalID: "1001",
			BirthDate:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		Category:   CategoryAdult,
		MonthlyFee: 5000.0,
	}

	s := m.String()
	for _, want := range []string{"Ana Diaz - DNI: 1001", "Cuota: $5000", "Categoría: Adult"} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected %q in %q", want, s)
		}
	}
}

func TestEmployeeString(t *testing.T) {
	e := Employee{
		Person: Person{Name: "Luis", Surname: "Paz", NationalID: "2002"},
		Role:   RoleCoach,
		Salary: 1234.5,
	}
	want := "Luis Paz - DNI: 2002 | Puesto: Coach | Sueldo: $1234.5"
	if got := e.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestPayAmount_ReturnsStoredValueVerbatim(t *testing.T) {
	cases := []float64{0, 5000, 0.1 + 0.2, -10, 1e9 + 0.75}
	for _, v := range cases {
		m := Member{MonthlyFee: v}
		if m.PayAmount() != v {
			t.Errorf("member PayAmount=%v, want %v", m.PayAmount(), v)
		}
		e := Employee{Salary: v}
		if e.PayAmount() != v {
			t.Errorf("employee PayAmount=%v, want %v", e.PayAmount(), v)
		}
	}
}

func TestTotalPay(t *testing.T) {
	members := []Member{{MonthlyFee: 100}, {MonthlyFee: 250.5}}
	if got := TotalPay(members); got != 350.5 {
		t.Fatalf("expected 350.5, got %v", got)
	}
	if got := TotalPay([]Employee(nil)); got != 0 {
		t.Fatalf("expected 0 for empty, got %v", got)
	}
}

func TestWeatherString(t *testing.T) {
	w := Weather{TemperatureC: 21.34, WindSpeedKmh: 9, Code: 63, ObservedAt: "2026-10-19T12:00"}
	want := "21.3°C, wind 9.0 km/h, Rain (2026-10-19T12:00)"
	if got := w.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got := (Weather{Code: 42}).Condition(); got != "Code 42" {
		t.Fatalf("unexpected fallback %q", got)
	}
}
