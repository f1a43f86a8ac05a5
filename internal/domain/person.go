package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Person holds the identity fields shared by members and employees.
// NationalID uniqueness is not enforced anywhere.
type Person struct {
	Name       string
	Surname    string
	NationalID string
	BirthDate  time.Time
}

func (p Person) String() string {
	return fmt.Sprintf("%s %s - DNI: %s", p.Name, p.Surname, p.NationalID)
}

// Payable is implemented by anything the club pays or charges monthly.
type Payable interface {
	PayAmount() float64
}

// TotalPay sums PayAmount over items.
func TotalPay[T Payable](items []T) float64 {
	var total float64
	for _, it := range items {
		total += it.PayAmount()
	}
	return total
}

// Member is a paying club member.
type Member struct {
	Person
	Category   Category
	MonthlyFee float64
}

func (m Member) PayAmount() float64 { return m.MonthlyFee }

func (m Member) String() string {
	return fmt.Sprintf("%s | Categoría: %s | Cuota: $%s", m.Person, m.Category, formatAmount(m.MonthlyFee))
}

// Employee is a member of the club's staff.
type Employee struct {
	Person
	Role   Role
	Salary float64
}

func (e Employee) PayAmount() float64 { return e.Salary }

func (e Employee) String() string {
	return fmt.Sprintf("%s | Puesto: %s | Sueldo: $%s", e.Person, e.Role, formatAmount(e.Salary))
}

// formatAmount prints the shortest exact representation (5000, 1234.5).
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var (
	_ Payable = Member{}
	_ Payable = Employee{}
)
