package shell

import (
	"context"
	"fmt"
	"strconv"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/ui/display"
)

func (s *Shell) readPerson() (domain.Person, error) {
	var p domain.Person
	var err error

	if p.Name, err = s.readLine("Nombre: "); err != nil {
		return p, err
	}
	if p.Surname, err = s.readLine("Apellido: "); err != nil {
		return p, err
	}
	if p.NationalID, err = s.readLine("DNI: "); err != nil {
		return p, err
	}
	raw, err := s.readLine("Fecha Nacimiento (yyyy-mm-dd): ")
	if err != nil {
		return p, err
	}
	p.BirthDate, err = parseDate(raw)
	return p, err
}

func (s *Shell) addMember(_ context.Context) (bool, error) {
	p, err := s.readPerson()
	if err != nil {
		return false, err
	}

	raw, err := s.readLine(enumPrompt("Categoría", domain.CategoryLabels()))
	if err != nil {
		return false, err
	}
	cat, err := domain.ParseCategory(raw)
	if err != nil {
		return false, err
	}

	raw, err = s.readLine("Cuota mensual: ")
	if err != nil {
		return false, err
	}
	fee, err := parseAmount(raw)
	if err != nil {
		return false, err
	}

	s.deps.Club.AddMember(domain.Member{Person: p, Category: cat, MonthlyFee: fee})
	s.deps.Logger.Info("club.member_added", "dni", p.NationalID, "category", cat.String())
	return false, nil
}

func (s *Shell) addEmployee(_ context.Context) (bool, error) {
	p, err := s.readPerson()
	if err != nil {
		return false, err
	}

	raw, err := s.readLine(enumPrompt("Puesto", domain.RoleLabels()))
	if err != nil {
		return false, err
	}
	role, err := domain.ParseRole(raw)
	if err != nil {
		return false, err
	}

	raw, err = s.readLine("Sueldo: ")
	if err != nil {
		return false, err
	}
	salary, err := parseAmount(raw)
	if err != nil {
		return false, err
	}

	s.deps.Club.AddEmployee(domain.Employee{Person: p, Role: role, Salary: salary})
	s.deps.Logger.Info("club.employee_added", "dni", p.NationalID, "role", role.String())
	return false, nil
}

func (s *Shell) listMembers(_ context.Context) (bool, error) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.theme.Title.Render(" Socios "))
	members := s.deps.Club.Members()
	if len(members) == 0 {
		fmt.Fprintln(s.out, "(sin socios)")
		return false, nil
	}
	for _, m := range members {
		fmt.Fprintln(s.out, m.String())
	}
	fmt.Fprintf(s.out, "Total cuotas: $%s\n", strconv.FormatFloat(s.deps.Club.MonthlyIncome(), 'f', -1, 64))
	return false, nil
}

func (s *Shell) listEmployees(_ context.Context) (bool, error) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.theme.Title.Render(" Empleados "))
	employees := s.deps.Club.Employees()
	if len(employees) == 0 {
		fmt.Fprintln(s.out, "(sin empleados)")
		return false, nil
	}
	for _, e := range employees {
		fmt.Fprintln(s.out, e.String())
	}
	fmt.Fprintf(s.out, "Total sueldos: $%s\n", strconv.FormatFloat(s.deps.Club.Payroll(), 'f', -1, 64))
	return false, nil
}

func (s *Shell) listActivities(_ context.Context) (bool, error) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.theme.Title.Render(" Actividades "))
	acts := s.deps.Club.Activities()
	if len(acts) == 0 {
		fmt.Fprintln(s.out, "(sin actividades)")
		return false, nil
	}
	for _, a := range acts {
		fmt.Fprintln(s.out, a.String())
	}
	return false, nil
}

func (s *Shell) listFacilities(_ context.Context) (bool, error) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.theme.Title.Render(" Instalaciones "))
	fs := s.deps.Club.Facilities()
	if len(fs) == 0 {
		fmt.Fprintln(s.out, "(sin instalaciones)")
		return false, nil
	}
	for _, f := range fs {
		fmt.Fprintln(s.out, f.String())
	}
	return false, nil
}

func (s *Shell) addActivity(_ context.Context) (bool, error) {
	var a domain.Activity
	var err error

	if a.Name, err = s.readLine("Nombre de actividad: "); err != nil {
		return false, err
	}
	if a.Days, err = s.readLine("Días: "); err != nil {
		return false, err
	}
	if a.Schedule, err = s.readLine("Horario: "); err != nil {
		return false, err
	}

	added := s.deps.Club.AddActivity(a)
	s.deps.Logger.Info("club.activity_added", "id", added.ID, "name", added.Name)
	return false, nil
}

func (s *Shell) addFacility(_ context.Context) (bool, error) {
	name, err := s.readLine("Nombre instalación: ")
	if err != nil {
		return false, err
	}
	raw, err := s.readLine(enumPrompt("Tipo", domain.FacilityTypeLabels()))
	if err != nil {
		return false, err
	}
	typ, err := domain.ParseFacilityType(raw)
	if err != nil {
		return false, err
	}

	fmt.Fprintln(s.out, "Seleccione actividad por número:")
	s.printActivityIndex()
	idx, err := s.readIndex("")
	if err != nil {
		return false, err
	}

	f, err := s.deps.Club.AddFacility(name, typ, idx)
	if err != nil {
		return false, err
	}
	s.deps.Logger.Info("club.facility_added", "name", f.Name, "activity_id", f.ActivityID)
	return false, nil
}

func (s *Shell) enroll(_ context.Context) (bool, error) {
	fmt.Fprintln(s.out, "Seleccione socio por número:")
	for i, m := range s.deps.Club.Members() {
		fmt.Fprintf(s.out, "%d: %s %s\n", i, m.Name, m.Surname)
	}
	mi, err := s.readIndex("")
	if err != nil {
		return false, err
	}

	fmt.Fprintln(s.out, "Seleccione actividad por número:")
	s.printActivityIndex()
	ai, err := s.readIndex("")
	if err != nil {
		return false, err
	}

	if err := s.deps.Club.Enroll(mi, ai); err != nil {
		return false, err
	}
	s.deps.Logger.Info("club.member_enrolled", "member", mi, "activity", ai)
	fmt.Fprintln(s.out, "Socio inscripto.")
	return false, nil
}

func (s *Shell) saveAndExit(_ context.Context) (bool, error) {
	if s.deps.Save == nil {
		return false, fmt.Errorf("guardado no configurado")
	}
	if err := s.deps.Save.Execute(s.deps.Club); err != nil {
		return false, err
	}
	fmt.Fprintln(s.out, "Datos guardados.")
	return true, nil
}

func (s *Shell) showWeather(ctx context.Context) (bool, error) {
	if s.deps.Weather == nil {
		fmt.Fprintln(s.out, "Consulta de clima no disponible.")
		return false, nil
	}
	w, err := s.deps.Weather.Execute(ctx)
	if err != nil {
		s.deps.Logger.Warn("shell.weather_failed", "err", err)
		fmt.Fprintf(s.out, "No se pudo obtener el clima: %s\n", display.UserMessage(err))
		return false, nil
	}
	fmt.Fprintf(s.out, "Clima actual: %s\n", w.String())
	return false, nil
}

func (s *Shell) quit(_ context.Context) (bool, error) {
	fmt.Fprintln(s.out, "Saliendo sin guardar.")
	return true, nil
}

func (s *Shell) printActivityIndex() {
	for i, a := range s.deps.Club.Activities() {
		fmt.Fprintf(s.out, "%d: %s\n", i, a.Name)
	}
}

func (s *Shell) readIndex(label string) (int, error) {
	raw, err := s.readLine(label)
	if err != nil {
		return 0, err
	}
	return parseIndex(raw)
}
