package clubstore

import (
	"fmt"
	"time"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
)

const dateLayout = "2006-01-02"

func toJSONMembers(in []domain.Member) []jsonMember {
	out := make([]jsonMember, 0, len(in))
	for _, m := range in {
		out = append(out, jsonMember{
			Name:       m.Name,
			Surname:    m.Surname,
			NationalID: m.NationalID,
			BirthDate:  formatDate(m.BirthDate),
			Category:   m.Category.String(),
			MonthlyFee: m.MonthlyFee,
		})
	}
	return out
}

func toJSONEmployees(in []domain.Employee) []jsonEmployee {
	out := make([]jsonEmployee, 0, len(in))
	for _, e := range in {
		out = append(out, jsonEmployee{
			Name:       e.Name,
			Surname:    e.Surname,
			NationalID: e.NationalID,
			BirthDate:  formatDate(e.BirthDate),
			Role:       e.Role.String(),
			Salary:     e.Salary,
		})
	}
	return out
}

func toJSONActivities(in []*domain.Activity) []jsonActivity {
	out := make([]jsonActivity, 0, len(in))
	for _, a := range in {
		if a == nil {
			continue
		}
		out = append(out, jsonActivity{
			ID:       a.ID,
			Name:     a.Name,
			Days:     a.Days,
			Schedule: a.Schedule,
			Enrolled: toJSONMembers(a.Enrolled),
		})
	}
	return out
}

func toJSONFacilities(in []domain.Facility) []jsonFacility {
	out := make([]jsonFacility, 0, len(in))
	for _, f := range in {
		id := f.ActivityID
		if f.Activity != nil {
			id = f.Activity.ID
		}
		out = append(out, jsonFacility{
			Name:       f.Name,
			Type:       f.Type.String(),
			ActivityID: id,
		})
	}
	return out
}

func fromJSONMembers(field string, in []jsonMember) ([]domain.Member, error) {
	out := make([]domain.Member, 0, len(in))
	for i, m := range in {
		prefix := fmt.Sprintf("%s[%d]", field, i)
		birth, err := parseDate(m.BirthDate)
		if err != nil {
			return nil, invalidField(prefix+".birth_date", err)
		}
		cat, err := domain.CategoryFromLabel(m.Category)
		if err != nil {
			return nil, invalidField(prefix+".category", err)
		}
		out = append(out, domain.Member{
			Person: domain.Person{
				Name:       m.Name,
				Surname:    m.Surname,
				NationalID: m.NationalID,
				BirthDate:  birth,
			},
			Category:   cat,
			MonthlyFee: m.MonthlyFee,
		})
	}
	return out, nil
}

func fromJSONEmployees(in []jsonEmployee) ([]domain.Employee, error) {
	out := make([]domain.Employee, 0, len(in))
	for i, e := range in {
		prefix := fmt.Sprintf("employees[%d]", i)
		birth, err := parseDate(e.BirthDate)
		if err != nil {
			return nil, invalidField(prefix+".birth_date", err)
		}
		role, err := domain.RoleFromLabel(e.Role)
		if err != nil {
			return nil, invalidField(prefix+".role", err)
		}
		out = append(out, domain.Employee{
			Person: domain.Person{
				Name:       e.Name,
				Surname:    e.Surname,
				NationalID: e.NationalID,
				BirthDate:  birth,
			},
			Role:   role,
			Salary: e.Salary,
		})
	}
	return out, nil
}

func fromJSONActivities(in []jsonActivity) ([]*domain.Activity, error) {
	out := make([]*domain.Activity, 0, len(in))
	for i, a := range in {
		enrolled, err := fromJSONMembers(fmt.Sprintf("activities[%d].enrolled_members", i), a.Enrolled)
		if err != nil {
			return nil, err
		}
		out = append(out, &domain.Activity{
			ID:       a.ID,
			Name:     a.Name,
			Days:     a.Days,
			Schedule: a.Schedule,
			Enrolled: enrolled,
		})
	}
	return out, nil
}

func fromJSONFacilities(in []jsonFacility) ([]domain.Facility, error) {
	out := make([]domain.Facility, 0, len(in))
	for i, f := range in {
		typ, err := domain.FacilityTypeFromLabel(f.Type)
		if err != nil {
			return nil, invalidField(fmt.Sprintf("facilities[%d].type", i), err)
		}
		out = append(out, domain.Facility{
			Name:       f.Name,
			Type:       typ,
			ActivityID: f.ActivityID,
		})
	}
	return out, nil
}

// formatDate keeps documents date-only; the zero time stays empty.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

func invalidField(field string, err error) error {
	return fmt.Errorf("field %s: %w", field, err)
}
