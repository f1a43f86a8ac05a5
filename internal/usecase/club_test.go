package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/infra/clubstore"
)

// --- fakes ---

type fakeStore struct {
	snap   domain.Snapshot
	report domain.LoadReport
	saved  *domain.Snapshot
	err    error
}

func (s *fakeStore) Save(snap domain.Snapshot) error {
	if s.err != nil {
		return s.err
	}
	s.saved = &snap
	return nil
}

func (s *fakeStore) Load() (domain.Snapshot, domain.LoadReport) {
	return s.snap, s.report
}

type fakeWeather struct {
	lat, lon float64
	w        domain.Weather
	err      error
}

func (f *fakeWeather) Current(_ context.Context, lat, lon float64) (domain.Weather, error) {
	f.lat, f.lon = lat, lon
	return f.w, f.err
}

// --- tests ---

func TestLoadClub_ReportsDanglingFacility(t *testing.T) {
	store := &fakeStore{
		snap: domain.Snapshot{
			Activities: []*domain.Activity{{ID: "a-1", Name: "Swim"}},
			Facilities: []domain.Facility{
				{Name: "Pool1", ActivityID: "a-1"},
				{Name: "Gym1", ActivityID: "gone"},
			},
		},
	}

	club, report := NewLoadClub(store, nil).Execute()

	if len(report.Dangling) != 1 || report.Dangling[0].ActivityID != "gone" {
		t.Fatalf("expected one dangling ref, got %+v", report.Dangling)
	}
	if club.Facilities()[0].ActivityName() != "Swim" {
		t.Fatalf("expected Pool1 linked to Swim")
	}
}

func TestSaveClub_PassesSnapshot(t *testing.T) {
	store := &fakeStore{}
	club := domain.NewClub()
	club.AddMember(domain.Member{Person: domain.Person{Name: "Ana"}})

	if err := NewSaveClub(store, nil).Execute(club); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if store.saved == nil || len(store.saved.Members) != 1 {
		t.Fatalf("expected snapshot with one member, got %+v", store.saved)
	}
}

func TestSaveClub_PropagatesError(t *testing.T) {
	boom := errors.New("disk full")
	store := &fakeStore{err: boom}

	if err := NewSaveClub(store, nil).Execute(domain.NewClub()); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}

// Integration: saving with the JSON store and loading back keeps the other
// collections when one document is corrupt.
func TestSaveThenLoad_CorruptEmployeesKeepsOthers(t *testing.T) {
	tmp := t.TempDir()
	store := clubstore.NewJSONStore(tmp, domain.DefaultConfig())

	club := domain.NewClub()
	club.AddMember(domain.Member{Person: domain.Person{Name: "Ana", Surname: "Diaz", NationalID: "1001"}})
	club.AddEmployee(domain.Employee{Person: domain.Person{Name: "Luis"}, Role: domain.RoleMaintenance})
	club.AddActivity(domain.Activity{Name: "Yoga"})
	if _, err := club.AddFacility("Gym1", domain.FacilityGym, 0); err != nil {
		t.Fatal(err)
	}

	if err := NewSaveClub(store, nil).Execute(club); err != nil {
		t.Fatalf("save: %v", err)
	}
	corruptFile(t, filepath.Join(store.Dir(), clubstore.EmployeesFile))

	got, report := NewLoadClub(store, nil).Execute()

	failed := report.Failed()
	if len(failed) != 1 || failed[0].Name != "employees" {
		t.Fatalf("expected employees failure only, got %+v", report.Documents)
	}
	if len(got.Employees()) != 0 {
		t.Fatalf("expected no employees")
	}
	if len(got.Members()) != 1 || len(got.Activities()) != 1 || len(got.Facilities()) != 1 {
		t.Fatalf("expected other collections loaded")
	}
	if got.Facilities()[0].ActivityName() != "Yoga" {
		t.Fatalf("expected facility relinked to Yoga")
	}
}

func TestCurrentWeather_UsesConfiguredCoordinate(t *testing.T) {
	cfg := domain.DefaultConfig().Weather
	cfg.Latitude, cfg.Longitude = 1.5, -2.5
	provider := &fakeWeather{w: domain.Weather{TemperatureC: 20}}

	w, err := NewCurrentWeather(provider, cfg).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if provider.lat != 1.5 || provider.lon != -2.5 {
		t.Fatalf("expected configured coordinate, got %v,%v", provider.lat, provider.lon)
	}
	if w.TemperatureC != 20 {
		t.Fatalf("unexpected weather %+v", w)
	}
}

func TestCurrentWeather_Disabled(t *testing.T) {
	cfg := domain.DefaultConfig().Weather
	cfg.Enabled = false

	_, err := NewCurrentWeather(&fakeWeather{}, cfg).Execute(context.Background())
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config when disabled, got %v", err)
	}
}
