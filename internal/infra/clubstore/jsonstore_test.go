package clubstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
)

func newStore(t *testing.T) (*JSONStore, string) {
	t.Helper()
	tmp := t.TempDir()
	cfg := domain.DefaultConfig()
	cfg.Paths.DataDir = "data"
	return NewJSONStore(tmp, cfg), filepath.Join(tmp, "data")
}

func sampleClub() *domain.Club {
	c := domain.NewClub()
	c.AddMember(domain.Member{
		Person: domain.Person{
			Name:       "Ana",
			Surname:    "Diaz",
			NationalID: "1001",
			BirthDate:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		Category:   domain.CategoryAdult,
		MonthlyFee: 5000.0,
	})
	c.AddMember(domain.Member{
		Person:     domain.Person{Name: "Tomi", Surname: "Gil", NationalID: "1002"},
		Category:   domain.CategoryChild,
		MonthlyFee: 1250.75,
	})
	c.AddEmployee(domain.Employee{
		Person: domain.Person{
			Name:       "Luis",
			Surname:    "Paz",
			NationalID: "2001",
			BirthDate:  time.Date(1980, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		Role:   domain.RoleCoach,
		Salary: 90000,
	})
	c.AddActivity(domain.Activity{Name: "Yoga", Days: "Lun/Mie", Schedule: "18:00"})
	c.AddActivity(domain.Activity{Name: "Swim", Days: "Mar/Jue", Schedule: "19:30"})
	_ = c.Enroll(0, 1)
	_ = c.Enroll(1, 1)
	_, _ = c.AddFacility("Pool1", domain.FacilityPool, 1)
	return c
}

func TestSave_WritesFourDocuments(t *testing.T) {
	store, dir := newStore(t)

	if err := store.Save(sampleClub().Snapshot()); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	for _, f := range []string{MembersFile, EmployeesFile, ActivitiesFile, FacilitiesFile} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Fatalf("expected %s, stat err=%v", f, err)
		}
		if _, err := os.Stat(filepath.Join(dir, f+".tmp")); !os.IsNotExist(err) {
			t.Fatalf("expected no leftover tmp for %s", f)
		}
	}

	b, err := os.ReadFile(filepath.Join(dir, MembersFile))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if raw[0]["category"] != "Adult" {
		t.Fatalf("expected enum label, got %v", raw[0]["category"])
	}
	if raw[0]["birth_date"] != "1990-01-01" {
		t.Fatalf("expected date-only birth_date, got %v", raw[0]["birth_date"])
	}
}

func TestRoundTrip_PreservesFieldsAndReferences(t *testing.T) {
	store, _ := newStore(t)
	orig := sampleClub()

	if err := store.Save(orig.Snapshot()); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	snap, report := store.Load()
	if err := report.Err(); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	got, dangling := domain.RestoreClub(snap)
	if len(dangling) != 0 {
		t.Fatalf("unexpected dangling refs: %+v", dangling)
	}

	wantMembers := orig.Members()
	gotMembers := got.Members()
	if len(gotMembers) != len(wantMembers) {
		t.Fatalf("expected %d members, got %d", len(wantMembers), len(gotMembers))
	}
	for i := range wantMembers {
		w, g := wantMembers[i], gotMembers[i]
		if w.Name != g.Name || w.Surname != g.Surname || w.NationalID != g.NationalID ||
			!w.BirthDate.Equal(g.BirthDate) || w.Category != g.Category || w.MonthlyFee != g.MonthlyFee {
			t.Fatalf("member %d mismatch: want %+v got %+v", i, w, g)
		}
	}

	emps := got.Employees()
	if len(emps) != 1 || emps[0].Role != domain.RoleCoach || emps[0].Salary != 90000 {
		t.Fatalf("unexpected employees: %+v", emps)
	}

	acts := got.Activities()
	if len(acts) != 2 || acts[1].Name != "Swim" || acts[1].EnrolledCount() != 2 {
		t.Fatalf("unexpected activities: %+v", acts)
	}
	if acts[1].ID != orig.Activities()[1].ID {
		t.Fatalf("expected activity ID preserved")
	}
	if acts[1].Enrolled[1].MonthlyFee != 1250.75 {
		t.Fatalf("expected enrolled member copied verbatim")
	}

	fs := got.Facilities()
	if len(fs) != 1 {
		t.Fatalf("expected 1 facility, got %d", len(fs))
	}
	if fs[0].Activity != acts[1] {
		t.Fatalf("expected facility to reference the reloaded activity")
	}
	if fs[0].Type != domain.FacilityPool || fs[0].ActivityName() != "Swim" {
		t.Fatalf("unexpected facility: %+v", fs[0])
	}
}

func TestRoundTrip_EmptyClub(t *testing.T) {
	store, dir := newStore(t)

	if err := store.Save(domain.NewClub().Snapshot()); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	b, _ := os.ReadFile(filepath.Join(dir, MembersFile))
	if strings.TrimSpace(string(b)) != "[]" {
		t.Fatalf("expected empty array document, got %q", b)
	}

	snap, report := store.Load()
	if err := report.Err(); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(snap.Members)+len(snap.Employees)+len(snap.Activities)+len(snap.Facilities) != 0 {
		t.Fatalf("expected four empty collections, got %+v", snap)
	}
	for _, d := range report.Documents {
		if d.Status != domain.DocumentLoaded {
			t.Fatalf("expected %s loaded, got %s", d.Name, d.Status)
		}
	}
}

func TestLoad_MissingDocumentsAreEmpty(t *testing.T) {
	store, _ := newStore(t)

	snap, report := store.Load()
	if report.Err() != nil {
		t.Fatalf("missing documents must not be errors: %v", report.Err())
	}
	if len(report.Documents) != 4 {
		t.Fatalf("expected 4 document results, got %d", len(report.Documents))
	}
	for _, d := range report.Documents {
		if d.Status != domain.DocumentMissing {
			t.Fatalf("expected %s missing, got %s", d.Name, d.Status)
		}
	}
	if snap.Members != nil || snap.Facilities != nil {
		t.Fatalf("expected empty snapshot")
	}
}

func TestLoad_CorruptDocumentFailsDistinctly(t *testing.T) {
	store, dir := newStore(t)
	if err := store.Save(sampleClub().Snapshot()); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, EmployeesFile), []byte(`[{"name": "Luis",`), 0o600); err != nil {
		t.Fatalf("corrupt: %v", err)
	}

	snap, report := store.Load()

	failed := report.Failed()
	if len(failed) != 1 || failed[0].Name != "employees" {
		t.Fatalf("expected only employees to fail, got %+v", failed)
	}
	if !domain.IsKind(failed[0].Err, domain.KindCorrupt) {
		t.Fatalf("expected corrupt_document kind, got %v", failed[0].Err)
	}
	if !strings.Contains(report.Err().Error(), EmployeesFile) {
		t.Fatalf("expected path in error, got %v", report.Err())
	}

	if len(snap.Employees) != 0 {
		t.Fatalf("expected employees empty after failure")
	}
	if len(snap.Members) != 2 || len(snap.Activities) != 2 || len(snap.Facilities) != 1 {
		t.Fatalf("expected other collections kept, got m=%d a=%d f=%d",
			len(snap.Members), len(snap.Activities), len(snap.Facilities))
	}
}

func TestSave_KeepsBackupOfDocumentThatFailedToLoad(t *testing.T) {
	store, dir := newStore(t)
	if err := store.Save(sampleClub().Snapshot()); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	damaged := []byte(`[{"name": "Luis",`)
	employees := filepath.Join(dir, EmployeesFile)
	if err := os.WriteFile(employees, damaged, 0o600); err != nil {
		t.Fatalf("corrupt: %v", err)
	}

	snap, report := store.Load()
	if len(report.Failed()) != 1 {
		t.Fatalf("expected one failed document, got %+v", report.Documents)
	}
	if err := store.Save(snap); err != nil {
		t.Fatalf("Save after failed load: %v", err)
	}

	b, err := os.ReadFile(employees + BackupSuffix)
	if err != nil {
		t.Fatalf("expected backup: %v", err)
	}
	if string(b) != string(damaged) {
		t.Fatalf("backup should hold the damaged bytes, got %q", b)
	}
	if _, err := os.Stat(filepath.Join(dir, MembersFile+BackupSuffix)); !os.IsNotExist(err) {
		t.Fatalf("loaded documents must not be backed up, stat err=%v", err)
	}

	// The replacement is valid and a later save leaves the backup alone.
	_, report = store.Load()
	if report.Err() != nil {
		t.Fatalf("reload: %v", report.Err())
	}
	if err := store.Save(sampleClub().Snapshot()); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if b, _ := os.ReadFile(employees + BackupSuffix); string(b) != string(damaged) {
		t.Fatalf("backup overwritten: %q", b)
	}
}

func TestSave_WithoutLoadWritesNoBackups(t *testing.T) {
	store, dir := newStore(t)
	for i := 0; i < 2; i++ {
		if err := store.Save(sampleClub().Snapshot()); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}
	baks, err := filepath.Glob(filepath.Join(dir, "*"+BackupSuffix))
	if err != nil {
		t.Fatal(err)
	}
	if len(baks) != 0 {
		t.Fatalf("unexpected backups %v", baks)
	}
}

func TestLoad_BadEnumLabelFailsWithField(t *testing.T) {
	store, dir := newStore(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	doc := `[{"name":"Pool1","type":"Hangar","activity_id":"x"}]`
	if err := os.WriteFile(filepath.Join(dir, FacilitiesFile), []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	snap, report := store.Load()
	failed := report.Failed()
	if len(failed) != 1 || failed[0].Name != "facilities" {
		t.Fatalf("expected facilities failure, got %+v", report.Documents)
	}
	if !strings.Contains(failed[0].Err.Error(), "facilities[0].type") {
		t.Fatalf("expected field in error, got %v", failed[0].Err)
	}
	if snap.Facilities != nil {
		t.Fatalf("expected no facilities")
	}
}

func TestSave_OverwritesExistingDocuments(t *testing.T) {
	store, _ := newStore(t)
	if err := store.Save(sampleClub().Snapshot()); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(domain.NewClub().Snapshot()); err != nil {
		t.Fatal(err)
	}

	snap, report := store.Load()
	if report.Err() != nil {
		t.Fatalf("load: %v", report.Err())
	}
	if len(snap.Members) != 0 || len(snap.Activities) != 0 {
		t.Fatalf("expected last write to win")
	}
}

func TestWithIndentDisabled(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithIndent(false))
	if err := store.Save(sampleClub().Snapshot()); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(store.Dir(), EmployeesFile))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(string(b), "\n") != 1 {
		t.Fatalf("expected single-line document, got %q", b)
	}
}
