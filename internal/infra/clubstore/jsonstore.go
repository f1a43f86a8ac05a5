package clubstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/ports"
)

const defaultDataDir = "data"

// Document file names, one per collection.
const (
	MembersFile    = "members.json"
	EmployeesFile  = "employees.json"
	ActivitiesFile = "activities.json"
	FacilitiesFile = "facilities.json"
)

// JSONStore keeps each collection in its own JSON document under rootDir/dataDir.
// Each document is replaced atomically; the four together are not.
//
// A document that failed to load is moved to "<file>.bak" before Save
// replaces it, so a damaged file can still be inspected or repaired by hand.
type JSONStore struct {
	rootDir     string
	dataDirName string
	indent      bool

	mu     sync.Mutex
	failed map[string]bool // paths whose last Load failed
}

// BackupSuffix is appended to a failed document kept aside by Save.
const BackupSuffix = ".bak"

type Option func(*JSONStore)

// WithIndent toggles pretty-printed documents (default on).
func WithIndent(enabled bool) Option {
	return func(s *JSONStore) { s.indent = enabled }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dataDir := cfg.Paths.DataDir
	if strings.TrimSpace(dataDir) == "" {
		dataDir = defaultDataDir
	}

	s := &JSONStore{
		rootDir:     root,
		dataDirName: dataDir,
		indent:      true,
		failed:      map[string]bool{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ClubStore = (*JSONStore)(nil)

// Dir is the directory holding the documents.
func (s *JSONStore) Dir() string {
	if filepath.IsAbs(s.dataDirName) {
		return s.dataDirName
	}
	return filepath.Join(s.rootDir, s.dataDirName)
}

// Save writes members, employees, activities and facilities in that order and
// stops at the first failure. Documents written before the failure keep the
// new state.
func (s *JSONStore) Save(snap domain.Snapshot) error {
	dir := s.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "clubstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	docs := []struct {
		file string
		v    any
	}{
		{MembersFile, toJSONMembers(snap.Members)},
		{EmployeesFile, toJSONEmployees(snap.Employees)},
		{ActivitiesFile, toJSONActivities(snap.Activities)},
		{FacilitiesFile, toJSONFacilities(snap.Facilities)},
	}
	for _, d := range docs {
		if err := s.writeDocument(filepath.Join(dir, d.file), d.v); err != nil {
			return err
		}
	}
	return nil
}

func (s *JSONStore) writeDocument(path string, v any) error {
	var (
		b   []byte
		err error
	)
	if s.indent {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return &domain.OpError{
			Op:   "clubstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	b = append(b, '\n')

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return &domain.OpError{
			Op:   "clubstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := s.backupFailed(path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "clubstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

// backupFailed moves a document that failed its last Load out of the way.
func (s *JSONStore) backupFailed(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.failed[path] {
		return nil
	}
	bak := path + BackupSuffix
	if err := os.Rename(path, bak); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &domain.OpError{
			Op:   "clubstore.backup",
			Kind: domain.KindExecution,
			Path: bak,
			Err:  err,
		}
	}
	delete(s.failed, path)
	return nil
}

// Load reads every document independently. A missing document yields an
// empty collection; a malformed one is reported as failed and leaves its
// collection empty without affecting the others. Failed documents are
// remembered so the next Save keeps a backup.
func (s *JSONStore) Load() (domain.Snapshot, domain.LoadReport) {
	dir := s.Dir()
	var (
		snap   domain.Snapshot
		report domain.LoadReport
	)

	var members []jsonMember
	res := s.readDocument(filepath.Join(dir, MembersFile), &members, func() (int, error) {
		out, err := fromJSONMembers("members", members)
		snap.Members = out
		return len(out), err
	})
	report.Documents = append(report.Documents, res)

	var employees []jsonEmployee
	res = s.readDocument(filepath.Join(dir, EmployeesFile), &employees, func() (int, error) {
		out, err := fromJSONEmployees(employees)
		snap.Employees = out
		return len(out), err
	})
	report.Documents = append(report.Documents, res)

	var activities []jsonActivity
	res = s.readDocument(filepath.Join(dir, ActivitiesFile), &activities, func() (int, error) {
		out, err := fromJSONActivities(activities)
		snap.Activities = out
		return len(out), err
	})
	report.Documents = append(report.Documents, res)

	var facilities []jsonFacility
	res = s.readDocument(filepath.Join(dir, FacilitiesFile), &facilities, func() (int, error) {
		out, err := fromJSONFacilities(facilities)
		snap.Facilities = out
		return len(out), err
	})
	report.Documents = append(report.Documents, res)

	s.mu.Lock()
	for _, d := range report.Documents {
		if d.Status == domain.DocumentFailed {
			s.failed[d.Path] = true
		} else {
			delete(s.failed, d.Path)
		}
	}
	s.mu.Unlock()

	return snap, report
}

// readDocument decodes path into dst and then runs mapFn to convert it into
// domain values. mapFn must leave its collection nil on error.
func (s *JSONStore) readDocument(path string, dst any, mapFn func() (int, error)) domain.DocumentResult {
	res := domain.DocumentResult{
		Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path: path,
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			res.Status = domain.DocumentMissing
			return res
		}
		res.Status = domain.DocumentFailed
		res.Err = &domain.OpError{
			Op:   "clubstore.read",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
		return res
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(dst); err != nil {
		res.Status = domain.DocumentFailed
		res.Err = corrupt(path, err)
		return res
	}
	if dec.More() {
		res.Status = domain.DocumentFailed
		res.Err = corrupt(path, errors.New("trailing data after document"))
		return res
	}

	n, err := mapFn()
	if err != nil {
		res.Status = domain.DocumentFailed
		res.Err = corrupt(path, err)
		return res
	}

	res.Status = domain.DocumentLoaded
	res.Count = n
	return res
}

func corrupt(path string, err error) error {
	return &domain.OpError{
		Op:   "clubstore.load",
		Kind: domain.KindCorrupt,
		Path: path,
		Err:  errors.Join(err, domain.ErrCorrupt),
	}
}
