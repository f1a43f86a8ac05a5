package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/infra/workspacefinder"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "club.yaml"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))
	assertDirExists(t, filepath.Join(tmp, DataDir))
	assertDirExists(t, filepath.Join(tmp, ".club", "logs"))
}

func TestInitializer_Init_TemplateMatchesDefaults(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	cfg, err := workspacefinder.LoadConfig(tmp)
	if err != nil {
		t.Fatalf("LoadConfig on generated club.yaml: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected generated config to equal defaults, got %+v", cfg)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	clubYAML := filepath.Join(tmp, "club.yaml")
	if err := os.WriteFile(clubYAML, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing club.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(clubYAML)
	if err != nil {
		t.Fatalf("read club.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected club.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(clubYAML)
	if err != nil {
		t.Fatalf("read club.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "club:") {
		t.Fatalf("expected club.yaml overwritten with template, got %q", string(b))
	}
}

func TestInitializer_Init_KeepsExistingData(t *testing.T) {
	tmp := t.TempDir()
	members := filepath.Join(tmp, DataDir, "members.json")
	if err := os.MkdirAll(filepath.Dir(members), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(members, []byte("[]\n"), 0o644); err != nil {
		t.Fatalf("write members: %v", err)
	}

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	b, err := os.ReadFile(members)
	if err != nil {
		t.Fatalf("read members: %v", err)
	}
	if string(b) != "[]\n" {
		t.Fatalf("expected data untouched, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected dir %s, stat err=%v", path, err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %s to be a directory", path)
	}
}
