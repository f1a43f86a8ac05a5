package fsworkspace

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/ports"
)

// DataDir is the default documents directory created by Init.
const DataDir = "data"

const gitignoreHeader = "# Club"

// gitignoreEntries keep logs and interrupted writes out of version control;
// the documents themselves are meant to be committed.
var gitignoreEntries = []string{".club/", "*.tmp"}

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init lays out a club workspace: club.yaml, the data directory and the
// .club/ state directory. Existing files are kept unless force is set;
// documents under the data directory are never touched.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	for _, d := range []string{DataDir, filepath.Join(".club", "logs")} {
		dir := filepath.Join(root, d)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return initError(dir, err)
		}
	}

	if err := mergeGitignore(filepath.Join(root, ".gitignore")); err != nil {
		return initError(filepath.Join(root, ".gitignore"), err)
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, _ := strings.CutPrefix(p, "templates/")
		return writeTemplate(p, filepath.Join(root, filepath.FromSlash(rel)), force)
	})
}

func writeTemplate(src, dst string, force bool) error {
	if !force {
		if _, err := os.Stat(dst); err == nil {
			return nil
		}
	}
	b, err := fs.ReadFile(templatesFS, src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return initError(dst, err)
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return initError(dst, err)
	}
	return nil
}

func initError(path string, err error) error {
	return &domain.OpError{
		Op:   "fsworkspace.init",
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}

// mergeGitignore appends the club block, or only the entries a previous
// run or the user has not already listed.
func mergeGitignore(path string) error {
	b, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	existing := string(b)

	have := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			have[t] = true
		}
	}

	var block []string
	if !have[gitignoreHeader] {
		block = append(block, gitignoreHeader)
	}
	added := 0
	for _, e := range gitignoreEntries {
		if !have[e] {
			block = append(block, e)
			added++
		}
	}
	if added == 0 {
		return nil
	}

	var out strings.Builder
	if existing != "" {
		out.WriteString(existing)
		if !strings.HasSuffix(existing, "\n") {
			out.WriteByte('\n')
		}
		out.WriteByte('\n')
	}
	out.WriteString(strings.Join(block, "\n"))
	out.WriteByte('\n')

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
