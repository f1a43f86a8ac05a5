package workspacefinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/ports"
)

// Finder locates a club workspace root by searching for club.yaml upward.
type Finder struct {
	ConfigFile string // defaults to "club.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	for cur := filepath.Clean(abs); ; cur = filepath.Dir(cur) {
		if isConfigFile(filepath.Join(cur, f.ConfigFile)) {
			return cur, nil
		}
		if filepath.Dir(cur) == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Err:  fmt.Errorf("no %s above %s: %w", f.ConfigFile, abs, domain.ErrNotFound),
			}
		}
	}
}

// isConfigFile ignores directories that happen to share the config name.
func isConfigFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

// ResolveRoot returns the workspace root above startDir, or startDir itself
// when no club.yaml exists anywhere above it. found reports which case applied.
func (f *Finder) ResolveRoot(startDir string) (root string, found bool, err error) {
	root, err = f.FindRoot(startDir)
	if err == nil {
		return root, true, nil
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		return "", false, err
	}
	abs, absErr := filepath.Abs(startDir)
	if absErr != nil {
		return "", false, &domain.OpError{
			Op:   "workspacefinder.resolveroot",
			Kind: domain.KindExecution,
			Err:  absErr,
		}
	}
	return abs, false, nil
}
