package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/infra/clubstore"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/infra/logger"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/infra/weather"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/infra/workspacefinder"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/ports"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/usecase"
)

type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config
	log   *slog.Logger

	store   *clubstore.JSONStore
	load    *usecase.LoadClub
	save    *usecase.SaveClub
	weather *usecase.CurrentWeather

	cleanup func() error
}

func (ws *workspaceCtx) close() {
	if ws.cleanup != nil {
		_ = ws.cleanup()
	}
}

// openWorkspace resolves the root, starts file logging there and wires the
// store and weather lookup. A missing club.yaml means defaults.
func openWorkspace(opts *globalOpts) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(opts.dir)
	if err != nil {
		return nil, err
	}

	cleanup, err := logger.Setup(logger.Config{
		Root:  root,
		Debug: opts.debug,
		Level: opts.logLevel,
	})
	if domain.IsKind(err, domain.KindInvalidConfig) {
		return nil, fmt.Errorf("invalid --log-level %q: %w", opts.logLevel, err)
	}
	log := logger.L()

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		if cleanup != nil {
			_ = cleanup()
		}
		return nil, err
	}
	log.Info("workspace.open", "root", root, "found", found, "data_dir", cfg.Paths.DataDir)

	return newWorkspace(root, found, cfg, log, cleanup), nil
}

func newWorkspace(root string, found bool, cfg domain.Config, log *slog.Logger, cleanup func() error) *workspaceCtx {
	store := clubstore.NewJSONStore(root, cfg)
	provider := weather.New(cfg.Weather, weather.WithLogger(log))

	return &workspaceCtx{
		root:    root,
		found:   found,
		cfg:     cfg,
		log:     log,
		store:   store,
		load:    usecase.NewLoadClub(store, log),
		save:    usecase.NewSaveClub(store, log),
		weather: usecase.NewCurrentWeather(provider, cfg.Weather),
		cleanup: cleanup,
	}
}

// resolveWorkspaceRoot honours --dir, otherwise searches upward for club.yaml
// and falls back to the working directory.
func resolveWorkspaceRoot(dirFlag string) (string, bool, error) {
	return resolveWith(workspacefinder.NewFinder(), dirFlag)
}

func resolveWith(locator ports.WorkspaceLocator, dirFlag string) (string, bool, error) {
	d := strings.TrimSpace(dirFlag)
	if d != "" {
		abs, err := filepath.Abs(d)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		_, statErr := os.Stat(filepath.Join(abs, workspacefinder.ConfigFile))
		return abs, statErr == nil, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}

	return locator.ResolveRoot(wd)
}
