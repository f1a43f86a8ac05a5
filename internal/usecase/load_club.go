package usecase

import (
	"io"
	"log/slog"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/ports"
)

type LoadClub struct {
	store ports.ClubStore
	log   *slog.Logger
}

func NewLoadClub(store ports.ClubStore, log *slog.Logger) *LoadClub {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &LoadClub{store: store, log: log}
}

// Execute always returns a usable Club. Documents that failed to load leave
// their collection empty; the report says which ones and why.
func (uc *LoadClub) Execute() (*domain.Club, domain.LoadReport) {
	snap, report := uc.store.Load()

	club, dangling := domain.RestoreClub(snap)
	report.Dangling = dangling

	for _, d := range report.Documents {
		switch d.Status {
		case domain.DocumentFailed:
			uc.log.Error("store.load_failed", "document", d.Name, "path", d.Path, "err", d.Err)
		default:
			uc.log.Info("store.load", "document", d.Name, "status", string(d.Status), "count", d.Count)
		}
	}
	for _, ref := range dangling {
		uc.log.Warn("store.dangling_activity", "facility", ref.Facility, "activity_id", ref.ActivityID)
	}

	return club, report
}
