package usecase

import (
	"io"
	"log/slog"

	"github.com/santiagonisi/Club-DeportivoUTN/internal/domain"
	"github.com/santiagonisi/Club-DeportivoUTN/internal/ports"
)

type SaveClub struct {
	store ports.ClubStore
	log   *slog.Logger
}

func NewSaveClub(store ports.ClubStore, log *slog.Logger) *SaveClub {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &SaveClub{store: store, log: log}
}

func (uc *SaveClub) Execute(club *domain.Club) error {
	snap := club.Snapshot()
	if err := uc.store.Save(snap); err != nil {
		uc.log.Error("store.save_failed", "err", err)
		return err
	}
	uc.log.Info("store.saved",
		"members", len(snap.Members),
		"employees", len(snap.Employees),
		"activities", len(snap.Activities),
		"facilities", len(snap.Facilities),
	)
	return nil
}
