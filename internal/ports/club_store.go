package ports

import "github.com/santiagonisi/Club-DeportivoUTN/internal/domain"

// ClubStore persists the club's collections, one document per collection.
type ClubStore interface {
	Save(snap domain.Snapshot) error
	Load() (domain.Snapshot, domain.LoadReport)
}
