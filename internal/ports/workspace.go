package ports

import "github.com/santiagonisi/Club-DeportivoUTN/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
