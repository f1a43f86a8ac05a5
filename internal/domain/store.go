package domain

import "errors"

// DocumentStatus is the outcome of loading one persisted collection.
type DocumentStatus string

const (
	DocumentLoaded  DocumentStatus = "loaded"
	DocumentMissing DocumentStatus = "missing"
	DocumentFailed  DocumentStatus = "failed"
)

// DocumentResult reports what happened to one document during a load.
type DocumentResult struct {
	Name   string
	Path   string
	Status DocumentStatus
	Count  int
	Err    error
}

// LoadReport collects per-document outcomes. A failed document leaves its
// collection empty while the others still load.
type LoadReport struct {
	Documents []DocumentResult
	Dangling  []DanglingRef
}

// Failed returns the documents that could not be loaded.
func (r LoadReport) Failed() []DocumentResult {
	var out []DocumentResult
	for _, d := range r.Documents {
		if d.Status == DocumentFailed {
			out = append(out, d)
		}
	}
	return out
}

// Err joins every per-document error, or returns nil.
func (r LoadReport) Err() error {
	var errs []error
	for _, d := range r.Failed() {
		errs = append(errs, d.Err)
	}
	return errors.Join(errs...)
}
