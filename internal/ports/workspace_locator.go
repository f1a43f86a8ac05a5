package ports

// WorkspaceLocator finds a club workspace root (the directory holding club.yaml) starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
	// ResolveRoot falls back to startDir when no workspace is found.
	ResolveRoot(startDir string) (root string, found bool, err error)
}
