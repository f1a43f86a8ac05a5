package usecase

import (
	"os"
	"testing"
)

func corruptFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("corrupt %s: %v", path, err)
	}
}
