package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// TestdataFS holds the embedded sample programs.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded sample program.
func ReadTestData(name string) ([]byte, error) {
	path := fmt.Sprintf("testdata/%s", name)
	data, err := fs.ReadFile(TestdataFS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// WriteSource writes src to a file called name in a fresh temporary
// directory and returns its path.
func WriteSource(tb testing.TB, name string, src []byte) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, src, 0o644); err != nil {
		tb.Fatalf("failed to write source file '%s': %v", name, err)
	}
	return path
}
