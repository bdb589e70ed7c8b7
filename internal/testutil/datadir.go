package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/cursada/internal/domain"
)

// CatalogFiles encodes cat as the three published data files.
func CatalogFiles(t *testing.T, cat *domain.Catalog) map[string][]byte {
	t.Helper()
	files := map[string]any{
		"catedras.json": cat.Chairs,
		"sections.json": cat.Sections,
		"meets.json":    cat.Meets,
	}
	out := make(map[string][]byte, len(files))
	for name, v := range files {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("encoding %s: %v", name, err)
		}
		out[name] = data
	}
	return out
}

// WriteDataDir writes cat under {root}/{cat.Term}/ and returns root. An
// empty root means a fresh temp dir.
func WriteDataDir(t *testing.T, root string, cat *domain.Catalog) string {
	t.Helper()
	if root == "" {
		root = t.TempDir()
	}
	dir := filepath.Join(root, cat.Term)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating %s: %v", dir, err)
	}
	for name, data := range CatalogFiles(t, cat) {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return root
}
