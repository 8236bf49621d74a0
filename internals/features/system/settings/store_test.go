// file: internals/features/system/settings/store_test.go
package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReadsEmpty(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "settings.json"))
	doc, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc) != 0 {
		t.Fatalf("expected empty document, got %v", doc)
	}
}

func TestMergeShallow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s := NewStore(path)

	if _, err := s.Merge(map[string]any{"site_name": "AcademyOS", "maintenance": false}); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	doc, err := s.Merge(map[string]any{"maintenance": true})
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	if doc["site_name"] != "AcademyOS" {
		t.Fatalf("untouched key lost: %v", doc)
	}
	if doc["maintenance"] != true {
		t.Fatalf("patched key not applied: %v", doc)
	}

	// persisted, not just in memory
	reloaded, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded["maintenance"] != true {
		t.Fatalf("merge not persisted: %v", reloaded)
	}
}

func TestMergeNilDeletesKey(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "settings.json"))
	if _, err := s.Merge(map[string]any{"banner": "welcome"}); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	doc, err := s.Merge(map[string]any{"banner": nil})
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if _, ok := doc["banner"]; ok {
		t.Fatal("nil value should delete the key")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc) != 0 {
		t.Fatalf("expected empty document, got %v", doc)
	}
}
