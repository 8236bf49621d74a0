// file: internals/features/academics/assignment/dto/assignment_dto_test.go
package dto

import (
	"testing"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
)

func link(s string) *string { return &s }

func TestAppendResourceToEmptyList(t *testing.T) {
	out, err := AppendResource(datatypes.JSON("[]"), ResourceItem{
		Title: "Syllabus", ExternalLink: link("https://example.com/syllabus.pdf"),
	})
	if err != nil {
		t.Fatalf("AppendResource: %v", err)
	}

	var items []ResourceItem
	if err := sonic.Unmarshal(out, &items); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Syllabus" {
		t.Fatalf("unexpected items: %+v", items)
	}
	if items[0].ExternalLink == nil || *items[0].ExternalLink != "https://example.com/syllabus.pdf" {
		t.Fatalf("link lost: %+v", items[0])
	}
}

func TestAppendResourcePreservesOrder(t *testing.T) {
	stored := datatypes.JSON(`[{"title":"a"},{"title":"b"}]`)
	out, err := AppendResource(stored, ResourceItem{Title: "c"})
	if err != nil {
		t.Fatalf("AppendResource: %v", err)
	}

	var items []ResourceItem
	if err := sonic.Unmarshal(out, &items); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	for i, want := range []string{"a", "b", "c"} {
		if items[i].Title != want {
			t.Fatalf("order broken at %d: %+v", i, items)
		}
	}
}

func TestAppendResourceNilStored(t *testing.T) {
	out, err := AppendResource(nil, ResourceItem{Title: "x", FileURL: link("u")})
	if err != nil {
		t.Fatalf("AppendResource: %v", err)
	}
	var items []ResourceItem
	if err := sonic.Unmarshal(out, &items); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len = %d, want 1", len(items))
	}
}

func TestAppendResourceRejectsGarbage(t *testing.T) {
	if _, err := AppendResource(datatypes.JSON("{not json"), ResourceItem{Title: "x"}); err == nil {
		t.Fatal("expected error on corrupt stored list")
	}
}
