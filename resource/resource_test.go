package resource

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		base, ref string
		want      string
	}{
		{"http://example.com/a/doc.svg", "icons.svg#star", "http://example.com/a/icons.svg#star"},
		{"http://example.com/a/doc.svg", "#local", "http://example.com/a/doc.svg#local"},
		{"http://example.com/a/doc.svg", "http://other.org/x.svg", "http://other.org/x.svg"},
		{"", "rel.svg", "rel.svg"},
		{"dir/doc.svg", "other.svg", "dir/other.svg"},
		{"/abs/doc.svg", "other.svg#f", "/abs/other.svg#f"},
	}
	for _, tc := range tests {
		if got := Resolve(tc.base, tc.ref); got != tc.want {
			t.Errorf("Resolve(%q, %q): expected %q, have %q", tc.base, tc.ref, tc.want, got)
		}
	}
}

func TestFragmentSplitting(t *testing.T) {
	if got := StripFragment("a.svg#id"); got != "a.svg" {
		t.Errorf("expected 'a.svg', have %q", got)
	}
	if got := Fragment("a.svg#id"); got != "id" {
		t.Errorf("expected 'id', have %q", got)
	}
	if got := Fragment("a.svg"); got != "" {
		t.Errorf("expected empty fragment, have %q", got)
	}
}

func TestDefaultFetcherDataURL(t *testing.T) {
	fetch := DefaultFetcher()
	content, err := fetch("data:image/svg+xml;base64,PHN2Zy8+", "image/svg+xml")
	if err != nil {
		t.Fatalf("data URL fetch failed: %v", err)
	}
	if string(content) != "<svg/>" {
		t.Errorf("expected '<svg/>', have %q", content)
	}
	content, err = fetch("data:image/svg+xml,%3Csvg/%3E", "image/svg+xml")
	if err != nil {
		t.Fatalf("data URL fetch failed: %v", err)
	}
	if string(content) != "<svg/>" {
		t.Errorf("expected '<svg/>', have %q", content)
	}
}

func TestDefaultFetcherFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.svg")
	if err := os.WriteFile(path, []byte("<svg/>"), 0644); err != nil {
		t.Fatal(err)
	}
	fetch := DefaultFetcher()
	content, err := fetch(path, "image/svg+xml")
	if err != nil {
		t.Fatalf("plain path fetch failed: %v", err)
	}
	if string(content) != "<svg/>" {
		t.Errorf("expected file content, have %q", content)
	}
	content, err = fetch("file://"+path, "image/svg+xml")
	if err != nil {
		t.Fatalf("file URL fetch failed: %v", err)
	}
	if string(content) != "<svg/>" {
		t.Errorf("expected file content, have %q", content)
	}
}
