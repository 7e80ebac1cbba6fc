package seed

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeSeed(t, `---
books:
  - name: Clean Code
    author: Robert C. Martin
    publisher: Prentice Hall
    year: 2008
    pageCount: 464
    readPage: 120
    reading: true
  - name: Dune
    pageCount: 412
    readPage: 412
`)

	file, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(file.Books) != 2 {
		t.Fatalf("Load() returned %v books, want 2", len(file.Books))
	}
	first := file.Books[0]
	if first.Name != "Clean Code" || first.PageCount != 464 || first.ReadPage != 120 || !first.Reading {
		t.Errorf("Load() first entry = %+v", first)
	}
}

func TestLoaderLoadExpandsEnv(t *testing.T) {
	t.Setenv("SEED_PUBLISHER", "Dicoding")
	path := writeSeed(t, `books:
  - name: Buku A
    publisher: ${SEED_PUBLISHER}
    pageCount: 10
    readPage: 1
`)

	file, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if file.Books[0].Publisher != "Dicoding" {
		t.Errorf("Load() publisher = %v, want Dicoding", file.Books[0].Publisher)
	}
}

func TestLoaderLoadRejectsUnknownFields(t *testing.T) {
	path := writeSeed(t, `books:
  - name: Typo
    pagecount: 10
`)

	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Load() with unknown field should return error")
	}
}

func TestLoaderLoadEmptyFile(t *testing.T) {
	path := writeSeed(t, "")

	file, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() on empty file error = %v", err)
	}
	if len(file.Books) != 0 {
		t.Errorf("Load() on empty file returned %v books", len(file.Books))
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	_, err := NewLoader("/nonexistent/path/books.yaml").Load()
	if err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestExpandEnvRefs(t *testing.T) {
	t.Setenv("SEED_TEST_VAR", "value")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "braced reference", input: "a: ${SEED_TEST_VAR}", expected: "a: value"},
		{name: "unset reference", input: "a: ${SEED_TEST_UNSET}", expected: "a: "},
		{name: "bare dollar kept", input: "summary: costs $5", expected: "summary: costs $5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(expandEnvRefs([]byte(tt.input))); got != tt.expected {
				t.Errorf("expandEnvRefs() = %q, want %q", got, tt.expected)
			}
		})
	}
}
