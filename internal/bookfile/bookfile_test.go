package bookfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"book.txt", "book_cleaned.txt"},
		{"/data/books/book.txt", "/data/books/book_cleaned.txt"},
		{"book", "book_cleaned"},
		{".notes", ".notes_cleaned"},
		{"archive.tar.gz", "archive.tar_cleaned.gz"},
		{"file:///data/book.txt", "file:///data/book_cleaned.txt"},
		{"mem://localhost/book.txt", "mem://localhost/book_cleaned.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DeriveOutputPath(tt.input); got != tt.want {
				t.Errorf("DeriveOutputPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"plain", []byte("Chapter 1\n"), "Chapter 1\n"},
		{"empty", []byte{}, ""},
		{"utf8 bom", []byte("\xef\xbb\xbfTitle"), "Title"},
		{"utf16le bom", []byte{0xff, 0xfe, 'H', 0, 'i', 0}, "Hi"},
		{"utf16be bom", []byte{0xfe, 0xff, 0, 'H', 0, 'i'}, "Hi"},
		{"polish", []byte("Zażółć gęślą jaźń"), "Zażółć gęślą jaźń"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStore_ReadWrite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	input := filepath.Join(dir, "book.txt")
	if err := os.WriteFile(input, []byte("\xef\xbb\xbfLine one\nLine two\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	s := New()
	text, err := s.Read(ctx, input)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if text != "Line one\nLine two\n" {
		t.Errorf("Read() = %q", text)
	}

	output := DeriveOutputPath(input)
	if err := s.Write(ctx, output, "Line one\n"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if string(data) != "Line one\n" {
		t.Errorf("output = %q", data)
	}
}

func TestStore_WriteReplacesExisting(t *testing.T) {
	ctx := context.Background()
	output := filepath.Join(t.TempDir(), "book_cleaned.txt")
	if err := os.WriteFile(output, []byte("old content\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if err := New().Write(ctx, output, "new content\n"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if string(data) != "new content\n" {
		t.Errorf("output = %q", data)
	}
	if _, err := os.Stat(output + tempSuffix); !os.IsNotExist(err) {
		t.Errorf("expected temp file to be gone, stat error = %v", err)
	}
}

func TestStore_WriteFailureKeepsExisting(t *testing.T) {
	ctx := context.Background()
	output := filepath.Join(t.TempDir(), "book_cleaned.txt")
	if err := os.WriteFile(output, []byte("old content\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	// A directory in the temp slot makes the staged upload fail.
	if err := os.Mkdir(output+tempSuffix, 0o755); err != nil {
		t.Fatalf("failed to create blocker: %v", err)
	}

	err := New().Write(ctx, output, "new content\n")
	if !errors.Is(err, ErrOutputFailed) {
		t.Fatalf("expected ErrOutputFailed, got %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("existing output removed: %v", err)
	}
	if string(data) != "old content\n" {
		t.Errorf("existing output changed to %q", data)
	}
}

func TestStore_ReadMissing(t *testing.T) {
	s := New()
	_, err := s.Read(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if !errors.Is(err, ErrInputUnavailable) {
		t.Errorf("expected ErrInputUnavailable, got %v", err)
	}
}

func TestStore_EmptyLocations(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, err := s.Read(ctx, ""); !errors.Is(err, ErrInputUnavailable) {
		t.Errorf("Read(\"\") error = %v, want ErrInputUnavailable", err)
	}
	if err := s.Write(ctx, "", "x"); !errors.Is(err, ErrOutputFailed) {
		t.Errorf("Write(\"\") error = %v, want ErrOutputFailed", err)
	}
}
