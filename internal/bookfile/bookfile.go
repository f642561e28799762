// Package bookfile reads and writes the plain-text files the book cleaner
// works on. Locations are local paths or any URL supported by afs.
package bookfile

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// OutputSuffix is inserted before the extension of a derived output name.
const OutputSuffix = "_cleaned"

const tempSuffix = ".tmp"

var (
	// ErrInputUnavailable is returned when the input does not exist or
	// cannot be read.
	ErrInputUnavailable = errors.New("input unavailable")

	// ErrOutputFailed is returned when the cleaned text cannot be stored.
	ErrOutputFailed = errors.New("output failed")
)

// Store reads and writes book text through an afs.Service.
type Store struct {
	fs afs.Service
}

// New creates a Store backed by the default afs service.
func New() *Store {
	return &Store{fs: afs.New()}
}

// Read loads the text at location. A UTF-8 or UTF-16 byte order mark is
// honoured and dropped; other bytes are passed through unchanged.
func (s *Store) Read(ctx context.Context, location string) (string, error) {
	if location == "" {
		return "", fmt.Errorf("%w: empty location", ErrInputUnavailable)
	}

	exists, err := s.fs.Exists(ctx, location)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInputUnavailable, location, err)
	}
	if !exists {
		return "", fmt.Errorf("%w: %s does not exist", ErrInputUnavailable, location)
	}

	data, err := s.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", ErrInputUnavailable, location, err)
	}

	text, err := Decode(data)
	if err != nil {
		return "", fmt.Errorf("%w: decoding %s: %v", ErrInputUnavailable, location, err)
	}
	return text, nil
}

// Write stores text at location. The text is uploaded to location+".tmp"
// and moved into place, so a failed upload leaves any existing file at
// location untouched. When the service cannot move, or the move fails, the
// text is uploaded to location directly; a failure there may leave a
// partially written file.
func (s *Store) Write(ctx context.Context, location, text string) error {
	if location == "" {
		return fmt.Errorf("%w: empty location", ErrOutputFailed)
	}

	tmp := location + tempSuffix
	if err := s.fs.Upload(ctx, tmp, file.DefaultFileOsMode, strings.NewReader(text)); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrOutputFailed, tmp, err)
	}

	if mv, ok := any(s.fs).(mover); ok {
		if err := mv.Move(ctx, tmp, location); err == nil {
			return nil
		}
	}

	defer s.remove(ctx, tmp)
	if err := s.fs.Upload(ctx, location, file.DefaultFileOsMode, strings.NewReader(text)); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrOutputFailed, location, err)
	}
	return nil
}

type mover interface {
	Move(context.Context, string, string) error
}

func (s *Store) remove(ctx context.Context, location string) {
	if exists, _ := s.fs.Exists(ctx, location); exists {
		_ = s.fs.Delete(ctx, location)
	}
}

// Decode converts raw file bytes to a string, decoding UTF-16 input marked
// with a byte order mark and stripping a UTF-8 byte order mark.
func Decode(data []byte) (string, error) {
	decoded, _, err := transform.Bytes(xunicode.BOMOverride(transform.Nop), data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// DeriveOutputPath inserts OutputSuffix before the extension of input:
// "dir/book.txt" becomes "dir/book_cleaned.txt". Names without an
// extension, including dotfiles, get the suffix appended.
func DeriveOutputPath(input string) string {
	if strings.Contains(input, "://") {
		idx := strings.LastIndex(input, "/")
		return input[:idx+1] + suffixed(input[idx+1:])
	}
	return filepath.Join(filepath.Dir(input), suffixed(filepath.Base(input)))
}

func suffixed(name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if stem == "" {
		stem, ext = name, ""
	}
	return stem + OutputSuffix + ext
}
