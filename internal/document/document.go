// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document reads the plain-text source a caller wants analyzed.
//
// Text is read as UTF-8. A byte-order mark selects UTF-8 or UTF-16 and is
// stripped. Bytes that do not decode are discarded rather than reported, so
// a partially corrupt file is still analyzable.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrInputNotFound is returned when the source file does not exist.
	ErrInputNotFound = errors.New("input not found")

	// ErrInputRead is returned for any other failure to read the source.
	ErrInputRead = errors.New("input read error")
)

// ReadFile reads and decodes the document at path.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return "", fmt.Errorf("%w: %s: %w", ErrInputRead, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInputRead, path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrInputRead, path)
	}

	text, err := Decode(f)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInputRead, path, err)
	}
	return text, nil
}

// Decode reads all of r, honoring a UTF-8 or UTF-16 byte-order mark, and
// drops byte sequences that are not valid UTF-8.
func Decode(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(transform.Nop)
	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", err
	}
	data = bytes.ToValidUTF8(data, nil)
	return strings.TrimPrefix(string(data), "\uFEFF"), nil
}
