// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadFile(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{name: "plain utf-8", data: []byte("Social capital matters."), want: "Social capital matters."},
		{name: "utf-8 bom stripped", data: []byte("\xEF\xBB\xBFhabitus"), want: "habitus"},
		{name: "utf-16 little endian", data: []byte{0xFF, 0xFE, 'a', 0, 'n', 0, 'o', 0, 'm', 0, 'i', 0, 'e', 0}, want: "anomie"},
		{name: "utf-16 big endian", data: []byte{0xFE, 0xFF, 0, 'M', 0, 'a', 0, 'r', 0, 'x'}, want: "Marx"},
		{name: "invalid bytes dropped", data: []byte("na\xffive \xc3\xa9lite"), want: "naive élite"},
		{name: "empty file", data: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "paper.txt", tt.data)
			got, err := ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, ErrInputNotFound)
	assert.Contains(t, err.Error(), "nope.txt")
}

func TestReadFileDirectory(t *testing.T) {
	_, err := ReadFile(t.TempDir())
	require.ErrorIs(t, err, ErrInputRead)
	assert.NotErrorIs(t, err, ErrInputNotFound)
}

func TestDecodePreservesNewlines(t *testing.T) {
	got, err := Decode(bytes.NewReader([]byte("one\n\ntwo\r\nthree")))
	require.NoError(t, err)
	assert.Equal(t, "one\n\ntwo\r\nthree", got)
}
