// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package recent implements the bounded most-recently-used list of note
// locations and its line-delimited file format.
//
// Index 0 is the most recent entry. Entries are unique by literal string
// equality: two spellings of the same filesystem path are different entries.
package recent

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// MaxItems is the capacity of a [List].
const MaxItems = 10

// MaxLocationLength bounds a single location in bytes. Longer lines could
// not be read back by [Load].
const MaxLocationLength = 4096

// FileMode is the permission used for the recent list file.
const FileMode os.FileMode = 0o600

// List is an ordered, duplicate-free list of at most [MaxItems] locations.
// The zero value is an empty list ready to use.
//
// A List is owned by one session and must not be mutated concurrently.
type List struct {
	items []string
}

// New returns an empty list.
func New() *List {
	return &List{items: make([]string, 0, MaxItems)}
}

// Load reads the list stored at path. Only the first [MaxItems] lines are
// honored, in file order; blank lines and repeated locations among them are
// dropped. If the file does not exist it is
// created empty (together with its parent directory) and an empty list is
// returned.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := createEmpty(path); err != nil {
			return nil, err
		}
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open recent list: %w", err)
	}
	defer f.Close()

	l := New()
	scanner := bufio.NewScanner(f)
	for lines := 0; lines < MaxItems && scanner.Scan(); lines++ {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" || slices.Contains(l.items, line) {
			continue
		}
		l.items = append(l.items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read recent list: %w", err)
	}

	return l, nil
}

func createEmpty(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create recent list dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, FileMode)
	if err != nil {
		return fmt.Errorf("create recent list: %w", err)
	}
	return f.Close()
}

// Save overwrites the file at path with one location per line, most recent
// first. The write is atomic: a crash leaves either the old or the new file.
func (l *List) Save(path string) error {
	var b strings.Builder
	for _, item := range l.items {
		b.WriteString(item)
		b.WriteByte('\n')
	}

	if err := utils.WriteFileAtomic(path, []byte(b.String()), FileMode); err != nil {
		return fmt.Errorf("save recent list: %w", err)
	}
	return nil
}

// Add makes location the most recent entry. An existing entry is moved to
// the front without changing the size; a new entry evicts the least recent
// one when the list is full. Returns [ErrInvalidArgument] for an empty
// location. Locations containing a line break or longer than
// [MaxLocationLength] are rejected too, since they cannot be stored in the
// file format.
func (l *List) Add(location string) error {
	if location == "" || strings.ContainsAny(location, "\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidArgument, location)
	}
	if len(location) > MaxLocationLength {
		return fmt.Errorf("%w: location longer than %d bytes", ErrInvalidArgument, MaxLocationLength)
	}

	if i := slices.Index(l.items, location); i >= 0 {
		l.items = slices.Delete(l.items, i, i+1)
	} else if len(l.items) >= MaxItems {
		l.items = l.items[:MaxItems-1]
	}

	l.items = slices.Insert(l.items, 0, location)
	return nil
}

// Get returns the entry at index.
func (l *List) Get(index int) (string, error) {
	if index < 0 || index >= len(l.items) {
		return "", fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, len(l.items))
	}
	return l.items[index], nil
}

// Remove deletes the entry at index, shifting later entries up.
func (l *List) Remove(index int) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, len(l.items))
	}
	l.items = slices.Delete(l.items, index, index+1)
	return nil
}

// IndexOf returns the index of location, or -1.
func (l *List) IndexOf(location string) int {
	return slices.Index(l.items, location)
}

// Contains reports whether location is in the list.
func (l *List) Contains(location string) bool {
	return l.IndexOf(location) >= 0
}

// Size returns the number of entries.
func (l *List) Size() int {
	return len(l.items)
}

// Items returns a copy of the entries, most recent first.
func (l *List) Items() []string {
	return slices.Clone(l.items)
}
