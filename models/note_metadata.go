// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NoteMetadata is a catalog entry describing a note file this installation
// has written or opened. It never carries note content, passwords or
// digests.
type NoteMetadata struct {
	// ID is a UUIDv7 assigned when the entry is first stored.
	ID string

	// Path is the note location exactly as the user supplied it.
	Path string

	// SizeBytes is the size of the encrypted container on disk.
	SizeBytes int64

	// CreatedAt is when the entry was first stored.
	CreatedAt time.Time

	// UpdatedAt is when the note was last saved.
	UpdatedAt time.Time

	// LastOpenedAt is when the note was last successfully opened, nil if
	// it never was.
	LastOpenedAt *time.Time
}
