// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/note"
	"github.com/MKhiriev/go-note-keeper/internal/recent"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// MaxPasswordAttempts is how many wrong passwords OpenInteractive accepts
// before giving up.
const MaxPasswordAttempts = 3

type noteService struct {
	recentPath     string
	catalog        store.NoteCatalog
	catalogTimeout time.Duration
	logger         *logger.Logger
	now            func() time.Time
}

// Option configures a NoteService.
type Option func(*noteService)

// WithCatalogTimeout bounds each catalog call. Zero means no extra bound.
func WithCatalogTimeout(d time.Duration) Option {
	return func(s *noteService) { s.catalogTimeout = d }
}

// WithClock replaces the time source used for catalog timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *noteService) { s.now = now }
}

// NewNoteService wires the note core to the recency file at recentPath and
// to catalog. catalog may be nil, in which case catalog bookkeeping is
// skipped and Catalog returns ErrCatalogUnavailable.
func NewNoteService(recentPath string, catalog store.NoteCatalog, logger *logger.Logger, opts ...Option) NoteService {
	s := &noteService{
		recentPath: recentPath,
		catalog:    catalog,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *noteService) Open(ctx context.Context, path, password string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty note path", ErrInvalidDataProvided)
	}

	c := note.New()
	ok, err := c.Open(path, password)
	if err != nil {
		s.logger.Err(err).Str("func", "*noteService.Open").Str("path", path).Msg("error opening note")
		return "", fmt.Errorf("open note %s: %w", path, err)
	}
	if !ok {
		s.logger.Info().Str("func", "*noteService.Open").Str("path", path).Msg("wrong password")
		return "", ErrWrongPassword
	}

	content, _ := c.Content()
	s.remember(path)
	s.catalogOpened(ctx, path)

	s.logger.Debug().Str("func", "*noteService.Open").Str("path", path).Msg("note opened")
	return content, nil
}

func (s *noteService) OpenInteractive(ctx context.Context, path string, prompt PasswordPrompter) (string, string, error) {
	if path == "" {
		return "", "", fmt.Errorf("%w: empty note path", ErrInvalidDataProvided)
	}
	// no password is asked for a note that is not there
	if _, err := os.Stat(path); err != nil {
		return "", "", fmt.Errorf("open note %s: %w: %w", path, note.ErrNotFound, err)
	}

	var lastErr error

	for attempt := 1; attempt <= MaxPasswordAttempts; attempt++ {
		password, err := prompt.PromptPassword(ctx, PromptRequest{
			Path:        path,
			Attempt:     attempt,
			MaxAttempts: MaxPasswordAttempts,
			LastError:   lastErr,
		})
		if err != nil {
			return "", "", err
		}

		content, err := s.Open(ctx, path, password)
		if err == nil {
			return content, password, nil
		}
		if !errors.Is(err, ErrWrongPassword) {
			return "", "", err
		}
		lastErr = err
	}

	s.logger.Warn().Str("func", "*noteService.OpenInteractive").Str("path", path).Msg("password attempts exhausted")
	return "", "", fmt.Errorf("%w: %w", ErrTooManyAttempts, ErrWrongPassword)
}

func (s *noteService) Save(ctx context.Context, path, password, content string) error {
	if path == "" {
		return fmt.Errorf("%w: empty note path", ErrInvalidDataProvided)
	}

	c := note.New()
	if err := c.SetContent(content); err != nil {
		return err
	}

	if err := c.Save(path, password); err != nil {
		s.logger.Err(err).Str("func", "*noteService.Save").Str("path", path).Msg("error saving note")
		return fmt.Errorf("save note %s: %w", path, err)
	}

	s.remember(path)
	s.catalogSaved(ctx, path)

	s.logger.Debug().Str("func", "*noteService.Save").Str("path", path).Msg("note saved")
	return nil
}

func (s *noteService) Recent(_ context.Context) ([]string, error) {
	list, err := recent.Load(s.recentPath)
	if err != nil {
		return nil, fmt.Errorf("load recent notes: %w", err)
	}
	return list.Items(), nil
}

func (s *noteService) RemoveRecent(_ context.Context, index int) error {
	list, err := recent.Load(s.recentPath)
	if err != nil {
		return fmt.Errorf("load recent notes: %w", err)
	}

	if err := list.Remove(index); err != nil {
		return err
	}

	if err := list.Save(s.recentPath); err != nil {
		return fmt.Errorf("save recent notes: %w", err)
	}
	return nil
}

func (s *noteService) Delete(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty note path", ErrInvalidDataProvided)
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete note %s: %w", path, err)
	}

	list, err := recent.Load(s.recentPath)
	if err != nil {
		return fmt.Errorf("load recent notes: %w", err)
	}
	if i := list.IndexOf(path); i >= 0 {
		if err := list.Remove(i); err != nil {
			return err
		}
		if err := list.Save(s.recentPath); err != nil {
			return fmt.Errorf("save recent notes: %w", err)
		}
	}

	if s.catalog != nil {
		cctx, cancel := s.catalogContext(ctx)
		defer cancel()

		err := s.catalog.Delete(cctx, path)
		if err != nil && !errors.Is(err, store.ErrCatalogEntryNotFound) {
			s.logger.Err(err).Str("func", "*noteService.Delete").Str("path", path).Msg("error removing catalog entry")
		}
	}

	s.logger.Debug().Str("func", "*noteService.Delete").Str("path", path).Msg("note deleted")
	return nil
}

func (s *noteService) Catalog(ctx context.Context) ([]models.NoteMetadata, error) {
	if s.catalog == nil {
		return nil, ErrCatalogUnavailable
	}

	cctx, cancel := s.catalogContext(ctx)
	defer cancel()

	entries, err := s.catalog.List(cctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	return entries, nil
}

func (s *noteService) GeneratePassword(length int, classes crypto.SymbolClass) (string, error) {
	return crypto.GeneratePassword(length, classes)
}

// remember moves path to the front of the recency list. Failures are
// logged: the note itself was read or written successfully.
func (s *noteService) remember(path string) {
	list, err := recent.Load(s.recentPath)
	if err != nil {
		s.logger.Err(err).Str("func", "*noteService.remember").Msg("error loading recent notes")
		return
	}

	if err := list.Add(path); err != nil {
		s.logger.Warn().Err(err).Str("func", "*noteService.remember").Str("path", path).Msg("path not remembered")
		return
	}

	if err := list.Save(s.recentPath); err != nil {
		s.logger.Err(err).Str("func", "*noteService.remember").Msg("error saving recent notes")
	}
}

func (s *noteService) catalogOpened(ctx context.Context, path string) {
	if s.catalog == nil {
		return
	}

	cctx, cancel := s.catalogContext(ctx)
	defer cancel()

	at := s.now()
	err := s.catalog.MarkOpened(cctx, path, at)
	if errors.Is(err, store.ErrCatalogEntryNotFound) {
		// written elsewhere; catalogue it on first open
		entry := models.NoteMetadata{Path: path, LastOpenedAt: &at}
		if info, statErr := os.Stat(path); statErr == nil {
			entry.SizeBytes = info.Size()
			entry.UpdatedAt = info.ModTime().UTC()
		}
		err = s.catalog.Upsert(cctx, entry)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*noteService.catalogOpened").Str("path", path).Msg("error updating catalog")
	}
}

func (s *noteService) catalogSaved(ctx context.Context, path string) {
	if s.catalog == nil {
		return
	}

	cctx, cancel := s.catalogContext(ctx)
	defer cancel()

	entry := models.NoteMetadata{Path: path, UpdatedAt: s.now()}
	if info, err := os.Stat(path); err == nil {
		entry.SizeBytes = info.Size()
	}

	if err := s.catalog.Upsert(cctx, entry); err != nil {
		s.logger.Err(err).Str("func", "*noteService.catalogSaved").Str("path", path).Msg("error updating catalog")
	}
}

func (s *noteService) catalogContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.catalogTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.catalogTimeout)
}
