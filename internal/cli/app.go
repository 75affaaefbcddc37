// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli is the notekeeper command line: a cobra command tree over
// [service.NoteService] with the terminal UI for passwords and editing.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/tui"
	"github.com/MKhiriev/go-note-keeper/models"
)

// Interactive is the part of the terminal UI the commands need.
type Interactive interface {
	service.PasswordPrompter
	NewNotePassword(ctx context.Context, path string) (string, error)
	Edit(ctx context.Context, path, content string) (string, error)
}

// App owns the command tree and the dependencies its commands share. They
// are built in the root command's PersistentPreRunE unless injected with an
// [Option].
type App struct {
	buildInfo models.AppBuildInfo
	root      *cobra.Command

	flags    *config.StructuredConfig
	password string
	verbose  bool

	cfg       *config.StructuredConfig
	logger    *logger.Logger
	storages  *store.Storages
	closers   []io.Closer
	svc       service.NoteService
	ui        Interactive
	clipboard func(string) error
}

// Option overrides a dependency of [App].
type Option func(*App)

// WithService uses svc instead of a service built from configuration.
func WithService(svc service.NoteService) Option {
	return func(a *App) { a.svc = svc }
}

// WithInteractive replaces the terminal UI.
func WithInteractive(ui Interactive) Option {
	return func(a *App) { a.ui = ui }
}

// WithLogger replaces the file logger.
func WithLogger(l *logger.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithClipboard replaces the system clipboard writer used by genpass.
func WithClipboard(write func(string) error) Option {
	return func(a *App) { a.clipboard = write }
}

// New builds the notekeeper command tree.
func New(buildInfo models.AppBuildInfo, opts ...Option) *App {
	a := &App{
		buildInfo: buildInfo,
		clipboard: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.root = a.newRootCommand()
	return a
}

// Command returns the root command.
func (a *App) Command() *cobra.Command {
	return a.root
}

// Execute runs the command line against args (os.Args[1:] when nil),
// reports a failure on stderr and releases everything setup opened.
func (a *App) Execute(ctx context.Context, args []string) error {
	defer a.Close()

	if args != nil {
		a.root.SetArgs(args)
	}

	err := a.root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(a.root.ErrOrStderr(), errorLine("%s", describeError(err)))
		if errors.Is(err, service.ErrCatalogUnavailable) {
			fmt.Fprintln(a.root.ErrOrStderr(), hintLine("check %s or the log file", "--catalog-dsn"))
		}
	}
	return err
}

// Close releases the catalog connection and the log file.
func (a *App) Close() {
	if err := a.storages.Close(); err != nil && a.logger != nil {
		a.logger.Err(err).Str("func", "*App.Close").Msg("error closing catalog")
	}
	a.storages = nil

	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

// setup loads configuration and builds whatever was not injected: logger,
// catalog, service and terminal UI. A catalog that cannot be opened is
// logged and left out; only the catalog command needs it.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	if a.logger == nil {
		level := cfg.Log.Level
		if a.verbose {
			level = "debug"
		}
		log, closer, err := logger.NewFileLogger("notekeeper", cfg.Log.File, level)
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		a.logger = log
		a.closers = append(a.closers, closer)
	}

	ctx := a.logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	if a.svc == nil {
		var catalog store.NoteCatalog

		storages, err := a.openCatalog(ctx)
		if err != nil {
			a.logger.Warn().Err(err).Str("func", "*App.setup").Msg("catalog disabled")
		} else {
			a.storages = storages
			catalog = storages.Catalog
		}

		a.svc = service.NewNoteService(cfg.Storage.RecentFile, catalog, a.logger,
			service.WithCatalogTimeout(cfg.Catalog.Timeout))
	}

	if a.ui == nil {
		a.ui = tui.New(a.logger, tui.WithInput(cmd.InOrStdin()), tui.WithOutput(cmd.ErrOrStderr()))
	}

	a.logger.Debug().Str("func", "*App.setup").Str("command", cmd.CommandPath()).Msg("command started")
	return nil
}

func (a *App) openCatalog(ctx context.Context) (*store.Storages, error) {
	if a.cfg.Catalog.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Catalog.Timeout)
		defer cancel()
	}
	return store.NewStorages(ctx, a.cfg.Catalog, a.logger)
}

// passwordGiven reports whether --password was passed; an empty value is a
// valid password.
func (a *App) passwordGiven(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("password")
}
