// Package main provides the CLI entry point for shotframe.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/shotframe/pkg/adapters/chromecapture"
	"github.com/user/shotframe/pkg/adapters/cmdclipboard"
	"github.com/user/shotframe/pkg/adapters/filelicense"
	"github.com/user/shotframe/pkg/adapters/filesink"
	"github.com/user/shotframe/pkg/adapters/firestorevalidator"
	"github.com/user/shotframe/pkg/adapters/logger"
	"github.com/user/shotframe/pkg/adapters/osfilesystem"
	"github.com/user/shotframe/pkg/adapters/s3sink"
	"github.com/user/shotframe/pkg/adapters/sqlitelicense"
	"github.com/user/shotframe/pkg/config"
	"github.com/user/shotframe/pkg/entitlement"
	"github.com/user/shotframe/pkg/ports"
)

var version = "dev"

// Replaced in tests.
var (
	newCapturer  = func(log ports.Logger) ports.ScreenCapturer { return chromecapture.New(log) }
	newClipboard = func() ports.Clipboard { return cmdclipboard.New() }
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "shotframe",
		Usage:   l10n.T("Turn screenshots into presentation-ready images"),
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"C"}, Usage: l10n.T("YAML configuration file"), EnvVars: []string{"SHOTFRAME_CONFIG"}},
			&cli.StringSliceFlag{Name: "env-file", Usage: l10n.T("Environment files to load (default: .env)")},
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: l10n.T("Log level (debug, info, warn, error)"), Category: l10n.T("Logging")},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output"), Category: l10n.T("Logging")},
		},
		Commands: []*cli.Command{
			beautifyCommand(),
			exportCommand(),
			presetsCommand(),
			licenseCommand(),
		},
	}
}

// env holds the configuration and adapters shared by every command.
type env struct {
	ctx     context.Context
	cfg     config.Config
	log     ports.Logger
	fs      *osfilesystem.FileSystem
	closers []func() error
}

// setup loads configuration from .env files, the config file and the
// environment, creates the logger and cancels ctx on SIGINT or SIGTERM.
func setup(c *cli.Context) (*env, error) {
	if err := config.LoadDotEnv(c.StringSlice("env-file")...); err != nil {
		return nil, err
	}

	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		level, err := ports.ParseLogLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		log = logger.NewConsole(level, c.App.ErrWriter)
	}

	ctx, cancel := context.WithCancel(c.Context)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	e := &env{ctx: ctx, cfg: cfg, log: log, fs: osfilesystem.New()}
	e.closers = append(e.closers, func() error {
		signal.Stop(sigCh)
		cancel()
		return nil
	})
	return e, nil
}

// Close releases every resource opened through e.
func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			e.log.Warn("Failed to release resource: %s", err)
		}
	}
}

func (e *env) licenseStore() (ports.LicenseStore, error) {
	switch e.cfg.License.Store {
	case "sqlite":
		store, err := sqlitelicense.Open(e.cfg.License.Path)
		if err != nil {
			return nil, err
		}
		e.closers = append(e.closers, store.Close)
		return store, nil
	case "", "file":
		return filelicense.New(e.cfg.License.Path, osfilesystem.NewPrivate()), nil
	}
	return nil, fmt.Errorf("unknown license store %q", e.cfg.License.Store)
}

func (e *env) entitlement() (*entitlement.Service, error) {
	store, err := e.licenseStore()
	if err != nil {
		return nil, err
	}
	lic := e.cfg.License
	validator := firestorevalidator.New(lic.ProjectID, lic.APIKey, lic.Collection)
	return entitlement.NewService(store, validator, e.log.WithComponent("license")), nil
}

func (e *env) imageSink(dir string) (ports.ImageSink, error) {
	switch e.cfg.Sink {
	case "s3":
		s3 := e.cfg.S3
		if s3.Bucket == "" {
			return nil, fmt.Errorf("s3 sink needs a bucket")
		}
		return s3sink.NewFromEnv(e.ctx, s3.Bucket, s3.Prefix, s3.Region)
	case "", "file":
		if dir == "" {
			dir = e.cfg.OutputDir
		}
		if err := e.fs.MkdirAll(dir); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
		return filesink.New(dir, e.fs), nil
	}
	return nil, fmt.Errorf("unknown sink %q", e.cfg.Sink)
}
