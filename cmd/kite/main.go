// Package main is the entry point for the kite editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/kite/internal/config"
	"github.com/xonecas/kite/internal/constants"
	"github.com/xonecas/kite/internal/document"
	"github.com/xonecas/kite/internal/filetype"
	"github.com/xonecas/kite/internal/tui"
)

type options struct {
	configPath string
	debug      bool
	file       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	closeLog, err := setupLogging(cfg, opts.debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log: %v\n", err)
		return 1
	}
	defer closeLog()

	registry := filetype.NewRegistry()
	if path := cfg.FiletypesPath(); path != "" {
		if err := registry.LoadFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	doc, message := openDocument(opts.file, registry)
	model := tui.New(doc, tui.Options{
		Colors:    cfg.Colors(),
		QuitTimes: cfg.UI.QuitTimes,
		Message:   message,
	})

	log.Info().Str("version", constants.Version).Str("file", opts.file).Msg("kite: start")
	if _, err := tea.NewProgram(model).Run(); err != nil {
		log.Error().Err(err).Msg("kite: program exited")
		fmt.Fprintf(os.Stderr, "Error running %s: %v\n", constants.AppName, err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (default ~/.config/kite/config.toml)")
	flag.BoolVar(&opts.debug, "debug", false, "Log at debug level")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file]\n\nOptions:\n", constants.AppName)
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("%s %s\n", constants.AppName, constants.Version)
		os.Exit(0)
	}
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.file = flag.Arg(0)
	return opts
}

// setupLogging points the global logger at <data dir>/kite.log. The
// terminal belongs to the TUI, so nothing is written to stderr.
func setupLogging(cfg *config.Config, debug bool) (func(), error) {
	level := cfg.Level()
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	dir, err := config.EnsureDataDir()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, constants.AppName+".log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { _ = f.Close() }, nil
}

// openDocument opens path, falling back to an empty buffer when there is no
// path or it cannot be read. The second return is the initial message.
func openDocument(path string, registry *filetype.Registry) (*document.Document, string) {
	if path == "" {
		return document.New(registry), ""
	}
	doc, err := document.Open(path, registry)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("kite: open failed")
		return document.New(registry), "ERR: Cannot open file: " + path
	}
	return doc, ""
}
