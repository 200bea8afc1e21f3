package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/smileynet/libreta"
	"github.com/smileynet/libreta/internal/addressbook"
	"github.com/smileynet/libreta/internal/config"
	"github.com/smileynet/libreta/internal/logging"
	"github.com/smileynet/libreta/internal/menu"
	"github.com/smileynet/libreta/internal/messages"
	"github.com/smileynet/libreta/internal/ui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for libreta.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Run     RunCmd           `cmd:"" default:"withargs" help:"Start the interactive address book (default)."`
}

// RunCmd starts the menu loop. Flags override config files and environment.
type RunCmd struct {
	Config      string `help:"Extra config file, applied last." type:"path"`
	Color       string `help:"Colour output: auto, always or never."`
	Confirm     string `help:"Affirmative token accepted when deleting."`
	MessagesDir string `help:"Directory with a local message catalog." type:"path"`
	LogLevel    string `help:"Diagnostics level: debug, info, warn or error."`
	LogFile     string `help:"Write diagnostics to this file instead of stderr." type:"path"`
}

// loadConfig loads layered config from user and project paths with env
// overrides, then the explicit --config file. The user and project files are
// optional; the explicit file must exist.
func loadConfig(extra string) (*config.Config, error) {
	if extra != "" {
		if _, err := os.Stat(extra); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	home, _ := os.UserHomeDir()
	userPath := ""
	if home != "" {
		userPath = home + "/.config/libreta/config.yaml"
	}
	cfg, err := config.LoadLayered(userPath, ".libreta/config.yaml", extra)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// applyFlags overrides cfg with any flags the user set.
func (r *RunCmd) applyFlags(cfg *config.Config) {
	if r.Color != "" {
		cfg.UI.Color = r.Color
	}
	if r.Confirm != "" {
		cfg.UI.Confirm = r.Confirm
	}
	if r.MessagesDir != "" {
		cfg.UI.MessagesDir = r.MessagesDir
	}
	if r.LogLevel != "" {
		cfg.Log.Level = r.LogLevel
	}
	if r.LogFile != "" {
		cfg.Log.File = r.LogFile
	}
}

// Run executes the run command against the process's stdin and stdout.
func (r *RunCmd) Run() error {
	cfg, err := loadConfig(r.Config)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	r.applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	log, closeLog, err := logging.Open(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	defer func() { _ = closeLog() }()

	// SIGINT keeps its default behaviour: the menu blocks in a stdin read,
	// and there is no state to flush on the way out.
	return r.run(context.Background(), cfg, os.Stdin, os.Stdout, log)
}

// run wires the menu from cfg, enabling testable wiring.
func (r *RunCmd) run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, log *zap.Logger) error {
	text, err := messages.Load(libreta.OverlayFS(cfg.UI.MessagesDir, libreta.Messages), messages.DefaultFile)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	mode, err := ui.ParseColorMode(cfg.UI.Color)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	m := menu.New(addressbook.New(), text, in, out,
		menu.WithStyles(ui.NewStyles(out, mode)),
		menu.WithConfirmToken(cfg.UI.Confirm),
		menu.WithLogger(log),
	)

	log.Debug("menu start", zap.String("version", version))
	err = m.Run(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, menu.ErrInputClosed):
		log.Debug("input closed")
		return nil
	default:
		return fmt.Errorf("run: %w: %w", errRuntime, err)
	}
}

// Exit codes.
const (
	exitSuccess = 0
	exitRuntime = 1
	exitSetup   = 2
)

// errRuntime marks failures after the menu started, as opposed to setup.
var errRuntime = errors.New("runtime")

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, errRuntime) {
		return exitRuntime
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("libreta"),
		kong.Description("Libreta de direcciones en consola."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
