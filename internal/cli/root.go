package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"todo-cli/internal/config"
	"todo-cli/internal/model"
	"todo-cli/internal/store"
	"todo-cli/internal/tui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string
	Glyphs     string
	Theme      string
	Persist    string
	LogFile    string
	LogLevel   string

	// runTUI is swapped out by tests.
	runTUI func(file store.File, items []model.Item, opts tui.Options) error
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{runTUI: tui.Run})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "todo <file>",
		Short:        "Edit a markdown checklist in the terminal",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		Example: strings.TrimSpace(`
  # Edit (or create) a checklist
  todo ~/notes/todo.md

  # Print the items as JSON
  todo list ~/notes/todo.md --pretty

  # Pretty-print the checklist
  todo show ~/notes/todo.md
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd, app, args[0])
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to a TOML config file (default: $TODO_CONFIG or <user config dir>/todo/config.toml)")
	cmd.PersistentFlags().StringVar(&app.Glyphs, "glyphs", "", "Status glyphs (unicode|ascii)")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", "", "Color theme (auto|light|dark)")
	cmd.PersistentFlags().StringVar(&app.Persist, "persist", "", "When to save (always|changes)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "Write TUI logs to this file")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newShowCmd(app))

	return cmd
}

// loadConfig layers flags that were set explicitly over the config file and
// environment.
func loadConfig(cmd *cobra.Command, app *App) (config.Config, error) {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	override := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	override("glyphs", &cfg.Glyphs, app.Glyphs)
	override("theme", &cfg.Theme, app.Theme)
	override("persist", &cfg.Persist, app.Persist)
	override("log-file", &cfg.LogFile, app.LogFile)
	override("log-level", &cfg.LogLevel, app.LogLevel)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runEditor(cmd *cobra.Command, app *App, path string) error {
	cfg, err := loadConfig(cmd, app)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg)

	logger.Info("Reading todos", "path", path)
	file := store.File{Path: path}
	items, err := file.Load()
	if err != nil {
		// The first save creates the file.
		logger.Warn("starting with an empty list", "err", err)
		items = nil
	}

	// stderr shares the screen with the TUI, so only a log file gets output
	// while it runs.
	tuiLogger := log.New(io.Discard)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		tuiLogger = newLogger(f, cfg)
	}
	tuiLogger.Debug("session start", "path", path, "items", len(items))
	defer tuiLogger.Debug("session end", "path", path)

	return app.runTUI(file, items, tui.Options{
		Glyphs:  cfg.Glyphs,
		Theme:   cfg.Theme,
		Persist: cfg.Persist,
		Logger:  tuiLogger,
	})
}
