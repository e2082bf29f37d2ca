package cli

import (
	"io"

	"todo-cli/internal/config"

	"github.com/charmbracelet/log"
)

func newLogger(w io.Writer, cfg config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "todo",
		ReportTimestamp: cfg.LogFile != "",
	})
}
