package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/jask/wordgrid/internal/channel"
	"github.com/jask/wordgrid/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	client := channel.New(cfg.Server.URL, log)
	defer client.Close()

	m := newModel(client, client.Signals(), clockwork.NewRealClock(), cfg, log)

	p := tea.NewProgram(m, tea.WithAltScreen())
	// Establish the transport once the program's update loop is running;
	// queued commands flush when the socket comes up.
	go func() {
		p.Send(dialCmd(client, cfg.Server.DialTimeout)())
	}()

	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program exited with error")
		fmt.Fprintf(os.Stderr, "wordgrid: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the zerolog logger. The TUI owns the terminal, so
// output goes to the configured file; unset path discards logs.
func newLogger(cfg config.LogConfig) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if cfg.Path == "" {
		return zerolog.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("open log file: %w", err)
	}
	log := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return log, func() { f.Close() }, nil
}
