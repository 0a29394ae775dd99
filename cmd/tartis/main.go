package main

// Tartis is a falling-block puzzle game for the terminal.

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/ghthor/tartis"
	"github.com/ghthor/tartis/bubbles/blokfall"
	"github.com/ghthor/tartis/engine"
	"golang.org/x/sync/errgroup"
)

func main() {
	version := flag.Bool("version", false, "show program version and exit")
	flag.Parse()

	if *version {
		fmt.Println(tartis.Version)
		return
	}

	cfg, err := tartis.ParseEnv()
	if err != nil {
		log.Fatal("invalid configuration", "error", err)
	}

	logger, closer, err := cfg.NewLogger()
	if err != nil {
		log.Fatal("failed to create logger", "error", err)
	}
	defer closer.Close()

	profile, _ := cfg.Profile()
	lipgloss.SetColorProfile(profile)

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	ctx, sigCancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer sigCancel()

	opts := []engine.Option{engine.WithSize(cfg.Cols, cfg.Rows)}
	if cfg.Seed != 0 {
		opts = append(opts, engine.WithSource(engine.NewRandSource(cfg.Seed)))
	}

	m := blokfall.New(
		blokfall.WithSession(engine.NewSession(opts...)),
		blokfall.WithGravity(cfg.FallInterval),
		blokfall.WithLogger(logger),
	)

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	grp, _ := errgroup.WithContext(ctx)
	grp.Go(func() error {
		_, err := p.Run()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
			cancel(err)
			return err
		}
		return nil
	})

	if err = grp.Wait(); err != nil {
		logger.Error("program exited", "error", err)
		closer.Close()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	s := m.Session()
	logger.Info("bye", "score", s.Score(), "lines", s.Lines())
	fmt.Printf("score %d, lines %d\n", s.Score(), s.Lines())
}
