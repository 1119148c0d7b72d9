package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/chzyer/readline"

	"github.com/rocketscienceinc/reversi/internal/config"
	"github.com/rocketscienceinc/reversi/internal/reversi"
	"github.com/rocketscienceinc/reversi/internal/transport/cli"
	"github.com/rocketscienceinc/reversi/internal/usecase"
)

// RunApp - runs the application in the configured mode.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdout)
}

// Run - wires a match to the command-line handler and runs one mode until it finishes or ctx is done.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, out io.Writer) error {
	log := logger.With("component", "app")

	matchManager := usecase.NewMatchManager(logger, reversi.New())
	handler := cli.NewHandler(logger, matchManager, out)

	log.Info("starting", "mode", conf.Mode)

	switch conf.Mode {
	case config.ModeDemo:
		if err := handler.RunDemo(ctx); err != nil {
			return fmt.Errorf("demo failed: %w", err)
		}
	case config.ModeScript:
		if err := runScript(ctx, handler, conf.ScriptPath); err != nil {
			return fmt.Errorf("script failed: %w", err)
		}
	default:
		if err := runInteractive(ctx, handler, conf.HistoryFile); err != nil {
			return fmt.Errorf("interactive session failed: %w", err)
		}
	}

	log.Info("finished", "mode", conf.Mode)

	return nil
}

func runScript(ctx context.Context, handler *cli.Handler, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer file.Close()

	return handler.RunScript(ctx, file)
}

func runInteractive(ctx context.Context, handler *cli.Handler, historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "reversi> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer rl.Close()

	return handler.RunInteractive(ctx, rl)
}
