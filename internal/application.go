package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connectsix/internal/command"
	"github.com/rocketscienceinc/connectsix/internal/config"
	"github.com/rocketscienceinc/connectsix/internal/usecase"
	"github.com/rocketscienceinc/connectsix/transport/cli"
)

// RunApp - runs a game session on in/out until EOF, quit or a termination signal.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	session, err := usecase.NewSession(logger, conf.BoardSize)
	if err != nil {
		return fmt.Errorf("could not create session: %w", err)
	}
	defer session.Close()

	processor := command.NewProcessor(logger, session)
	server := cli.New(logger, processor)

	log.Info("Starting game session", "board_size", conf.BoardSize)

	if err = server.Start(ctx, in, out); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	log.Info("Game session finished")

	return nil
}
