package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/connectsix/internal/board"
	"github.com/rocketscienceinc/connectsix/internal/usecase"
)

const maxWaitDuration = 10 * time.Second

const DefaultBoardSize = board.DefaultSize

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Session *usecase.Session
}

// New - builds a fresh session on a size x size board for a single test.
func New(t *testing.T, size int) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	session, err := usecase.NewSession(logger, size)
	if err != nil {
		t.Fatalf("could not create session: %v", err)
	}

	t.Cleanup(func() {
		session.Close()
	})

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Session: session,
	}
}
