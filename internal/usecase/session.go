package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/connectsix/internal/apperror"
	"github.com/rocketscienceinc/connectsix/internal/connectsix"
	"github.com/rocketscienceinc/connectsix/internal/entity"
)

// Session drives one game at a time for a single client and serializes access to its engine.
type Session struct {
	logger *slog.Logger
	size   int

	mu     sync.Mutex
	engine *connectsix.Engine
	closed bool
}

func NewSession(logger *slog.Logger, size int) (*Session, error) {
	engine, err := connectsix.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return &Session{
		logger: logger.With("component", "session"),
		size:   size,
		engine: engine,
	}, nil
}

// MakeTurn - applies one turn of the current player and reports the outcome.
func (that *Session) MakeTurn(ctx context.Context, turn []entity.Position) (entity.Outcome, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.ready(ctx); err != nil {
		return entity.Outcome{}, err
	}

	log := that.logger.With("method", "MakeTurn", "player", that.engine.CurrentPlayer().String(), "turn", that.engine.TurnCount())

	outcome, err := that.engine.ApplyTurn(turn)
	if err != nil {
		log.Debug("turn rejected", "stones", turn, "error", err)

		return entity.Outcome{}, fmt.Errorf("failed to make turn: %w", err)
	}

	log.Debug("turn applied", "stones", turn, "outcome", outcome.Status.String())

	if outcome.IsFinished() {
		log.Info("game finished", "result", outcome.String())
	}

	return outcome, nil
}

// CellState - returns the owner of a single cell.
func (that *Session) CellState(ctx context.Context, pos entity.Position) (entity.Player, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.ready(ctx); err != nil {
		return entity.NoPlayer, err
	}

	owner, err := that.engine.CellOwner(pos)
	if err != nil {
		return entity.NoPlayer, fmt.Errorf("failed to get cell state: %w", err)
	}

	return owner, nil
}

// Board - returns a copy of the current grid.
func (that *Session) Board(ctx context.Context) ([][]entity.Player, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.ready(ctx); err != nil {
		return nil, err
	}

	return that.engine.Rows(), nil
}

// Reset - abandons the current game and starts a new one on a board of the same size.
func (that *Session) Reset(ctx context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.ready(ctx); err != nil {
		return err
	}

	engine, err := connectsix.New(that.size)
	if err != nil {
		return fmt.Errorf("failed to reset game: %w", err)
	}

	that.engine = engine
	that.logger.Info("game reset", "board_size", that.size)

	return nil
}

// Close - ends the session; every later call fails with apperror.ErrSessionClosed.
func (that *Session) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.closed = true
}

func (that *Session) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("session interrupted: %w", err)
	}

	if that.closed {
		return apperror.ErrSessionClosed
	}

	return nil
}
