package connectsix

import (
	"fmt"

	"github.com/rocketscienceinc/connectsix/internal/apperror"
	"github.com/rocketscienceinc/connectsix/internal/board"
	"github.com/rocketscienceinc/connectsix/internal/entity"
)

// Engine runs a single Connect Six match. It is not safe for concurrent use;
// callers sharing an Engine must serialize ApplyTurn.
type Engine struct {
	board *board.Board

	currentPlayer entity.Player
	turnCount     int
	terminal      bool
	winner        entity.Player
}

// New - creates an engine for an empty size x size board with PlayerOne to move.
// A full board takes 1 + 2k stones, so only an odd number of cells (odd size) can end in a draw;
// on an even size the last empty cell can never be filled by a legal turn.
func New(size int) (*Engine, error) {
	b, err := board.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &Engine{
		board:         b,
		currentPlayer: entity.PlayerOne,
	}, nil
}

// ApplyTurn - places every stone of turn for the current player or none of them.
// On error the board and match state are exactly as before the call.
func (that *Engine) ApplyTurn(turn []entity.Position) (entity.Outcome, error) {
	if that.terminal {
		return entity.Outcome{}, apperror.ErrGameAlreadyOver
	}

	if expected := that.ExpectedStones(); len(turn) != expected {
		return entity.Outcome{}, fmt.Errorf("%w: expected %d, got %d", apperror.ErrInvalidTurnSize, expected, len(turn))
	}

	placed, err := that.placeAll(turn)
	if err != nil {
		return entity.Outcome{}, err
	}

	return that.updateMatchStatus(placed), nil
}

// placeAll - places stones in order, keeping an undo log that is replayed on the first failure.
func (that *Engine) placeAll(turn []entity.Position) ([]entity.Position, error) {
	placed := make([]entity.Position, 0, len(turn))

	for i, pos := range turn {
		if err := that.validateStone(pos); err != nil {
			that.rollback(placed)

			return nil, fmt.Errorf("stone %d at %s: %w", i+1, pos, err)
		}

		that.board.Place(pos, that.currentPlayer)
		placed = append(placed, pos)
	}

	return placed, nil
}

// validateStone - checks if the stone can be placed.
func (that *Engine) validateStone(pos entity.Position) error {
	if !that.board.IsInBounds(pos) {
		return apperror.ErrOutOfBounds
	}

	if !that.board.IsEmpty(pos) {
		return apperror.ErrPositionOccupied
	}

	return nil
}

func (that *Engine) rollback(placed []entity.Position) {
	for i := len(placed) - 1; i >= 0; i-- {
		that.board.Clear(placed[i])
	}
}

// updateMatchStatus - checks win, then draw, then hands the turn over.
func (that *Engine) updateMatchStatus(placed []entity.Position) entity.Outcome {
	if hasWinningRun(that.board, placed) {
		that.terminal = true
		that.winner = that.currentPlayer

		return entity.Outcome{Status: entity.StatusWin, Winner: that.winner}
	}

	if that.board.IsFull() {
		that.terminal = true

		return entity.Outcome{Status: entity.StatusDraw}
	}

	that.turnCount++
	that.currentPlayer = that.currentPlayer.Opponent()

	return entity.Outcome{Status: entity.StatusContinue}
}

// ExpectedStones - number of stones the next turn must contain: 1 for the opening turn, 2 afterwards.
// It does not shrink when fewer empty cells remain.
func (that *Engine) ExpectedStones() int {
	if that.turnCount == 0 {
		return entity.FirstTurnStones
	}

	return entity.TurnStones
}

func (that *Engine) IsTerminal() bool {
	return that.terminal
}

// Winner - returns entity.NoPlayer while the game is running or when it ended in a draw.
func (that *Engine) Winner() entity.Player {
	return that.winner
}

func (that *Engine) CurrentPlayer() entity.Player {
	return that.currentPlayer
}

// TurnCount - number of completed turns.
func (that *Engine) TurnCount() int {
	return that.turnCount
}

func (that *Engine) Size() int {
	return that.board.Size()
}

// CellOwner - returns the owner of pos, or entity.NoPlayer for an empty cell.
func (that *Engine) CellOwner(pos entity.Position) (entity.Player, error) {
	if !that.board.IsInBounds(pos) {
		return entity.NoPlayer, fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, pos)
	}

	return that.board.OwnerAt(pos), nil
}

func (that *Engine) Rows() [][]entity.Player {
	return that.board.Rows()
}
