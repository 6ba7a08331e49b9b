package board

import (
	"fmt"

	"github.com/rocketscienceinc/connectsix/internal/apperror"
	"github.com/rocketscienceinc/connectsix/internal/entity"
)

const (
	DefaultSize = 19
	// MaxSize bounds size*size well below int overflow on every platform.
	MaxSize = 1024
)

// Board is a square grid of cells, each empty or owned by one player.
// It knows nothing about the rules of the game.
type Board struct {
	size     int
	cells    []entity.Player
	occupied int
}

// New - creates an empty size x size board, 1 <= size <= MaxSize.
func New(size int) (*Board, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	return &Board{
		size:  size,
		cells: make([]entity.Player, size*size),
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

// IsInBounds - reports whether both coordinates lie in [0, size).
func (that *Board) IsInBounds(pos entity.Position) bool {
	return pos.Row >= 0 && pos.Row < that.size && pos.Col >= 0 && pos.Col < that.size
}

// IsEmpty - reports whether the cell holds no stone. pos must be in bounds.
func (that *Board) IsEmpty(pos entity.Position) bool {
	return that.cells[that.index(pos)] == entity.NoPlayer
}

// OwnerAt - returns the player owning the cell, or entity.NoPlayer. pos must be in bounds.
func (that *Board) OwnerAt(pos entity.Position) entity.Player {
	return that.cells[that.index(pos)]
}

// Place - puts a stone of player on an empty cell.
// Placing on an occupied cell or for entity.NoPlayer is a bug in the caller and panics.
func (that *Board) Place(pos entity.Position, player entity.Player) {
	if !player.IsValid() {
		panic(fmt.Sprintf("board: place %s with invalid player %d", pos, player))
	}

	idx := that.index(pos)
	if that.cells[idx] != entity.NoPlayer {
		panic(fmt.Sprintf("board: place on occupied cell %s", pos))
	}

	that.cells[idx] = player
	that.occupied++
}

// Clear - empties the cell. Clearing an empty cell is a no-op.
func (that *Board) Clear(pos entity.Position) {
	idx := that.index(pos)
	if that.cells[idx] == entity.NoPlayer {
		return
	}

	that.cells[idx] = entity.NoPlayer
	that.occupied--
}

func (that *Board) EmptyCells() int {
	return len(that.cells) - that.occupied
}

func (that *Board) IsFull() bool {
	return that.occupied == len(that.cells)
}

// Rows - returns a copy of the grid, row by row.
func (that *Board) Rows() [][]entity.Player {
	rows := make([][]entity.Player, that.size)
	for r := range rows {
		rows[r] = make([]entity.Player, that.size)
		copy(rows[r], that.cells[r*that.size:(r+1)*that.size])
	}

	return rows
}

func (that *Board) index(pos entity.Position) int {
	if !that.IsInBounds(pos) {
		panic(fmt.Sprintf("board: position %s outside %dx%d grid", pos, that.size, that.size))
	}

	return pos.Row*that.size + pos.Col
}
