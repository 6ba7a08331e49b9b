package connectsix

import (
	"github.com/rocketscienceinc/connectsix/internal/board"
	"github.com/rocketscienceinc/connectsix/internal/entity"
)

// directions holds one vector per line: horizontal, vertical, "\" and "/".
var directions = [4]entity.Position{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: 1},
	{Row: 1, Col: -1},
}

// hasWinningRun - only freshly placed stones can complete a new run, so the scan starts from them.
func hasWinningRun(b *board.Board, placed []entity.Position) bool {
	for _, pos := range placed {
		owner := b.OwnerAt(pos)
		if owner == entity.NoPlayer {
			continue
		}

		for _, dir := range directions {
			if runLength(b, pos, dir, owner) >= entity.WinLength {
				return true
			}
		}
	}

	return false
}

// runLength - counts owner's stones through pos along dir, both ways, pos included.
func runLength(b *board.Board, pos, dir entity.Position, owner entity.Player) int {
	count := 1

	// forward
	next := entity.NewPosition(pos.Row+dir.Row, pos.Col+dir.Col)
	for b.IsInBounds(next) && b.OwnerAt(next) == owner {
		count++
		next = entity.NewPosition(next.Row+dir.Row, next.Col+dir.Col)
	}

	// backward
	next = entity.NewPosition(pos.Row-dir.Row, pos.Col-dir.Col)
	for b.IsInBounds(next) && b.OwnerAt(next) == owner {
		count++
		next = entity.NewPosition(next.Row-dir.Row, next.Col-dir.Col)
	}

	return count
}
