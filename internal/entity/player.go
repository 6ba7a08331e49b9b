package entity

import "fmt"

// Player identifies the owner of a stone. NoPlayer marks an empty cell or a game without a winner.
type Player uint8

const (
	NoPlayer Player = iota
	PlayerOne
	PlayerTwo
)

const EmptyCell = "**"

// Opponent returns the player who moves after that.
func (that Player) Opponent() Player {
	switch that {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return NoPlayer
	}
}

func (that Player) IsValid() bool {
	return that == PlayerOne || that == PlayerTwo
}

func (that Player) String() string {
	if !that.IsValid() {
		return EmptyCell
	}

	return fmt.Sprintf("P%d", that)
}
