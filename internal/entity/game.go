package entity

import "fmt"

// WinLength is the minimum run of same-owner stones that wins the game.
const WinLength = 6

const (
	FirstTurnStones = 1
	TurnStones      = 2
)

// Position is a (row, column) coordinate on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

func (that Position) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Status is the result of a successfully applied turn.
type Status uint8

const (
	StatusContinue Status = iota
	StatusWin
	StatusDraw
)

func (that Status) String() string {
	switch that {
	case StatusContinue:
		return "continue"
	case StatusWin:
		return "win"
	case StatusDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Outcome describes what an applied turn did to the match.
// Winner is set only when Status is StatusWin.
type Outcome struct {
	Status Status `json:"status"`
	Winner Player `json:"winner"`
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

// String renders the outcome the way the command protocol reports it.
func (that Outcome) String() string {
	switch that.Status {
	case StatusWin:
		return that.Winner.String() + " wins"
	case StatusDraw:
		return "draw"
	default:
		return "OK"
	}
}
