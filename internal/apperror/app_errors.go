package apperror

import "errors"

var (
	ErrOutOfBounds      = errors.New("position is out of bounds")
	ErrPositionOccupied = errors.New("position is already occupied")
	ErrInvalidTurnSize  = errors.New("invalid number of stones for this turn")
	ErrGameAlreadyOver  = errors.New("the game has already ended")
	ErrInvalidBoardSize = errors.New("invalid board size")

	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrSessionClosed    = errors.New("session is closed")
)
