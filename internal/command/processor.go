package command

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/rocketscienceinc/connectsix/internal/apperror"
	"github.com/rocketscienceinc/connectsix/internal/entity"
)

type gameUseCase interface {
	MakeTurn(ctx context.Context, turn []entity.Position) (entity.Outcome, error)
	CellState(ctx context.Context, pos entity.Position) (entity.Player, error)
	Board(ctx context.Context) ([][]entity.Player, error)
	Reset(ctx context.Context) error
	Close()
}

type handler struct {
	arity []int
	run   func(ctx context.Context, args []int) (Reply, error)
}

// Processor executes protocol lines against a game session.
type Processor struct {
	logger *slog.Logger
	game   gameUseCase

	handlers map[string]handler
}

func NewProcessor(logger *slog.Logger, game gameUseCase) *Processor {
	processor := &Processor{
		logger: logger.With("component", "command"),
		game:   game,
	}

	processor.handlers = map[string]handler{
		"place":    {arity: []int{2, 4}, run: processor.handlePlace},
		"state":    {arity: []int{2}, run: processor.handleState},
		"print":    {arity: []int{0}, run: processor.handlePrint},
		"rowprint": {arity: []int{1}, run: processor.handleRowPrint},
		"colprint": {arity: []int{1}, run: processor.handleColPrint},
		"reset":    {arity: []int{0}, run: processor.handleReset},
		"quit":     {arity: []int{0}, run: processor.handleQuit},
	}

	return processor
}

// Process - parses and executes a single line.
func (that *Processor) Process(ctx context.Context, line string) (Reply, error) {
	message, err := Parse(line)
	if err != nil {
		return Reply{}, err
	}

	h, ok := that.handlers[message.Name]
	if !ok {
		return Reply{}, fmt.Errorf("%w: %s", apperror.ErrUnknownCommand, message.Name)
	}

	if !slices.Contains(h.arity, len(message.Args)) {
		return Reply{}, fmt.Errorf("%w: %s takes %s arguments, got %d",
			apperror.ErrInvalidArguments, message.Name, formatArity(h.arity), len(message.Args))
	}

	that.logger.Debug("processing command", "command", message.Name, "args", message.Args)

	return h.run(ctx, message.Args)
}

func (that *Processor) handlePlace(ctx context.Context, args []int) (Reply, error) {
	turn := make([]entity.Position, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		turn = append(turn, entity.NewPosition(args[i], args[i+1]))
	}

	outcome, err := that.game.MakeTurn(ctx, turn)
	if err != nil {
		return Reply{}, err
	}

	return Reply{Text: outcome.String()}, nil
}

func (that *Processor) handleState(ctx context.Context, args []int) (Reply, error) {
	owner, err := that.game.CellState(ctx, entity.NewPosition(args[0], args[1]))
	if err != nil {
		return Reply{}, err
	}

	return Reply{Text: owner.String()}, nil
}

func (that *Processor) handlePrint(ctx context.Context, _ []int) (Reply, error) {
	rows, err := that.game.Board(ctx)
	if err != nil {
		return Reply{}, err
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = formatLine(row)
	}

	return Reply{Text: strings.Join(lines, "\n")}, nil
}

func (that *Processor) handleRowPrint(ctx context.Context, args []int) (Reply, error) {
	rows, err := that.game.Board(ctx)
	if err != nil {
		return Reply{}, err
	}

	if args[0] < 0 || args[0] >= len(rows) {
		return Reply{}, fmt.Errorf("%w: row %d", apperror.ErrOutOfBounds, args[0])
	}

	return Reply{Text: formatLine(rows[args[0]])}, nil
}

func (that *Processor) handleColPrint(ctx context.Context, args []int) (Reply, error) {
	rows, err := that.game.Board(ctx)
	if err != nil {
		return Reply{}, err
	}

	if args[0] < 0 || args[0] >= len(rows) {
		return Reply{}, fmt.Errorf("%w: column %d", apperror.ErrOutOfBounds, args[0])
	}

	column := make([]entity.Player, len(rows))
	for i, row := range rows {
		column[i] = row[args[0]]
	}

	return Reply{Text: formatLine(column)}, nil
}

func (that *Processor) handleReset(ctx context.Context, _ []int) (Reply, error) {
	if err := that.game.Reset(ctx); err != nil {
		return Reply{}, err
	}

	return Reply{Text: "OK"}, nil
}

func (that *Processor) handleQuit(_ context.Context, _ []int) (Reply, error) {
	that.game.Close()

	return Reply{Quit: true}, nil
}

func formatLine(cells []entity.Player) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = cell.String()
	}

	return strings.Join(parts, " ")
}

func formatArity(arity []int) string {
	parts := make([]string, len(arity))
	for i, a := range arity {
		parts[i] = fmt.Sprint(a)
	}

	return strings.Join(parts, " or ")
}
