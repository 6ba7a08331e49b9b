package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/connectsix/internal/command"
)

type processor interface {
	Process(ctx context.Context, line string) (command.Reply, error)
}

// Server reads protocol lines from an input stream and writes one reply per line.
type Server struct {
	logger    *slog.Logger
	processor processor
}

func New(logger *slog.Logger, processor processor) *Server {
	return &Server{
		logger:    logger.With("component", "cli"),
		processor: processor,
	}
}

type inputLine struct {
	text string
	err  error
	eof  bool
}

// Start - serves in until EOF, a quit command or ctx cancellation.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Start")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan inputLine)
	// the reader may stay blocked on in after ctx is done; it exits with the process
	go readLines(ctx, in, lines)

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, stopping session")
			return nil
		case line := <-lines:
			if line.err != nil {
				return fmt.Errorf("failed to read input: %w", line.err)
			}

			if line.eof {
				log.Info("input closed, stopping session")
				return nil
			}

			quit, err := that.handleLine(ctx, line.text, out)
			if err != nil {
				return err
			}

			if quit {
				log.Info("quit requested, stopping session")
				return nil
			}
		}
	}
}

// handleLine - processes one line and writes its reply; protocol errors are replies, not failures.
func (that *Server) handleLine(ctx context.Context, line string, out io.Writer) (bool, error) {
	reply, err := that.processor.Process(ctx, line)
	if err != nil {
		that.logger.Debug("command failed", "line", line, "error", err)

		if _, err = fmt.Fprintln(out, command.FormatError(err)); err != nil {
			return false, fmt.Errorf("failed to write reply: %w", err)
		}

		return false, nil
	}

	if reply.Text != "" {
		if _, err = fmt.Fprintln(out, reply.Text); err != nil {
			return false, fmt.Errorf("failed to write reply: %w", err)
		}
	}

	return reply.Quit, nil
}

func readLines(ctx context.Context, in io.Reader, lines chan<- inputLine) {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		select {
		case lines <- inputLine{text: scanner.Text()}:
		case <-ctx.Done():
			return
		}
	}

	last := inputLine{eof: true}
	if err := scanner.Err(); err != nil {
		last = inputLine{err: err}
	}

	select {
	case lines <- last:
	case <-ctx.Done():
	}
}
