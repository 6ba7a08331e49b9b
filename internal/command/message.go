package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectsix/internal/apperror"
)

const (
	argSeparator = ";"
	errorPrefix  = "Error, "
)

// Message is one parsed line of the text protocol: a command name and its integer arguments.
type Message struct {
	Name string
	Args []int
}

// Reply is what a handled command writes back. Quit ends the session after Text is written.
type Reply struct {
	Text string
	Quit bool
}

// Parse - splits "name a;b;c" into a Message.
func Parse(line string) (*Message, error) {
	name, rawArgs, hasArgs := strings.Cut(strings.TrimSpace(line), " ")
	if name == "" {
		return nil, fmt.Errorf("%w: empty input", apperror.ErrUnknownCommand)
	}

	message := &Message{Name: name}
	if !hasArgs {
		return message, nil
	}

	parts := strings.Split(rawArgs, argSeparator)
	message.Args = make([]int, 0, len(parts))

	for _, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", apperror.ErrInvalidArguments, part)
		}

		message.Args = append(message.Args, value)
	}

	return message, nil
}

// FormatError - renders err the way the protocol reports failures.
func FormatError(err error) string {
	return errorPrefix + err.Error()
}
