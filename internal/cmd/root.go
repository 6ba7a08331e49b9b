package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/connectsix/internal"
	"github.com/rocketscienceinc/connectsix/internal/config"
)

const version = "v0.1.0"

// Root - builds the connectsix command; the game is read from in and replies go to out.
func Root(in io.Reader, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "connectsix",
		Short: "Play Connect Six through a line based text protocol",
		Long: heredoc.Doc(`
			Play a two player game of Connect Six on an N x N board.

			Player P1 opens with a single stone, afterwards each turn places two
			stones. The first player with six or more stones in a row wins.

			Commands, one per line:
			  place r1;c1[;r2;c2]   place the stones of the current turn
			  state r;c             show the owner of a cell
			  print                 show the whole board
			  rowprint r            show a single row
			  colprint c            show a single column
			  reset                 start a new game
			  quit                  end the session
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return app.RunApp(initLogger(conf), conf, in, out)
		},
	}

	root.SetIn(in)
	root.SetOut(out)

	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Version")

	root.Flags().StringP("config", "c", "", "Path to the config file (default: $XDG_CONFIG_HOME/"+config.RelativePath+")")
	root.Flags().IntP("board-size", "n", 0, "Board size, overrides the config")
	root.Flags().String("log-level", "", "Log level: debug, info, warn or error")

	root.SetVersionTemplate(version + "\n")
	root.Version = version

	return root
}

// loadConfig - reads the config and applies the flags that were set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	explicit, _ := cmd.Flags().GetString("config")

	path, err := config.Locate(explicit)
	if err != nil {
		return nil, err
	}

	conf, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("board-size") {
		conf.BoardSize, _ = cmd.Flags().GetInt("board-size")
	}

	if cmd.Flags().Changed("log-level") {
		conf.LogLevel, _ = cmd.Flags().GetString("log-level")
	}

	if err = conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	return conf, nil
}

// initLogger - logs go to stderr, stdout carries the protocol.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
