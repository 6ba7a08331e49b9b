package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/connectsix/internal/apperror"
	"github.com/rocketscienceinc/connectsix/internal/board"
)

// RelativePath is where the config file is searched for inside the XDG config directories.
const RelativePath = "connectsix/config.yml"

var ErrUnknownLogLevel = errors.New("unknown log level")

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	BoardSize int    `yaml:"board-size" env:"BOARD_SIZE"`
}

// Load - reads the config file at path; with an empty path only the environment and defaults are used.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if config.BoardSize == 0 {
		config.BoardSize = board.DefaultSize
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Locate - returns the config file to use: explicit if set, otherwise the XDG one when it exists.
func Locate(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}

		return explicit, nil
	}

	path, err := xdg.SearchConfigFile(RelativePath)
	if err != nil {
		// no config file anywhere, fall back to environment and defaults
		return "", nil //nolint: nilerr // missing file is not an error
	}

	return path, nil
}

func (that *Config) Validate() error {
	if that.BoardSize < 1 || that.BoardSize > board.MaxSize {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, that.BoardSize)
	}

	switch that.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}
}
