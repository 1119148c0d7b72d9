package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/reversi/internal/apperror"
)

// DefaultFile is looked up under the XDG config directories when no path is given.
const DefaultFile = "reversi/config.yml"

const (
	ModeDemo        = "demo"
	ModeScript      = "script"
	ModeInteractive = "interactive"
)

var validate = validator.New()

type Config struct {
	LogLevel    string `yaml:"log-level" env:"REVERSI_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Mode        string `yaml:"mode" env:"REVERSI_MODE" env-default:"interactive" validate:"oneof=demo script interactive"`
	ScriptPath  string `yaml:"script-path" env:"REVERSI_SCRIPT_PATH" validate:"required_if=Mode script"`
	HistoryFile string `yaml:"history-file" env:"REVERSI_HISTORY_FILE"`
}

// MustLoad - loads the configuration and panics when it cannot be read or is invalid.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

// Load - reads path when given, otherwise only the environment, then validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate - checks the loaded values against their allowed sets.
func (that *Config) Validate() error {
	err := validate.Struct(that)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidConfig, err)
	}

	details := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		switch fieldErr.Tag() {
		case "oneof":
			details = append(details, fmt.Sprintf("%s must be one of [%s]", fieldErr.Field(), fieldErr.Param()))
		case "required_if":
			details = append(details, fmt.Sprintf("%s is required when %s", fieldErr.Field(), fieldErr.Param()))
		default:
			details = append(details, fmt.Sprintf("%s failed %s", fieldErr.Field(), fieldErr.Tag()))
		}
	}

	return fmt.Errorf("%w: %s", apperror.ErrInvalidConfig, strings.Join(details, "; "))
}

// FindFile - returns explicit when set, else the first DefaultFile found in the XDG config directories.
// An empty result means the environment alone configures the program.
func FindFile(explicit string) string {
	if explicit != "" {
		return explicit
	}

	path, err := xdg.SearchConfigFile(DefaultFile)
	if err != nil {
		return ""
	}

	if _, err = os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return ""
	}

	return path
}
