package config

import (
	"ctchen222/Tic-Tac-Toe-CLI/internal/validator"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// First mover policies.
const (
	FirstMoverChoose   = "choose"
	FirstMoverHuman    = "human"
	FirstMoverComputer = "computer"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	LogFile   string    `yaml:"log-file" env:"TICTACTOE_LOG_FILE"`
	Game      Game      `yaml:"game"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Game struct {
	ComputerMarker string   `yaml:"computer-marker" env:"TICTACTOE_COMPUTER_MARKER" env-default:"O" validate:"marker"`
	ComputerNames  []string `yaml:"computer-names" env:"TICTACTOE_COMPUTER_NAMES" env-default:"R2D2,Sonny,Number 5" validate:"min=1,dive,required"`
	MaxWins        int      `yaml:"max-wins" env:"TICTACTOE_MAX_WINS" env-default:"2" validate:"min=1"`
	FirstMover     string   `yaml:"first-mover" env:"TICTACTOE_FIRST_MOVER" env-default:"choose" validate:"oneof=choose human computer"`
	Seed           uint64   `yaml:"seed" env:"TICTACTOE_SEED"` // 0 picks a time-based seed
	ClearScreen    bool     `yaml:"clear-screen" env:"TICTACTOE_CLEAR_SCREEN" env-default:"true"`
}

type Telemetry struct {
	Endpoint       string `yaml:"otlp-endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName    string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tic-tac-toe"`
	ServiceVersion string `yaml:"service-version" env-default:"v0.1.0"`
}

// Load reads the YAML file at path, if given, then applies environment overrides and defaults.
func Load(path string) (*Config, error) {
	conf := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(conf)
	} else {
		err = cleanenv.ReadConfig(path, conf)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := validator.GetValidator().Struct(conf); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return conf, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	conf, err := Load(path)
	if err != nil {
		panic(err)
	}
	return conf
}

// Level maps LogLevel to a slog level.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// TelemetryEnabled reports whether an OTLP collector is configured.
func (c *Config) TelemetryEnabled() bool {
	return c.Telemetry.Endpoint != ""
}
