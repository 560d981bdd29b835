package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel      string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort      string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort    string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	LineStrategy  string `yaml:"line-strategy" env:"LINE_STRATEGY" env-default:"runs"`
	StorageDriver string `yaml:"storage-driver" env:"STORAGE_DRIVER" env-default:"redis"`
	Redis         Redis  `yaml:"redis"`
}

type Redis struct {
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	GameTTL time.Duration `yaml:"game-ttl" env:"REDIS_GAME_TTL" env-default:"24h"`
}

var ErrInvalidLogLevel = errors.New("invalid log level")

const (
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the file at path, applying environment overrides and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if _, err := config.SlogLevel(); err != nil {
		return nil, err
	}

	return config, nil
}

// SlogLevel - maps log-level to a slog level. Anything but debug, info, warn and error is rejected.
func (that *Config) SlogLevel() (slog.Level, error) {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
