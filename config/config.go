package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server Server
	Logger Logger
	SQLite SQLite
}

type Server struct {
	AppEnv   string
	HTTPAddr string
}

type Logger struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type SQLite struct {
	Path string
	// Applied as a connection pragma, in milliseconds.
	BusyTimeout int
}

func Load() *Config {
	return &Config{
		Server: Server{
			AppEnv:   getEnv("APP_ENV", "dev"),
			HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		},
		Logger: Logger{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		SQLite: SQLite{
			Path:        getEnv("SQLITE_PATH", "inventory.db"),
			BusyTimeout: getEnvInt("SQLITE_BUSY_TIMEOUT_MS", 5000),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
