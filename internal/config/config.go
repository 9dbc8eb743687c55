package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const envFile = ".env"

type Config struct {
	Address     string `env:"RUN_ADDRESS"`
	Port        string `env:"PORT"`
	DatabaseURI string `env:"DATABASE_URI"`
	DatabaseSSL bool   `env:"DATABASE_SSL"`
	ResetDB     bool   `env:"RESET_DB"`
	LogLevel    string `env:"LOG_LEVEL"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

func NewConfig() (Config, error) {
	return newConfig(os.Args[1:], envFile)
}

func newConfig(args []string, dotenvPath string) (Config, error) {
	config := Config{
		Port:        "3000",
		DatabaseURI: "file:champsfrechets.db",
		LogLevel:    "info",

		CORSAllowedOrigins: []string{"*"},
	}

	if err := config.parseFlags(args); err != nil {
		return Config{}, err
	}

	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("cannot load %s: %w", dotenvPath, err)
	}

	if err := env.Parse(&config); err != nil {
		return Config{}, err
	}

	if err := config.validateConfig(); err != nil {
		return Config{}, err
	}

	if config.Address == "" {
		config.Address = ":" + config.Port
	}

	return config, nil
}

func (c *Config) parseFlags(args []string) error {
	flags := flag.NewFlagSet("takeaway", flag.ContinueOnError)

	flags.StringVar(&c.Address, "a", c.Address, "Service address, overrides the port")
	flags.StringVar(&c.Port, "p", c.Port, "Service port")
	flags.StringVar(&c.DatabaseURI, "d", c.DatabaseURI, "Database URI (postgres://... or file:...)")
	flags.BoolVar(&c.DatabaseSSL, "s", c.DatabaseSSL, "Require TLS for postgres connections")
	flags.BoolVar(&c.ResetDB, "r", c.ResetDB, "Drop and recreate tables on startup")
	flags.StringVar(&c.LogLevel, "l", c.LogLevel, "Log level")

	return flags.Parse(args)
}

func (c *Config) validateConfig() error {
	if c.Address == "" {
		port, err := strconv.Atoi(c.Port)
		if err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("invalid port %q", c.Port)
		}
	}

	if c.DatabaseURI == "" {
		return errors.New("empty database uri")
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	if len(c.CORSAllowedOrigins) == 0 {
		return errors.New("empty cors allowed origins")
	}

	return nil
}
