package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names understood by LoadEnv
const (
	EnvWidth    = "DREAMRUNNER_WIDTH"
	EnvHeight   = "DREAMRUNNER_HEIGHT"
	EnvTickRate = "DREAMRUNNER_TPS"
	EnvSeed     = "DREAMRUNNER_SEED"
	EnvLogLevel = "DREAMRUNNER_LOG_LEVEL"
)

// LoadEnv reads an optional .env file into the process environment and
// applies any DREAMRUNNER_* overrides to c. A missing file is not an error.
func LoadEnv(c *Config, path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}

	if err := envInt(EnvWidth, &c.Stage.Width); err != nil {
		return err
	}
	if err := envInt(EnvHeight, &c.Stage.Height); err != nil {
		return err
	}
	if err := envInt(EnvTickRate, &c.Stage.TickRate); err != nil {
		return err
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		c.Seed = seed
	}
	return nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	if n <= 0 {
		return fmt.Errorf("invalid %s %q: must be positive", key, v)
	}
	*dst = n
	return nil
}
