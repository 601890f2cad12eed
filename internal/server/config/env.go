package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

// portEnv supports the bare PORT variable most PaaS runtimes set.
type portEnv struct {
	Port string `env:"PORT"`
}

// parseEnv loads dotEnv (when it exists) into the process environment without
// overriding variables that are already set, then overlays every Config field
// whose env variable is present. ADDRESS wins over PORT.
func parseEnv(config *Config, dotEnv string) error {
	if dotEnv != "" {
		if err := godotenv.Load(dotEnv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", dotEnv, err)
		}
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return fmt.Errorf("read env: %w", err)
	}

	var p portEnv
	if err := cleanenv.ReadEnv(&p); err != nil {
		return fmt.Errorf("read env: %w", err)
	}
	if _, ok := os.LookupEnv("ADDRESS"); !ok && p.Port != "" {
		config.EndpointAddrHTTP = ":" + p.Port
	}
	return nil
}
