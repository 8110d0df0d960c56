// Package config reads the initial log level.
//
// Sources, highest precedence first:
//
//  1. the LOG_LEVEL process environment variable
//  2. LOG_LEVEL in a .env file in the working directory
//  3. the "level" key of the YAML file named by LOG_CONFIG
//
// The .env file is only read; the process environment is never modified.
package config

import (
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	EnvLevel = "LOG_LEVEL"
	EnvFile  = "LOG_CONFIG"
)

// DotEnvPath is the .env file consulted by Load.
var DotEnvPath = ".env"

// Config is the logger configuration. Level is passed through verbatim; it is
// up to the logger to decide what an unknown name means.
type Config struct {
	Level string `yaml:"level"`
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: read %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: parse %s", path)
	}
	return cfg, nil
}

// Load merges all sources. A missing .env file is not an error.
func Load() (Config, error) {
	var cfg Config

	dotenv, err := godotenv.Read(DotEnvPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return cfg, errors.Wrapf(err, "config: read %s", DotEnvPath)
		}
		dotenv = map[string]string{}
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return dotenv[key]
	}

	if path := lookup(EnvFile); path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = fileCfg
	}
	if lvl := lookup(EnvLevel); lvl != "" {
		cfg.Level = lvl
	}
	return cfg, nil
}
