// Package config resolves runtime settings from an optional .env file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables.
const (
	EnvDataDir  = "OCCUPYCHESS_DATA_DIR"
	EnvMemory   = "OCCUPYCHESS_MEMORY"
	EnvSound    = "OCCUPYCHESS_SOUND"
	EnvAutosave = "OCCUPYCHESS_AUTOSAVE"
)

// Config holds the resolved settings.
type Config struct {
	DataDir  string // empty selects the platform data directory
	Memory   bool   // keep the database in memory only
	NoStore  bool   // run without any database
	Sound    bool
	Autosave bool
	Resume   bool // start from the autosave slot
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Sound:    true,
		Autosave: true,
	}
}

// FromEnv applies the environment on top of the defaults.
func FromEnv() Config {
	cfg := Default()
	cfg.DataDir = getenv(EnvDataDir, cfg.DataDir)
	cfg.Memory = getenb(EnvMemory, cfg.Memory)
	cfg.Sound = getenb(EnvSound, cfg.Sound)
	cfg.Autosave = getenb(EnvAutosave, cfg.Autosave)
	return cfg
}

// Load reads envFiles (or ./.env when none are given), then the environment,
// then parses args with a flag set called name. A missing ./.env is not an
// error; a missing explicit file is.
func Load(name string, args []string, envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := FromEnv()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "data directory (env "+EnvDataDir+")")
	fs.BoolVar(&cfg.Memory, "memory", cfg.Memory, "keep the database in memory (env "+EnvMemory+")")
	fs.BoolVar(&cfg.NoStore, "nostore", cfg.NoStore, "run without saved games, autosave or stats")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play sound effects (env "+EnvSound+")")
	fs.BoolVar(&cfg.Autosave, "autosave", cfg.Autosave, "autosave after every action (env "+EnvAutosave+")")
	fs.BoolVar(&cfg.Resume, "resume", cfg.Resume, "resume the autosaved game")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v, ok := ParseBool(os.Getenv(key)); ok {
		return v
	}
	return def
}

// ParseBool accepts 1/true/yes/y/on and 0/false/no/n/off in any case.
func ParseBool(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, true
	case "0", "false", "f", "no", "n", "off":
		return false, true
	}
	return false, false
}
