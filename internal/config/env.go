package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvTuning   = "CHAOS_TUNING"
	EnvSeed     = "CHAOS_SEED"
	EnvLogLevel = "CHAOS_LOG_LEVEL"
	EnvClass    = "CHAOS_CLASS"
	EnvSound    = "CHAOS_SOUND"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// LoadEnv reads the given .env files (".env" when none are given) into the
// process environment. A missing file is not an error; variables already set win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// Settings are the host-level knobs read from the environment.
type Settings struct {
	TuningPath string
	Seed       int64
	LogLevel   string
	Class      string
	Sound      bool
}

// FromEnv collects Settings. An unparsable seed falls back to 0 (time-seeded).
func FromEnv() Settings {
	seed, err := strconv.ParseInt(GetEnv(EnvSeed, "0"), 10, 64)
	if err != nil {
		seed = 0
	}
	sound := strings.ToLower(GetEnv(EnvSound, "on"))
	return Settings{
		TuningPath: GetEnv(EnvTuning, ""),
		Seed:       seed,
		LogLevel:   GetEnv(EnvLogLevel, "info"),
		Class:      strings.ToUpper(GetEnv(EnvClass, "")),
		Sound:      sound != "off" && sound != "0" && sound != "false",
	}
}
