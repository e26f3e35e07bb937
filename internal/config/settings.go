package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadSettings.
const (
	EnvDefinitions = "VARIANTS_DEFINITIONS"
	EnvLogLevel    = "VARIANTS_LOG_LEVEL"
	EnvLogFormat   = "VARIANTS_LOG_FORMAT"
)

// Settings holds runtime options for the variants command.
type Settings struct {
	DefinitionsPath string
	LogLevel        string `validate:"oneof=trace debug info warn error"`
	LogFormat       string `validate:"oneof=json console"`
}

// HumanReadableLogs reports whether logs use the console writer.
func (s Settings) HumanReadableLogs() bool {
	return s.LogFormat == "console"
}

// LoadSettings reads settings from the environment after loading the given
// dotenv files (".env" when none are given). Missing dotenv files are ignored
// and variables already present in the environment win.
func LoadSettings(files ...string) (Settings, error) {
	for _, file := range dotenvFiles(files) {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return Settings{}, err
		}
	}

	s := Settings{
		DefinitionsPath: getEnv(EnvDefinitions, ""),
		LogLevel:        strings.ToLower(getEnv(EnvLogLevel, "warn")),
		LogFormat:       strings.ToLower(getEnv(EnvLogFormat, "console")),
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the enumerated settings.
func (s Settings) Validate() error {
	return convertSettingsError(validatorInstance().Struct(s))
}

func dotenvFiles(files []string) []string {
	if len(files) == 0 {
		return []string{".env"}
	}
	return files
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
