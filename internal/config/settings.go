// internal/config/settings.go
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Settings — параметры запуска, читаются из окружения и .env.
type Settings struct {
	WordsFile string
	LogLevel  zerolog.Level
	LogFile   string
	Seed      int64
	Mute      bool
}

// DefaultSettings — значения по умолчанию
func DefaultSettings() Settings {
	return Settings{LogLevel: zerolog.InfoLevel}
}

// LoadSettings подгружает .env (если он есть) и читает окружение.
func LoadSettings() Settings {
	_ = godotenv.Load()
	return SettingsFromEnv(os.Getenv)
}

// SettingsFromEnv собирает настройки через getenv; некорректные значения
// заменяются значениями по умолчанию.
func SettingsFromEnv(getenv func(string) string) Settings {
	s := DefaultSettings()
	s.WordsFile = strings.TrimSpace(getenv("HANGMAN_WORDS_FILE"))
	s.LogFile = strings.TrimSpace(getenv("HANGMAN_LOG_FILE"))

	if v := getenv("LOG_LEVEL"); v != "" {
		if lvl, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			s.LogLevel = lvl
		} else {
			log.Warn().Str("value", v).Msg("invalid LOG_LEVEL, using info")
		}
	}
	if v := getenv("HANGMAN_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			s.Seed = seed
		} else {
			log.Warn().Str("value", v).Msg("invalid HANGMAN_SEED, using clock")
		}
	}
	if v := getenv("HANGMAN_MUTE"); v != "" {
		if mute, err := strconv.ParseBool(v); err == nil {
			s.Mute = mute
		} else {
			log.Warn().Str("value", v).Msg("invalid HANGMAN_MUTE, sound stays on")
		}
	}
	return s
}
