// Package logging настраивает глобальный zerolog-логгер.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup направляет глобальный логгер в w с указанным уровнем.
func Setup(level zerolog.Level, w io.Writer) {
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// Console — человекочитаемый вывод в stderr, для оконной версии.
func Console(level zerolog.Level) {
	Setup(level, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

// File пишет JSON-логи в файл; пустой путь выключает логи совсем.
// Терминальная версия не может писать в stderr поверх экрана.
func File(level zerolog.Level, path string) (io.Closer, error) {
	if path == "" {
		Setup(level, io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		Setup(level, io.Discard)
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	Setup(level, f)
	return f, nil
}
