// Package words поставляет слова для раундов: список из файла или
// встроенный запасной список.
package words

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go-hangman/internal/round"

	"github.com/rs/zerolog/log"
)

// DefaultFileName — имя файла со словами, которое ищется рядом с игрой.
const DefaultFileName = "random_common_words_20000.txt"

// Fallback — слова на случай, если файл не найден.
var Fallback = []string{"PYTHON", "HANGMAN", "DEVELOPER", "GITHUB", "COMPUTER", "PROGRAM", "KEYBOARD"}

// Source — источник слов.
type Source interface {
	LoadWords() []string
}

// FileSource ищет список слов по кандидатам в заданном порядке.
type FileSource struct {
	Candidates []string
}

// DefaultCandidates — пути поиска; configured, если не пуст, идёт первым.
func DefaultCandidates(configured string) []string {
	var out []string
	if configured != "" {
		out = append(out, configured)
	}
	return append(out,
		DefaultFileName,
		filepath.Join("bad hangman", DefaultFileName),
		filepath.Join("..", "bad hangman", DefaultFileName),
		filepath.Join("..", DefaultFileName),
	)
}

// NewFileSource создает источник с путями по умолчанию.
func NewFileSource(configured string) *FileSource {
	return &FileSource{Candidates: DefaultCandidates(configured)}
}

// LoadWords возвращает слова первого файла, в котором нашлось хоть одно
// корректное слово, либо Fallback.
func (s *FileSource) LoadWords() []string {
	for _, path := range s.Candidates {
		words, err := ReadWordFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Warn().Err(err).Str("path", path).Msg("word list unreadable")
			}
			continue
		}
		if len(words) > 0 {
			log.Info().Str("path", path).Int("count", len(words)).Msg("word list loaded")
			return words
		}
	}
	log.Info().Int("count", len(Fallback)).Msg("no word list found, using fallback")
	return append([]string(nil), Fallback...)
}

// ReadWordFile читает по одному слову на строку, отбрасывая пустые и
// некорректные строки.
func ReadWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	skipped := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		w, err := round.NormalizeWord(line)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	if skipped > 0 {
		log.Debug().Str("path", path).Int("skipped", skipped).Msg("malformed words filtered")
	}
	return out, nil
}

// Filter нормализует слова и отбрасывает некорректные.
func Filter(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if n, err := round.NormalizeWord(w); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// StaticSource — источник из заранее известного списка.
type StaticSource []string

func (s StaticSource) LoadWords() []string {
	return append([]string(nil), s...)
}
