package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/whyvineet/orthoplay-go/internal/dependencies/random"
	"github.com/whyvineet/orthoplay-go/internal/model"
)

// maxHints is the number of hints a word record may carry
const maxHints = 3

// Service is the immutable in-memory word catalog. Records are loaded once
// at startup; a load failure is fatal (the server must not start serving
// without words).
type Service struct {
	random random.Random
	logger *slog.Logger

	mu     sync.RWMutex
	words  map[string]model.WordRecord
	keys   []string // sorted word list for uniform random selection
	loaded bool
}

// New creates a new word catalog
func New(rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: rnd,
		logger: logger,
		words:  make(map[string]model.WordRecord),
	}
}

// fileRecord is the on-disk shape of one catalog entry, keyed by word
type fileRecord struct {
	Description string           `json:"description"`
	Hints       []string         `json:"hints,omitempty"`
	Sentence    string           `json:"sentence"`
	Difficulty  model.Difficulty `json:"difficulty,omitempty"`
}

// LoadFromFile loads the catalog from a JSON file mapping word to record
func (s *Service) LoadFromFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read word catalog: %w", err)
	}

	var entries map[string]fileRecord
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("parse word catalog: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("parse word catalog: %w", model.ErrCatalogNotLoaded)
	}

	records := make([]model.WordRecord, 0, len(entries))
	for word, entry := range entries {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			return fmt.Errorf("word catalog contains an empty word")
		}
		if len(entry.Hints) > maxHints {
			return fmt.Errorf("word %q has %d hints, max is %d", word, len(entry.Hints), maxHints)
		}
		if entry.Difficulty != "" && !entry.Difficulty.IsValid() {
			return fmt.Errorf("word %q has unknown difficulty %q", word, entry.Difficulty)
		}
		records = append(records, model.WordRecord{
			Word:            word,
			Description:     entry.Description,
			Hints:           entry.Hints,
			ExampleSentence: entry.Sentence,
			Difficulty:      entry.Difficulty,
		})
	}

	s.LoadWords(records)
	s.logger.Info("word catalog loaded",
		slog.String("path", path),
		slog.Int("words", len(records)),
	)
	return nil
}

// LoadWords directly loads a slice of records (useful for testing)
func (s *Service) LoadWords(records []model.WordRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = make(map[string]model.WordRecord, len(records))
	s.keys = make([]string, 0, len(records))
	for _, r := range records {
		r.Word = strings.ToLower(r.Word)
		if _, exists := s.words[r.Word]; !exists {
			s.keys = append(s.keys, r.Word)
		}
		s.words[r.Word] = r
	}
	sort.Strings(s.keys)
	s.loaded = len(s.words) > 0
}

// RandomWord returns a uniformly chosen word from the whole catalog
func (s *Service) RandomWord() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return "", model.ErrCatalogNotLoaded
	}
	return s.keys[s.random.Intn(len(s.keys))], nil
}

// RandomWordByDifficulty returns a uniformly chosen word among records
// with the given difficulty
func (s *Service) RandomWordByDifficulty(d model.Difficulty) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return "", model.ErrCatalogNotLoaded
	}

	var filtered []string
	for _, word := range s.keys {
		if s.words[word].Difficulty == d {
			filtered = append(filtered, word)
		}
	}
	if len(filtered) == 0 {
		return "", fmt.Errorf("%w: %s", model.ErrNoWordsForDifficulty, d)
	}
	return filtered[s.random.Intn(len(filtered))], nil
}

// Get returns the record for a word. The second return is false when the
// word is absent; the empty record is returned in that case.
func (s *Service) Get(word string) (model.WordRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.words[strings.ToLower(word)]
	return record, ok
}

// WordCount returns the number of words in the catalog
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// IsLoaded returns whether the catalog has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
