// Package lexicon loads the static Arabic word-to-emotion lexicon and
// resolves normalized tokens against it, including the manual override table
// and the heuristic affix stripping for inflected forms.
package lexicon

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// Entry is one lexicon record: a normalized word tagged with a fine-grained
// emotion key such as "anger" or "fear".
type Entry struct {
	Emotion string `json:"emotion"`
}

// Store holds the word-to-emotion mapping, loaded once and immutable after
// load. Lookups before the load completes (or after it fails) simply miss;
// callers treat that as zero matches rather than an error.
type Store struct {
	url    string
	path   string
	client *resty.Client

	once    sync.Once
	ready   chan struct{}
	mu      sync.RWMutex
	entries map[string]Entry
	loadErr error
}

// NewStore creates a lexicon store that loads from url when set, otherwise
// from the local file at path. Nothing is fetched until Load is called.
func NewStore(url, path string) *Store {
	return &Store{
		url:  url,
		path: path,
		client: resty.New().
			SetTimeout(30 * time.Second).
			SetRetryCount(3).
			SetRetryWaitTime(2 * time.Second),
		ready: make(chan struct{}),
	}
}

// Load fetches and parses the lexicon exactly once; concurrent callers share
// the single in-flight load. A failed load is terminal: the store stays
// unavailable and every lookup misses.
func (s *Store) Load(ctx context.Context) error {
	s.once.Do(func() {
		defer close(s.ready)

		data, err := s.fetch(ctx)
		if err != nil {
			s.loadErr = err
			logrus.Errorf("Lexicon unavailable, running in fallback-only mode: %v", err)
			return
		}

		var entries map[string]Entry
		if err := json.Unmarshal(data, &entries); err != nil {
			s.loadErr = fmt.Errorf("failed to parse lexicon: %w", err)
			logrus.Errorf("Lexicon unavailable, running in fallback-only mode: %v", s.loadErr)
			return
		}

		s.mu.Lock()
		s.entries = entries
		s.mu.Unlock()
		logrus.Infof("Loaded lexicon with %d entries", len(entries))
	})

	// once.Do blocks until the first load attempt finishes, so the result is
	// committed by the time any caller reaches this point.
	return s.loadErr
}

func (s *Store) fetch(ctx context.Context) ([]byte, error) {
	if s.url != "" {
		resp, err := s.client.R().SetContext(ctx).Get(s.url)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch lexicon from %s: %w", s.url, err)
		}
		if resp.StatusCode() != 200 {
			return nil, fmt.Errorf("lexicon endpoint returned status %d", resp.StatusCode())
		}
		return resp.Body(), nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file %s: %w", s.path, err)
	}
	return data, nil
}

// Ready returns a channel closed once the load attempt has finished, whether
// it succeeded or not.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// Available reports whether the lexicon loaded successfully.
func (s *Store) Available() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries != nil
}

// Lookup returns the entry for an exact normalized word. Misses while the
// store is unavailable.
func (s *Store) Lookup(word string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[word]
	return e, ok
}

// Size returns the number of loaded entries, 0 when unavailable.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
