// Package journal persists diary entries per user partition and computes the
// derived views over them: windowed mood aggregates, streaks and
// achievements. A partition is one JSON blob mapping ISO dates to entries,
// read and written wholesale.
package journal

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/raghadd22/anah-mood-service/internal/analysis"
	"github.com/raghadd22/anah-mood-service/internal/arabic"
	"github.com/raghadd22/anah-mood-service/internal/models"
	"github.com/raghadd22/anah-mood-service/internal/storage"
)

const (
	// GuestUser is the partition for unauthenticated sessions.
	GuestUser = "guest"

	dateLayout      = "2006-01-02"
	partitionPrefix = "journal/"
)

// Service owns journal entries and their derived statistics.
type Service struct {
	storage  storage.StorageInterface
	analyzer *analysis.Analyzer
	topMoods int
	now      func() time.Time
}

// NewService creates a journal service. topMoods bounds the top-mood listing
// in window aggregates.
func NewService(st storage.StorageInterface, analyzer *analysis.Analyzer, topMoods int) *Service {
	return &Service{
		storage:  st,
		analyzer: analyzer,
		topMoods: topMoods,
		now:      time.Now,
	}
}

func partitionBlob(user string) string {
	if user == "" {
		user = GuestUser
	}
	return partitionPrefix + user + ".json"
}

// UserFromBlob recovers the partition user from a blob name listed under the
// journal prefix.
func UserFromBlob(name string) string {
	name = strings.TrimPrefix(name, partitionPrefix)
	return strings.TrimSuffix(name, ".json")
}

// loadDB reads a user partition. A missing, unreadable or corrupt partition
// yields an empty map, never an error.
func (s *Service) loadDB(user string) map[string]models.JournalEntry {
	data, err := s.storage.Retrieve(partitionBlob(user))
	if err != nil {
		return map[string]models.JournalEntry{}
	}

	var db map[string]models.JournalEntry
	if err := json.Unmarshal(data, &db); err != nil {
		logrus.Warnf("Corrupt journal partition for %s, treating as empty: %v", user, err)
		return map[string]models.JournalEntry{}
	}
	if db == nil {
		db = map[string]models.JournalEntry{}
	}
	return db
}

func (s *Service) saveDB(user string, db map[string]models.JournalEntry) error {
	data, err := json.Marshal(db)
	if err != nil {
		return fmt.Errorf("failed to marshal journal partition: %w", err)
	}
	return s.storage.Store(partitionBlob(user), data)
}

// sanitize substitutes safe defaults for malformed stored fields.
func sanitize(date string, e models.JournalEntry) models.JournalEntry {
	e.Date = date
	if e.Rating < 0 || e.Rating > 5 {
		e.Rating = 0
	}
	if e.DominantMood == "" {
		e.DominantMood = models.MoodUnknown
	}
	return e
}

// Save analyzes the text and writes the entry for the given date wholesale,
// replacing any existing one. Analysis failures degrade to an entry without
// pattern counts; the fallback rules still get a chance at the mood.
func (s *Service) Save(user, date, text string, rating int, explicitMood string) (models.JournalEntry, error) {
	if strings.TrimSpace(text) == "" {
		return models.JournalEntry{}, fmt.Errorf("entry text is required")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return models.JournalEntry{}, fmt.Errorf("invalid entry date %q: %w", date, err)
	}
	if rating < 0 || rating > 5 {
		return models.JournalEntry{}, fmt.Errorf("rating must be between 0 and 5")
	}

	db := s.loadDB(user)

	// Wholesale overwrite keeps the original creation time.
	createdAt := s.now()
	if prev, ok := db[date]; ok && !prev.CreatedAt.IsZero() {
		createdAt = prev.CreatedAt
	}

	res := s.analyzer.AnalyzeText(text)
	entry := models.JournalEntry{
		Date:          date,
		Text:          text,
		Words:         arabic.WordCount(text),
		Rating:        rating,
		ExplicitMood:  analysis.CleanMoodLabel(explicitMood),
		PatternCounts: res.Counts,
		TotalMatches:  res.TotalMatches,
		DominantMood:  s.analyzer.ComputeDominantMood(text, explicitMood),
		CreatedAt:     createdAt,
		SavedAt:       s.now(),
	}

	db[date] = entry
	if err := s.saveDB(user, db); err != nil {
		return models.JournalEntry{}, err
	}

	logrus.Infof("Saved journal entry for %s on %s (%d lexicon hits, mood %s)",
		user, date, entry.TotalMatches, entry.DominantMood)
	return entry, nil
}

// Get returns the entry for a date, reporting whether it exists.
func (s *Service) Get(user, date string) (models.JournalEntry, bool) {
	db := s.loadDB(user)
	e, ok := db[date]
	if !ok {
		return models.JournalEntry{}, false
	}
	return sanitize(date, e), true
}

// Delete removes the entry for a date wholesale. Deleting a missing entry is
// a no-op.
func (s *Service) Delete(user, date string) error {
	db := s.loadDB(user)
	if _, ok := db[date]; !ok {
		return nil
	}
	delete(db, date)
	return s.saveDB(user, db)
}

// List returns entries sorted descending by date. rating filters to a single
// rating value when in 0..5; pass a negative rating for no filter.
func (s *Service) List(user string, rating int) []models.JournalEntry {
	db := s.loadDB(user)

	dates := make([]string, 0, len(db))
	for date := range db {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	entries := make([]models.JournalEntry, 0, len(dates))
	for _, date := range dates {
		e := sanitize(date, db[date])
		if rating >= 0 && rating <= 5 && e.Rating != rating {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// Users lists all partitions that currently hold a journal blob.
func (s *Service) Users() ([]string, error) {
	names, err := s.storage.List(partitionPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal partitions: %w", err)
	}
	users := make([]string, 0, len(names))
	for _, name := range names {
		users = append(users, UserFromBlob(name))
	}
	return users, nil
}

// Achievements derives the badge set from entry totals and the current
// streak.
func (s *Service) Achievements(user string) []models.Achievement {
	db := s.loadDB(user)
	total := len(db)
	current := currentStreak(sortedDates(db))

	return []models.Achievement{
		{ID: "first-entry", Icon: "🌱", Unlocked: total >= 1},
		{ID: "streak-3", Icon: "🔥", Unlocked: current >= 3},
		{ID: "five-entries", Icon: "✍️", Unlocked: total >= 5},
		{ID: "streak-7", Icon: "🏆", Unlocked: current >= 7},
	}
}
