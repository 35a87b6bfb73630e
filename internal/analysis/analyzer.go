// Package analysis turns journal text into per-emotion counts and resolves a
// single dominant mood per entry, combining lexicon matches, the substring
// fallback rules and an optional explicit user mood signal.
package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/raghadd22/anah-mood-service/internal/arabic"
	"github.com/raghadd22/anah-mood-service/internal/lexicon"
	"github.com/raghadd22/anah-mood-service/internal/models"
)

// Result is the outcome of scanning one text against the lexicon.
type Result struct {
	Counts       map[string]int // emotion key -> token hits
	TotalMatches int
}

// Analyzer resolves journal text to moods using a lexicon store and the
// configured explicit-mood weight.
type Analyzer struct {
	store              *lexicon.Store
	explicitMoodWeight int
}

// New creates an analyzer. explicitMoodWeight is how many lexicon hits one
// explicit user mood selection is worth.
func New(store *lexicon.Store, explicitMoodWeight int) *Analyzer {
	return &Analyzer{store: store, explicitMoodWeight: explicitMoodWeight}
}

// AnalyzeText tokenizes the text and resolves each token through the
// override table, the lexicon and the affix resolver, in that order. A token
// contributes to at most one emotion; unresolved tokens are skipped. With the
// lexicon unavailable every token misses and the result is empty.
func (a *Analyzer) AnalyzeText(text string) Result {
	res := Result{Counts: make(map[string]int)}
	if strings.TrimSpace(text) == "" {
		return res
	}

	for _, raw := range arabic.Tokenize(text) {
		tok := arabic.NormalizeToken(raw)
		if tok == "" {
			continue
		}
		entry, ok := a.store.Resolve(tok)
		if !ok || entry.Emotion == "" {
			continue
		}
		res.Counts[entry.Emotion]++
		res.TotalMatches++
	}
	return res
}

// MoodScores folds per-emotion counts into per-mood scores and, when an
// explicit mood label is present, adds the configured weight on top. The
// explicit signal is additive: it can flip the dominant mood but never
// replaces the lexicon-derived scores. Unmapped keys carry no weight.
func (a *Analyzer) MoodScores(counts map[string]int, explicitMood string) models.EntryScore {
	score := models.EntryScore{Scores: make(map[models.MoodCategory]int)}

	for key, n := range counts {
		mood := MoodForKey(key)
		if mood == models.MoodUnknown {
			continue
		}
		score.Scores[mood] += n
		score.Weight += n
	}

	if label := CleanMoodLabel(explicitMood); label != "" {
		if mood := MoodForKey(label); mood != models.MoodUnknown {
			score.Scores[mood] += a.explicitMoodWeight
			score.Weight += a.explicitMoodWeight
		}
	}

	return score
}

// DominantMood picks the mood with the strictly greatest score, walking
// categories in canonical order so that ties reproducibly keep the earliest
// category. The -1 sentinel means any present score wins, including 0.
func DominantMood(scores map[models.MoodCategory]int) models.MoodCategory {
	dominant := models.MoodUnknown
	max := -1
	for _, mood := range models.MoodOrder {
		s, ok := scores[mood]
		if !ok {
			continue
		}
		if s > max {
			max = s
			dominant = mood
		}
	}
	return dominant
}

// ComputeDominantMood is the full per-entry resolution: lexicon scores plus
// the weighted explicit signal; if that yields nothing, the substring
// fallback rules; otherwise undetermined.
func (a *Analyzer) ComputeDominantMood(text, explicitMood string) models.MoodCategory {
	res := a.AnalyzeText(text)
	score := a.MoodScores(res.Counts, explicitMood)
	if mood := DominantMood(score.Scores); mood != models.MoodUnknown {
		return mood
	}
	return FallbackMood(text)
}

// CleanMoodLabel trims an explicit mood value to its bare label. The web
// client historically stored labels as "emoji: <label>".
func CleanMoodLabel(label string) string {
	if i := strings.Index(label, ":"); i >= 0 {
		label = label[i+1:]
	}
	return strings.TrimSpace(label)
}

// Summary renders a short Arabic description of the strongest detected
// emotion groups, at most top 3, for display alongside a saved entry.
func Summary(counts map[string]int, totalMatches int) string {
	if totalMatches == 0 {
		return "لم تُرصد كلمات مزاجية واضحة."
	}

	grouped := make(map[models.MoodCategory]int)
	for key, n := range counts {
		mood := MoodForKey(key)
		if mood == models.MoodUnknown {
			continue
		}
		grouped[mood] += n
	}

	type part struct {
		mood models.MoodCategory
		n    int
	}
	var parts []part
	for _, mood := range models.MoodOrder {
		if n, ok := grouped[mood]; ok {
			parts = append(parts, part{mood, n})
		}
	}
	sort.SliceStable(parts, func(i, j int) bool { return parts[i].n > parts[j].n })
	if len(parts) > 3 {
		parts = parts[:3]
	}
	if len(parts) == 0 {
		return "لم تُرصد كلمات مزاجية واضحة."
	}

	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		labels = append(labels, fmt.Sprintf("%s (%d)", p.mood, p.n))
	}
	return fmt.Sprintf("أكثر الكلمات الدالة على مشاعر كانت: %s.", strings.Join(labels, "، "))
}
