package journal

import (
	"math"
	"sort"
	"time"

	"github.com/raghadd22/anah-mood-service/internal/analysis"
	"github.com/raghadd22/anah-mood-service/internal/models"
)

// EntryScore builds the per-entry mood score table: each lexicon hit weighs
// 1, the explicit user mood adds the configured weight on top.
func (s *Service) EntryScore(e models.JournalEntry) models.EntryScore {
	return s.analyzer.MoodScores(e.PatternCounts, e.ExplicitMood)
}

// WindowStats recomputes the aggregate over entries whose calendar-day
// distance from today is at most windowDays. Nothing is cached between
// calls. An empty window yields empty totals and history with no error.
func (s *Service) WindowStats(user string, windowDays int) models.AggregateWindow {
	db := s.loadDB(user)
	today := truncateToDate(s.now())

	win := models.AggregateWindow{
		WindowDays:  windowDays,
		TotalScores: make(map[models.MoodCategory]int),
	}

	for _, date := range sortedDates(db) {
		d, err := time.Parse(dateLayout, date)
		if err != nil {
			continue
		}
		if dayDistance(today, d) > windowDays {
			continue
		}

		entry := sanitize(date, db[date])
		score := s.EntryScore(entry)
		win.TotalWeight += score.Weight

		for mood, n := range score.Scores {
			win.TotalScores[mood] += n
		}

		dominant := analysis.DominantMood(score.Scores)
		if dominant == models.MoodUnknown && entry.ExplicitMood != "" {
			// No scored signal at all; surface the raw user choice.
			if m := analysis.MoodForKey(analysis.CleanMoodLabel(entry.ExplicitMood)); m != models.MoodUnknown {
				dominant = m
			}
		}

		win.History = append(win.History, models.DaySummary{
			Date:     date,
			Dominant: dominant,
			Scores:   score.Scores,
		})
	}

	win.Percentages = percentages(win.TotalScores, win.TotalWeight)
	win.TopMoods = topMoods(win.TotalScores, s.topMoods)
	return win
}

// percentages computes each mood's share of the total weight, which includes
// explicit-mood weight. Zero weight yields zero shares.
func percentages(totals map[models.MoodCategory]int, totalWeight int) []models.MoodShare {
	var shares []models.MoodShare
	for _, mood := range models.MoodOrder {
		score, ok := totals[mood]
		if !ok {
			continue
		}
		pct := 0
		if totalWeight > 0 {
			pct = int(math.Round(100 * float64(score) / float64(totalWeight)))
		}
		shares = append(shares, models.MoodShare{Mood: mood, Score: score, Percent: pct})
	}
	return shares
}

// topMoods lists the n highest-scoring moods, each mood's percentage taken
// against the sum of all mood scores rather than the window weight.
func topMoods(totals map[models.MoodCategory]int, n int) []models.MoodShare {
	sum := 0
	var shares []models.MoodShare
	for _, mood := range models.MoodOrder {
		score, ok := totals[mood]
		if !ok {
			continue
		}
		sum += score
		shares = append(shares, models.MoodShare{Mood: mood, Score: score})
	}

	sort.SliceStable(shares, func(i, j int) bool { return shares[i].Score > shares[j].Score })
	if len(shares) > n {
		shares = shares[:n]
	}
	for i := range shares {
		if sum > 0 {
			shares[i].Percent = int(math.Round(100 * float64(shares[i].Score) / float64(sum)))
		}
	}
	return shares
}

// Streaks computes the current run of consecutive entry days anchored at the
// most recent entry, and the best run ever.
func (s *Service) Streaks(user string) models.Streaks {
	dates := sortedDates(s.loadDB(user))
	return models.Streaks{
		Current: currentStreak(dates),
		Best:    bestStreak(dates),
	}
}

func sortedDates(db map[string]models.JournalEntry) []string {
	dates := make([]string, 0, len(db))
	for date := range db {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

func currentStreak(dates []string) int {
	if len(dates) == 0 {
		return 0
	}
	streak := 1
	for i := len(dates) - 1; i > 0; i-- {
		if !consecutive(dates[i-1], dates[i]) {
			break
		}
		streak++
	}
	return streak
}

func bestStreak(dates []string) int {
	if len(dates) == 0 {
		return 0
	}
	best, streak := 1, 1
	for i := 1; i < len(dates); i++ {
		if consecutive(dates[i-1], dates[i]) {
			streak++
		} else {
			streak = 1
		}
		if streak > best {
			best = streak
		}
	}
	return best
}

// consecutive reports whether two ISO dates are exactly one calendar day
// apart. Calendar arithmetic, not 24-hour deltas, keeps this immune to DST.
func consecutive(earlier, later string) bool {
	a, errA := time.Parse(dateLayout, earlier)
	b, errB := time.Parse(dateLayout, later)
	if errA != nil || errB != nil {
		return false
	}
	return a.AddDate(0, 0, 1).Equal(b)
}

// dayDistance is the whole-day distance between two midnight-truncated
// times, rounding any partial day up.
func dayDistance(a, b time.Time) int {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
