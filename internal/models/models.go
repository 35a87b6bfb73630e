package models

import "time"

// MoodCategory is a user-facing Arabic mood label. Exactly six real
// categories exist plus the MoodUnknown sentinel.
type MoodCategory string

const (
	MoodHappy   MoodCategory = "سعيد"
	MoodCalm    MoodCategory = "هادئ"
	MoodAngry   MoodCategory = "غاضب"
	MoodSad     MoodCategory = "حزين"
	MoodAnxious MoodCategory = "قلق"
	MoodTired   MoodCategory = "متعب"
	MoodUnknown MoodCategory = "غير محدد"
)

// MoodOrder is the canonical iteration order for mood categories.
// Dominant-mood tie-breaking and percentage listings walk categories in this
// order, so equal scores resolve to the earliest category here.
var MoodOrder = []MoodCategory{MoodHappy, MoodCalm, MoodAngry, MoodSad, MoodAnxious, MoodTired}

// JournalEntry is one diary entry, at most one per calendar date per user.
// Entries are written and deleted wholesale.
type JournalEntry struct {
	Date          string         `json:"date"` // ISO calendar date, "2006-01-02"
	Text          string         `json:"text"`
	Words         int            `json:"words"`
	Rating        int            `json:"rating"` // 0-5
	ExplicitMood  string         `json:"explicit_mood,omitempty"`
	PatternCounts map[string]int `json:"pattern_counts,omitempty"` // emotion key -> hits
	TotalMatches  int            `json:"total_matches"`
	DominantMood  MoodCategory   `json:"dominant_mood"`
	CreatedAt     time.Time      `json:"created_at"`
	SavedAt       time.Time      `json:"saved_at"`
}

// EntryScore is the derived per-entry score table: lexicon hits count 1 each,
// an explicit user mood adds the configured weight. Never persisted.
type EntryScore struct {
	Scores map[MoodCategory]int `json:"scores"`
	Weight int                  `json:"weight"`
}

// DaySummary is one row of a window's per-day history.
type DaySummary struct {
	Date     string               `json:"date"`
	Dominant MoodCategory         `json:"dominant"`
	Scores   map[MoodCategory]int `json:"scores"`
}

// MoodShare is a mood with its share of a total, used for percentage and
// top-N listings.
type MoodShare struct {
	Mood    MoodCategory `json:"mood"`
	Score   int          `json:"score"`
	Percent int          `json:"percent"`
}

// AggregateWindow is the fully recomputed aggregate over a trailing day
// window. TotalWeight includes explicit-mood weight; top-mood percentages are
// relative to the sum of mood scores instead, so the two denominators can
// differ.
type AggregateWindow struct {
	WindowDays  int                  `json:"window_days"`
	TotalScores map[MoodCategory]int `json:"total_scores"`
	TotalWeight int                  `json:"total_weight"`
	History     []DaySummary         `json:"history"` // ascending by date
	Percentages []MoodShare          `json:"percentages"`
	TopMoods    []MoodShare          `json:"top_moods"`
}

// Streaks holds consecutive-day journaling runs. Current is anchored at the
// most recent entry date; Best is the longest run ever.
type Streaks struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

// Achievement is a derived badge computed from entry totals and streaks.
type Achievement struct {
	ID       string `json:"id"`
	Icon     string `json:"icon"`
	Unlocked bool   `json:"unlocked"`
}

// Report is a periodic per-user mood report delivered by the notification
// service.
type Report struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Period      string          `json:"period"` // "daily" or "weekly"
	User        string          `json:"user"`
	Window      AggregateWindow `json:"window"`
	Streaks     Streaks         `json:"streaks"`
	Entries     int             `json:"entries"`
}
