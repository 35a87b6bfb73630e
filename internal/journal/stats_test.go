package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghadd22/anah-mood-service/internal/models"
)

func TestWindowStatsFiltering(t *testing.T) {
	now := time.Date(2024, 1, 8, 15, 30, 0, 0, time.UTC)
	svc, _ := newTestService(t, now)

	// Exactly windowDays away is included, windowDays+1 is excluded.
	for _, date := range []string{"2023-12-31", "2024-01-01", "2024-01-08"} {
		_, err := svc.Save("guest", date, "فرح", 3, "")
		require.NoError(t, err)
	}

	win := svc.WindowStats("guest", 7)
	require.Len(t, win.History, 2)
	assert.Equal(t, "2024-01-01", win.History[0].Date)
	assert.Equal(t, "2024-01-08", win.History[1].Date)

	// A same-day entry has distance 0 and survives even a zero-day window.
	win = svc.WindowStats("guest", 0)
	require.Len(t, win.History, 1)
	assert.Equal(t, "2024-01-08", win.History[0].Date)
}

func TestWindowStatsScoresAndPercentages(t *testing.T) {
	now := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, now)

	// Two joy hits one day, one sadness hit the next:
	// totals happy=2 sad=1, weight 3 -> 67% / 33%.
	_, err := svc.Save("guest", "2024-01-07", "فرح ثم فرح", 4, "")
	require.NoError(t, err)
	_, err = svc.Save("guest", "2024-01-08", "حزن", 2, "")
	require.NoError(t, err)

	win := svc.WindowStats("guest", 7)

	assert.Equal(t, map[models.MoodCategory]int{models.MoodHappy: 2, models.MoodSad: 1}, win.TotalScores)
	assert.Equal(t, 3, win.TotalWeight)

	require.Len(t, win.Percentages, 2)
	assert.Equal(t, models.MoodShare{Mood: models.MoodHappy, Score: 2, Percent: 67}, win.Percentages[0])
	assert.Equal(t, models.MoodShare{Mood: models.MoodSad, Score: 1, Percent: 33}, win.Percentages[1])

	require.Len(t, win.History, 2)
	assert.Equal(t, models.MoodHappy, win.History[0].Dominant)
	assert.Equal(t, models.MoodSad, win.History[1].Dominant)
}

func TestWindowStatsExplicitMoodWeight(t *testing.T) {
	now := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, now)

	// One joy hit plus an explicit "متعب" worth 3: tired dominates the day
	// and the two denominators diverge from plain hit counts.
	_, err := svc.Save("guest", "2024-01-08", "فيه فرح بسيط", 3, "متعب")
	require.NoError(t, err)

	win := svc.WindowStats("guest", 7)
	assert.Equal(t, map[models.MoodCategory]int{models.MoodHappy: 1, models.MoodTired: 3}, win.TotalScores)
	assert.Equal(t, 4, win.TotalWeight)
	assert.Equal(t, models.MoodTired, win.History[0].Dominant)
}

func TestWindowStatsTopMoods(t *testing.T) {
	now := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, now)

	_, err := svc.Save("guest", "2024-01-06", "فرح فرح فرح", 5, "")
	require.NoError(t, err)
	_, err = svc.Save("guest", "2024-01-07", "حزن حزن", 2, "")
	require.NoError(t, err)
	_, err = svc.Save("guest", "2024-01-08", "خوف", 2, "")
	require.NoError(t, err)

	win := svc.WindowStats("guest", 7)

	// Top moods are ranked by score; percentages are relative to the sum of
	// mood scores (6), not the window weight.
	require.Len(t, win.TopMoods, 3)
	assert.Equal(t, models.MoodShare{Mood: models.MoodHappy, Score: 3, Percent: 50}, win.TopMoods[0])
	assert.Equal(t, models.MoodShare{Mood: models.MoodSad, Score: 2, Percent: 33}, win.TopMoods[1])
	assert.Equal(t, models.MoodShare{Mood: models.MoodAnxious, Score: 1, Percent: 17}, win.TopMoods[2])
}

func TestWindowStatsEmptyStore(t *testing.T) {
	svc, _ := newTestService(t, time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC))

	win := svc.WindowStats("guest", 7)
	assert.Empty(t, win.TotalScores)
	assert.Zero(t, win.TotalWeight)
	assert.Empty(t, win.History)
	assert.Empty(t, win.Percentages)
	assert.Empty(t, win.TopMoods)

	streaks := svc.Streaks("guest")
	assert.Zero(t, streaks.Current)
	assert.Zero(t, streaks.Best)
}

func TestStreaks(t *testing.T) {
	tests := []struct {
		name    string
		dates   []string
		current int
		best    int
	}{
		{
			name:    "Run broken before the latest entry",
			dates:   []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05"},
			current: 1,
			best:    3,
		},
		{
			name:    "Unbroken run",
			dates:   []string{"2024-01-03", "2024-01-04", "2024-01-05"},
			current: 3,
			best:    3,
		},
		{
			name:    "Single entry",
			dates:   []string{"2024-01-05"},
			current: 1,
			best:    1,
		},
		{
			name:    "Best run in the past",
			dates:   []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-10", "2024-01-11"},
			current: 2,
			best:    4,
		},
		{
			name:    "Month boundary is consecutive",
			dates:   []string{"2024-01-31", "2024-02-01"},
			current: 2,
			best:    2,
		},
		{
			name:  "No entries",
			dates: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t, time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC))
			for _, date := range tt.dates {
				_, err := svc.Save("guest", date, "نص اليوم", 3, "")
				require.NoError(t, err)
			}

			streaks := svc.Streaks("guest")
			assert.Equal(t, tt.current, streaks.Current)
			assert.Equal(t, tt.best, streaks.Best)
		})
	}
}

func TestDayDistance(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, 0, dayDistance(day(2024, 1, 8), day(2024, 1, 8)))
	assert.Equal(t, 1, dayDistance(day(2024, 1, 8), day(2024, 1, 7)))
	assert.Equal(t, 7, dayDistance(day(2024, 1, 8), day(2024, 1, 1)))
	assert.Equal(t, 8, dayDistance(day(2024, 1, 8), day(2023, 12, 31)))
}
