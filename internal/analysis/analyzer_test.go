package analysis

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghadd22/anah-mood-service/internal/lexicon"
	"github.com/raghadd22/anah-mood-service/internal/models"
)

// testLexicon mirrors the shape of the production lexicon document.
const testLexicon = `{
	"حزن": {"emotion": "sadness"},
	"فرح": {"emotion": "joy"},
	"خوف": {"emotion": "fear"},
	"غضب": {"emotion": "anger"},
	"مبتهج": {"emotion": "joy"}
}`

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lexicon.json")
	require.NoError(t, os.WriteFile(path, []byte(testLexicon), 0o644))

	store := lexicon.NewStore("", path)
	require.NoError(t, store.Load(context.Background()))
	return New(store, 3)
}

func newUnavailableAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	store := lexicon.NewStore("", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, store.Load(context.Background()))
	return New(store, 3)
}

func TestAnalyzeText(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	tests := []struct {
		name     string
		text     string
		counts   map[string]int
		total    int
	}{
		{
			name:   "Single hit",
			text:   "اليوم فرح كبير",
			counts: map[string]int{"joy": 1},
			total:  1,
		},
		{
			name:   "Repeated and mixed hits",
			text:   "حزن ثم حزن ثم فرح",
			counts: map[string]int{"sadness": 2, "joy": 1},
			total:  3,
		},
		{
			name:   "Affixed forms resolve through the lexicon",
			text:   "الحزن والخوف بفرح",
			counts: map[string]int{"sadness": 1, "fear": 1, "joy": 1},
			total:  3,
		},
		{
			name:   "Diacritics do not block matching",
			text:   "حُزْن",
			counts: map[string]int{"sadness": 1},
			total:  1,
		},
		{
			name:   "Override beats lexicon inside a sentence",
			text:   "انا تعبان جدا",
			counts: map[string]int{"tired": 1},
			total:  1,
		},
		{
			name:   "No matches",
			text:   "طاولة وكرسي",
			counts: map[string]int{},
			total:  0,
		},
		{
			name:   "Empty text",
			text:   "   ",
			counts: map[string]int{},
			total:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := analyzer.AnalyzeText(tt.text)
			assert.Equal(t, tt.counts, res.Counts)
			assert.Equal(t, tt.total, res.TotalMatches)
		})
	}
}

func TestAnalyzeTextOrderIndependent(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	a := analyzer.AnalyzeText("حزن فرح خوف حزن")
	b := analyzer.AnalyzeText("خوف حزن حزن فرح")

	assert.Equal(t, a.Counts, b.Counts)
	assert.Equal(t, a.TotalMatches, b.TotalMatches)
}

func TestAnalyzeTextUnavailableLexicon(t *testing.T) {
	analyzer := newUnavailableAnalyzer(t)

	res := analyzer.AnalyzeText("حزن فرح")
	assert.Empty(t, res.Counts)
	assert.Zero(t, res.TotalMatches)
}

func TestMoodScores(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	tests := []struct {
		name         string
		counts       map[string]int
		explicitMood string
		scores       map[models.MoodCategory]int
		weight       int
	}{
		{
			name:   "Counts fold into mood categories",
			counts: map[string]int{"sadness": 2, "grief": 1, "joy": 1},
			scores: map[models.MoodCategory]int{models.MoodSad: 3, models.MoodHappy: 1},
			weight: 4,
		},
		{
			name:   "Unmapped emotion keys are dropped",
			counts: map[string]int{"sadness": 1, "boredom": 5},
			scores: map[models.MoodCategory]int{models.MoodSad: 1},
			weight: 1,
		},
		{
			name:         "Explicit mood adds its weight on top",
			counts:       map[string]int{"sadness": 2},
			explicitMood: "سعيد",
			scores:       map[models.MoodCategory]int{models.MoodSad: 2, models.MoodHappy: 3},
			weight:       5,
		},
		{
			name:         "Explicit mood can flip the dominant mood",
			counts:       map[string]int{"sadness": 2},
			explicitMood: "حزين",
			scores:       map[models.MoodCategory]int{models.MoodSad: 5},
			weight:       5,
		},
		{
			name:         "Prefixed explicit label is cleaned",
			counts:       map[string]int{},
			explicitMood: "emoji: متعب",
			scores:       map[models.MoodCategory]int{models.MoodTired: 3},
			weight:       3,
		},
		{
			name:         "Unknown explicit label carries no weight",
			counts:       map[string]int{},
			explicitMood: "شيء آخر",
			scores:       map[models.MoodCategory]int{},
			weight:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := analyzer.MoodScores(tt.counts, tt.explicitMood)
			assert.Equal(t, tt.scores, score.Scores)
			assert.Equal(t, tt.weight, score.Weight)
		})
	}
}

func TestDominantMood(t *testing.T) {
	tests := []struct {
		name     string
		scores   map[models.MoodCategory]int
		expected models.MoodCategory
	}{
		{
			name:     "Strict maximum wins",
			scores:   map[models.MoodCategory]int{models.MoodSad: 3, models.MoodHappy: 1},
			expected: models.MoodSad,
		},
		{
			name:     "Tie keeps the earlier canonical category",
			scores:   map[models.MoodCategory]int{models.MoodSad: 2, models.MoodHappy: 2},
			expected: models.MoodHappy,
		},
		{
			name:     "A zero score still beats the sentinel",
			scores:   map[models.MoodCategory]int{models.MoodTired: 0},
			expected: models.MoodTired,
		},
		{
			name:     "Empty scores are undetermined",
			scores:   map[models.MoodCategory]int{},
			expected: models.MoodUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DominantMood(tt.scores))
		})
	}
}

func TestDominantMoodTieBreakIsReproducible(t *testing.T) {
	scores := map[models.MoodCategory]int{
		models.MoodAnxious: 4,
		models.MoodCalm:    4,
	}
	for i := 0; i < 100; i++ {
		assert.Equal(t, models.MoodCalm, DominantMood(scores))
	}
}

func TestComputeDominantMood(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	tests := []struct {
		name         string
		text         string
		explicitMood string
		expected     models.MoodCategory
	}{
		{
			name:     "Lexicon hits decide the mood",
			text:     "اليوم حزن وحزن وفرح",
			expected: models.MoodSad,
		},
		{
			name:     "Lexicon hit suppresses fallback keywords elsewhere in the text",
			text:     "انا مبتهج رغم كل القهر",
			expected: models.MoodHappy,
		},
		{
			name:     "Fallback engages only with zero lexicon matches",
			text:     "اشعر اني معصب من كل شي",
			expected: models.MoodAngry,
		},
		{
			name:     "No signal at all is undetermined",
			text:     "طاولة وكرسي وباب",
			expected: models.MoodUnknown,
		},
		{
			name:         "Explicit mood outweighs a single lexicon hit",
			text:         "فيه فرح بسيط",
			explicitMood: "متعب",
			expected:     models.MoodTired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, analyzer.ComputeDominantMood(tt.text, tt.explicitMood))
		})
	}
}

func TestComputeDominantMoodFallbackOnlyMode(t *testing.T) {
	analyzer := newUnavailableAnalyzer(t)

	// With the lexicon unavailable the fallback rules are the sole detector.
	assert.Equal(t, models.MoodTired, analyzer.ComputeDominantMood("انا مرهق اليوم", ""))
	assert.Equal(t, models.MoodUnknown, analyzer.ComputeDominantMood("كلام عادي تماما", ""))
}

func TestFallbackMoodDiacriticInsensitive(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected models.MoodCategory
	}{
		{
			name:     "Diacritized keyword still matches",
			text:     "انا حَزِين جدا",
			expected: models.MoodSad,
		},
		{
			name:     "Tanween on a keyword still matches",
			text:     "كان يوما جميلًا",
			expected: models.MoodHappy,
		},
		{
			name:     "Letter variant of a keyword still matches",
			text:     "اشعر اني هادىء",
			expected: models.MoodCalm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FallbackMood(tt.text))
		})
	}
}

func TestFallbackMoodOrder(t *testing.T) {
	// "سعيد" is declared before "حزين": a text matching both resolves to the
	// first declared category.
	assert.Equal(t, models.MoodHappy, FallbackMood("sometimes سعيد sometimes حزين"))
	assert.Equal(t, models.MoodCalm, FallbackMood("الحمدلله"))
	assert.Equal(t, models.MoodUnknown, FallbackMood("لا شيء هنا"))
}

func TestCleanMoodLabel(t *testing.T) {
	assert.Equal(t, "متعب", CleanMoodLabel("emoji: متعب"))
	assert.Equal(t, "سعيد", CleanMoodLabel("سعيد"))
	assert.Equal(t, "", CleanMoodLabel("  "))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "لم تُرصد كلمات مزاجية واضحة.", Summary(nil, 0))

	got := Summary(map[string]int{"sadness": 3, "joy": 1}, 4)
	assert.Contains(t, got, "حزين (3)")
	assert.Contains(t, got, "سعيد (1)")
}

func TestMoodForKey(t *testing.T) {
	assert.Equal(t, models.MoodAnxious, MoodForKey("anticipation"))
	assert.Equal(t, models.MoodCalm, MoodForKey("surprise"))
	assert.Equal(t, models.MoodTired, MoodForKey("تعبان"))
	assert.Equal(t, models.MoodUnknown, MoodForKey("boredom"))
}
