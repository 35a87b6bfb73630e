package analysis

import "github.com/raghadd22/anah-mood-service/internal/models"

// moodTableVersion identifies the canonical emotion-to-mood synonym table.
// Earlier revisions of the application carried two slightly divergent copies
// of this table; v2 is the single merged one (anticipation folds into
// anxious, surprise into calm).
const moodTableVersion = 2

// emotionMoods folds fine-grained lexicon emotion keys into the six
// user-facing mood categories. Keys absent here carry no mood weight at all.
// The Arabic rows let an explicit user-chosen label round-trip through the
// same table.
var emotionMoods = map[string]models.MoodCategory{
	"happy":     models.MoodHappy,
	"joy":       models.MoodHappy,
	"happiness": models.MoodHappy,

	"angry":   models.MoodAngry,
	"anger":   models.MoodAngry,
	"disgust": models.MoodAngry,

	"sad":     models.MoodSad,
	"sadness": models.MoodSad,
	"grief":   models.MoodSad,

	"fear":         models.MoodAnxious,
	"worried":      models.MoodAnxious,
	"worry":        models.MoodAnxious,
	"worries":      models.MoodAnxious,
	"anxiety":      models.MoodAnxious,
	"anxious":      models.MoodAnxious,
	"stress":       models.MoodAnxious,
	"stressed":     models.MoodAnxious,
	"anticipation": models.MoodAnxious,

	"tired":      models.MoodTired,
	"fatigue":    models.MoodTired,
	"fatigued":   models.MoodTired,
	"exhaustion": models.MoodTired,
	"exhausted":  models.MoodTired,

	"ok":       models.MoodCalm,
	"calm":     models.MoodCalm,
	"surprise": models.MoodCalm,

	"سعيد":   models.MoodHappy,
	"رائع":   models.MoodHappy,
	"غاضب":   models.MoodAngry,
	"سيئ":    models.MoodAngry,
	"حزين":   models.MoodSad,
	"قلق":    models.MoodAnxious,
	"متعب":   models.MoodTired,
	"تعبان":  models.MoodTired,
	"هادئ":   models.MoodCalm,
	"لا بأس": models.MoodCalm,
	"عادي":   models.MoodCalm,
}

// MoodForKey maps an emotion key or raw mood label to its category,
// MoodUnknown when unmapped.
func MoodForKey(key string) models.MoodCategory {
	if m, ok := emotionMoods[key]; ok {
		return m
	}
	return models.MoodUnknown
}
