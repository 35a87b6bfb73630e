package analysis

import (
	"strings"

	"github.com/raghadd22/anah-mood-service/internal/arabic"
	"github.com/raghadd22/anah-mood-service/internal/models"
)

// fallbackRule pairs a mood with the informal Arabic expressions that signal
// it. Rules are checked in declared order and the first matching category
// wins, so earlier categories shadow later ones when a text matches both.
type fallbackRule struct {
	mood     models.MoodCategory
	keywords []string
}

// fallbackRules backs up the lexicon for short, dialectal or otherwise
// unmatched text. It only engages when the lexicon scan finds nothing.
// Keywords are held in strict-normalized form so matching is insensitive to
// diacritics and letter variants.
var fallbackRules = buildFallbackRules()

func buildFallbackRules() []fallbackRule {
	rules := []fallbackRule{
		{models.MoodHappy, []string{"سعيد", "مبسوط", "فرح", "جميل", "رائع", "ممتاز"}},
		{models.MoodSad, []string{"حزين", "ضايق", "مهموم", "كئيب", "بكي"}},
		{models.MoodAngry, []string{"غاضب", "معصب", "زعلان", "قهر", "كره"}},
		{models.MoodAnxious, []string{"قلق", "خايف", "متوتر", "مرتعب"}},
		{models.MoodTired, []string{"تعبان", "مرهق", "منهك", "مجهد", "متعب"}},
		{models.MoodCalm, []string{"هادئ", "رايق", "عادي", "تمام", "الحمدلله"}},
	}
	for _, rule := range rules {
		for i, kw := range rule.keywords {
			rule.keywords[i] = arabic.NormalizeText(kw)
		}
	}
	return rules
}

// FallbackMood guesses a mood from raw text by substring matching against
// the rule table, returning MoodUnknown when nothing matches. The text goes
// through the same strict full-text normalization as the keywords, so
// diacritics and letter variants never block a match.
func FallbackMood(text string) models.MoodCategory {
	text = strings.ToLower(arabic.NormalizeText(text))
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.mood
			}
		}
	}
	return models.MoodUnknown
}
