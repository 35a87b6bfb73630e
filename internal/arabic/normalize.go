// Package arabic provides the text canonicalization used by the lexicon
// matcher. Two normalization modes exist with different strictness: the
// full-text mode unifies letter variants before scanning, while the per-token
// mode only strips diacritics and non-Arabic characters. The asymmetry is
// load-bearing: lexicon keys are stored in per-token form.
package arabic

import (
	"strings"
	"unicode"
)

// Arabic combining marks (harakat, tanween, shadda, sukun and friends).
const (
	diacriticLo = 0x064B
	diacriticHi = 0x065F
)

var letterUnifier = strings.NewReplacer(
	"إ", "ا",
	"أ", "ا",
	"آ", "ا",
	"ى", "ي",
	"ؤ", "و",
	"ئ", "ي",
	"ة", "ه",
)

func isDiacritic(r rune) bool {
	return r >= diacriticLo && r <= diacriticHi
}

// NormalizeText canonicalizes a full text for lexicon scanning: alef variants
// collapse to bare alef, alef-maksura to yaa, hamza carriers to their base
// letter, taa-marbuta to haa; diacritics are dropped and every character
// outside letter/digit/underscore/whitespace becomes a space. Idempotent.
func NormalizeText(text string) string {
	unified := letterUnifier.Replace(text)
	var b strings.Builder
	b.Grow(len(unified))
	for _, r := range unified {
		switch {
		case isDiacritic(r):
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// NormalizeToken cleans a single token for lexicon lookup: diacritics and any
// character outside the Arabic block are removed. Letter variants are kept
// as written. Idempotent.
func NormalizeToken(tok string) string {
	var b strings.Builder
	b.Grow(len(tok))
	for _, r := range tok {
		if isDiacritic(r) {
			continue
		}
		if r >= 0x0600 && r <= 0x06FF {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Tokenize splits text on whitespace after stripping diacritics, dropping
// empty tokens.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if !isDiacritic(r) {
			b.WriteRune(r)
		}
	}
	return strings.Fields(b.String())
}

// WordCount counts whitespace-separated words in raw text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
