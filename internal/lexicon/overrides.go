package lexicon

// overrides corrects known misclassifications in the base lexicon, which tags
// several common fatigue words as anger or sadness. An exact match here
// short-circuits the whole resolution chain, including affix stripping.
var overrides = map[string]Entry{
	"متعب":   {Emotion: "tired"},
	"متعبة":  {Emotion: "tired"},
	"تعبان":  {Emotion: "tired"},
	"تعبانة": {Emotion: "tired"},
}

// Override returns the hand-curated correction for a word, if any.
func Override(word string) (Entry, bool) {
	e, ok := overrides[word]
	return e, ok
}
