package lexicon

const (
	definiteArticle = "ال"
	prefixWaw       = "و"
	prefixFaa       = "ف"
	prefixBaa       = "ب"
)

// Resolve maps a normalized token to its lexicon entry. The override table is
// consulted first, then the lexicon verbatim, then a fixed chain of Arabic
// prefix strips against the lexicon only: the definite article, a
// conjunction (optionally followed by the article when the token is long
// enough), and the preposition baa. Each step runs only if the previous one
// missed. This is a heuristic, not morphological analysis.
func (s *Store) Resolve(token string) (Entry, bool) {
	if token == "" {
		return Entry{}, false
	}
	if e, ok := Override(token); ok {
		return e, true
	}
	if e, ok := s.Lookup(token); ok {
		return e, true
	}

	runes := []rune(token)

	if hasRunePrefix(runes, definiteArticle) {
		if e, ok := s.Lookup(string(runes[2:])); ok {
			return e, true
		}
	}
	if hasRunePrefix(runes, prefixWaw) || hasRunePrefix(runes, prefixFaa) {
		if e, ok := s.Lookup(string(runes[1:])); ok {
			return e, true
		}
		if len(runes) > 3 && hasRunePrefix(runes[1:], definiteArticle) {
			if e, ok := s.Lookup(string(runes[3:])); ok {
				return e, true
			}
		}
	}
	if hasRunePrefix(runes, prefixBaa) {
		if e, ok := s.Lookup(string(runes[1:])); ok {
			return e, true
		}
	}

	return Entry{}, false
}

func hasRunePrefix(runes []rune, prefix string) bool {
	p := []rune(prefix)
	if len(runes) < len(p) {
		return false
	}
	for i, r := range p {
		if runes[i] != r {
			return false
		}
	}
	return true
}
