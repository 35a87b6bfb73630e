package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveOverridePrecedence(t *testing.T) {
	// The base lexicon deliberately disagrees with the override table here;
	// the override must win regardless.
	store := newTestStore(t, `{"متعب":{"emotion":"anger"},"تعبان":{"emotion":"sadness"}}`)

	for _, word := range []string{"متعب", "تعبان"} {
		entry, ok := store.Resolve(word)
		assert.True(t, ok)
		assert.Equal(t, "tired", entry.Emotion, "override must shadow the lexicon for %s", word)
	}
}

func TestResolveAffixStripping(t *testing.T) {
	store := newTestStore(t, `{"نص":{"emotion":"ok"},"حزن":{"emotion":"sadness"},"فرح":{"emotion":"joy"}}`)

	tests := []struct {
		name    string
		token   string
		emotion string
		found   bool
	}{
		{
			name:    "Exact match needs no stripping",
			token:   "حزن",
			emotion: "sadness",
			found:   true,
		},
		{
			name:    "Definite article stripped",
			token:   "النص",
			emotion: "ok",
			found:   true,
		},
		{
			name:    "Conjunction waw stripped",
			token:   "وحزن",
			emotion: "sadness",
			found:   true,
		},
		{
			name:    "Conjunction faa stripped",
			token:   "ففرح",
			emotion: "joy",
			found:   true,
		},
		{
			name:    "Waw plus article stripped together",
			token:   "والحزن",
			emotion: "sadness",
			found:   true,
		},
		{
			name:    "Preposition baa stripped",
			token:   "بفرح",
			emotion: "joy",
			found:   true,
		},
		{
			name:  "Unknown word misses",
			token: "طاولة",
			found: false,
		},
		{
			name:  "Empty token misses",
			token: "",
			found: false,
		},
		{
			name:  "Short waw-article token is not double stripped",
			token: "وال",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := store.Resolve(tt.token)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.emotion, entry.Emotion)
			}
		})
	}
}

func TestResolveUnavailableStoreStillHonorsOverrides(t *testing.T) {
	store := NewStore("", "missing.json")

	// Overrides are static and need no load.
	entry, ok := store.Resolve("تعبان")
	assert.True(t, ok)
	assert.Equal(t, "tired", entry.Emotion)

	_, ok = store.Resolve("حزن")
	assert.False(t, ok)
}
