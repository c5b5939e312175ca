package morfa

import "unicode"

// Token is one morphologically tagged token as produced by a Tagger.
// Offsets and lengths are in runes, counted from the start of the
// analyzed text. Tokens are never mutated after the tagger returns them.
type Token struct {
	Text     string            `json:"text" yaml:"text"`
	Offset   int               `json:"offset" yaml:"offset"`
	Length   int               `json:"length" yaml:"length"`
	PoS      string            `json:"pos,omitempty" yaml:"pos,omitempty"`
	Feats    map[string]string `json:"feats,omitempty" yaml:"feats,omitempty"`
	Lemma    string            `json:"lemma,omitempty" yaml:"lemma,omitempty"`
	DepRel   string            `json:"depRel,omitempty" yaml:"dep_rel,omitempty"`
	Sentence string            `json:"sentence,omitempty" yaml:"sentence,omitempty"`

	// Score is the tagger's own confidence in this analysis, if it
	// reports one. Zero means the tagger does not score its output.
	Score float64 `json:"score,omitempty" yaml:"score,omitempty"`
}

// Feat returns the value of a morphological feature, or "" if absent.
func (t *Token) Feat(name string) string {
	if t.Feats == nil {
		return ""
	}

	return t.Feats[name]
}

// HasLetter reports whether the surface text contains at least one
// alphabetic character. Tokens without one (punctuation, numerals) are
// skipped by the matcher regardless of their tags.
func (t *Token) HasLetter() bool {
	for _, r := range t.Text {
		if unicode.IsLetter(r) {
			return true
		}
	}

	return false
}
