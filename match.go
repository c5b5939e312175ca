package morfa

import (
	"context"
	"strings"
)

// DefaultMinConfidence is the gate a disambiguation decision must pass
// before a case predicate may match on it.
const DefaultMinConfidence = 0.6

// Match is one practice item found in the analyzed text. It has no
// identity beyond the response it belongs to.
type Match struct {
	Original   string  `json:"original" yaml:"original"`
	Display    string  `json:"display,omitempty" yaml:"display,omitempty"`
	Position   int     `json:"position" yaml:"position"`
	Length     int     `json:"length" yaml:"length"`
	Feature    string  `json:"feature" yaml:"feature"`
	Confidence float64 `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	Sentence   string  `json:"sentence,omitempty" yaml:"sentence,omitempty"`
}

// Analyzer matches a catalog's constructs against tagged tokens. It
// holds no mutable state; one Analyzer may serve any number of
// concurrent calls.
type Analyzer struct {
	Catalog *Catalog
	Morph   Morphology

	// MinConfidence overrides DefaultMinConfidence when positive.
	MinConfidence float64
}

type caseReading struct {
	value      string
	confidence float64
}

// Analyze runs a single left-to-right pass over the first output's
// tokens and returns every occurrence of a requested construct.
// Requested identifiers the catalog does not know are ignored. With
// more than one output, case predicates are evaluated against the
// disambiguated decision for the token, and only when its confidence
// passes the gate. A successful multi-token match consumes its whole
// span: the tokens inside it are not offered to other constructs.
func (a *Analyzer) Analyze(ctx context.Context, outputs []TaggerOutput, requested []string) []Match {
	if len(outputs) == 0 || len(outputs[0].Tokens) == 0 {
		return nil
	}

	wanted := make(map[string]bool, len(requested))
	for _, id := range requested {
		wanted[id] = true
	}

	tokens := outputs[0].Tokens
	readings := make(map[int]caseReading, len(tokens))
	res := make([]Match, 0, 8)

	i := 0
	for i < len(tokens) {
		if !tokens[i].HasLetter() {
			i += 1
			continue
		}

		advance := 1
		for ci := range a.Catalog.Constructs {
			construct := &a.Catalog.Constructs[ci]
			if !wanted[construct.ID] {
				continue
			}

			consumed := a.tryMatch(ctx, construct, outputs, i, readings, &res)
			if consumed > 0 {
				advance = consumed
				break
			}
		}

		i += advance
	}

	return res
}

// tryMatch evaluates one construct anchored at index i. It returns the
// number of tokens consumed, or 0 if any predicate fails. There is no
// partial credit: the full lookahead sequence must be in bounds and
// hold.
func (a *Analyzer) tryMatch(ctx context.Context, construct *Construct, outputs []TaggerOutput, i int, readings map[int]caseReading, res *[]Match) int {
	tokens := outputs[0].Tokens

	if !a.predicateHolds(&construct.Anchor, outputs, i, readings) {
		return 0
	}
	for k := range construct.Steps {
		j := i + k + 1
		if j >= len(tokens) {
			return 0
		}
		if !a.predicateHolds(&construct.Steps[k], outputs, j, readings) {
			return 0
		}
	}

	reports := construct.Reports
	if len(reports) == 0 {
		reports = []Report{{Step: 0}}
	}

	for _, report := range reports {
		token := &tokens[i+report.Step]
		feature := report.Feature
		if feature == "" {
			feature = construct.ID
		}

		*res = append(*res, Match{
			Original:   token.Text,
			Display:    a.displayForm(ctx, token, report.Display),
			Position:   token.Offset,
			Length:     token.Length,
			Feature:    feature,
			Confidence: readings[i+report.Step].confidence,
			Sentence:   token.Sentence,
		})
	}

	return 1 + len(construct.Steps)
}

func (a *Analyzer) predicateHolds(p *TokenPredicate, outputs []TaggerOutput, i int, readings map[int]caseReading) bool {
	token := &outputs[0].Tokens[i]

	if len(p.PoS) > 0 && !inList(p.PoS, token.PoS) {
		return false
	}
	for name, value := range p.Feats {
		if token.Feat(name) != value {
			return false
		}
	}
	if len(p.Lemma) > 0 && !inList(p.Lemma, strings.ToLower(token.Lemma)) {
		return false
	}
	if len(p.Text) > 0 && !inList(p.Text, strings.ToLower(token.Text)) {
		return false
	}
	if len(p.TextPrefix) > 0 {
		found := false
		for _, prefix := range p.TextPrefix {
			if strings.HasPrefix(token.Text, prefix) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if p.Case != "" && a.caseFor(outputs, i, readings).value != p.Case {
		return false
	}

	if len(p.AnyOf) > 0 {
		found := false
		for k := range p.AnyOf {
			if a.predicateHolds(&p.AnyOf[k], outputs, i, readings) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// caseFor resolves the canonical case of token i, disambiguating across
// outputs when more than one tagger was run. Each token is decided at
// most once per analysis.
func (a *Analyzer) caseFor(outputs []TaggerOutput, i int, readings map[int]caseReading) caseReading {
	if reading, ok := readings[i]; ok {
		return reading
	}

	token := &outputs[0].Tokens[i]
	reading := caseReading{}

	if len(outputs) == 1 {
		reading.value = a.Catalog.CanonicalCase(token.Feat("Case"))
	} else {
		decision := Decide(a.gatherOpinions(outputs, token), a.Catalog)

		minConfidence := a.MinConfidence
		if minConfidence <= 0 {
			minConfidence = DefaultMinConfidence
		}

		if decision != nil && decision.Confidence >= minConfidence {
			reading.value = decision.Value
			reading.confidence = decision.Confidence
		}
	}

	readings[i] = reading
	return reading
}

// gatherOpinions collects one raw case opinion per tagger for the given
// token. Secondary outputs are aligned by identical surface text at the
// nearest offset; a tagger without a matching token, or without a case
// tag on it, abstains.
func (a *Analyzer) gatherOpinions(outputs []TaggerOutput, token *Token) []Opinion {
	opinions := make([]Opinion, 0, len(outputs))

	for oi := range outputs {
		other := token
		if oi > 0 {
			other = findAligned(outputs[oi].Tokens, token)
			if other == nil {
				continue
			}
		}

		raw := other.Feat("Case")
		if raw == "" {
			continue
		}

		opinions = append(opinions, Opinion{
			Tagger: outputs[oi].Tagger,
			Value:  raw,
			Role:   other.DepRel,
		})
	}

	return opinions
}

func findAligned(tokens []Token, token *Token) *Token {
	var best *Token
	bestDistance := 0

	for i := range tokens {
		if tokens[i].Text != token.Text {
			continue
		}

		distance := tokens[i].Offset - token.Offset
		if distance < 0 {
			distance = -distance
		}
		if best == nil || distance < bestDistance {
			best = &tokens[i]
			bestDistance = distance
		}
	}

	return best
}

// displayForm picks the canonical form shown to the learner. Lookup
// failures are not errors: the fallback chain ends at the surface text.
func (a *Analyzer) displayForm(ctx context.Context, token *Token, display string) string {
	if display != "" && display != "lemma" {
		if a.Morph != nil {
			if form, err := a.Morph.Inflect(ctx, token.Text, display); err == nil && form != "" {
				return form
			}
		}
		if token.Lemma != "" {
			return token.Lemma
		}

		return token.Text
	}

	if token.Lemma != "" {
		return token.Lemma
	}
	if a.Morph != nil {
		if lemma, err := a.Morph.Lemmatize(ctx, token.Text); err == nil && lemma != "" {
			return lemma
		}
	}

	return token.Text
}

func inList(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}

	return false
}
