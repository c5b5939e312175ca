package morfa

import (
	"fmt"
	"strings"
)

// knownFeatures are the morphological feature names a predicate may
// reference. A predicate naming anything else is a configuration error
// caught by Catalog.Validate, never at match time.
var knownFeatures = map[string]bool{
	"Animacy":  true,
	"Aspect":   true,
	"Case":     true,
	"Definite": true,
	"Degree":   true,
	"Gender":   true,
	"Mood":     true,
	"Number":   true,
	"Person":   true,
	"Polarity": true,
	"PronType": true,
	"Tense":    true,
	"VerbForm": true,
	"Voice":    true,
}

// TokenPredicate is a conjunction of requirements on a single token.
// Empty fields are not checked. AnyOf, when present, is an additional
// one-level disjunction: at least one alternative must hold.
type TokenPredicate struct {
	PoS        []string          `json:"pos,omitempty" yaml:"pos,omitempty"`
	Feats      map[string]string `json:"feats,omitempty" yaml:"feats,omitempty"`
	Lemma      []string          `json:"lemma,omitempty" yaml:"lemma,omitempty"`
	Text       []string          `json:"text,omitempty" yaml:"text,omitempty"`
	TextPrefix []string          `json:"textPrefix,omitempty" yaml:"text_prefix,omitempty"`
	AnyOf      []TokenPredicate  `json:"anyOf,omitempty" yaml:"any_of,omitempty"`

	// Case requires the token's grammatical case, after alias
	// normalization and (with several taggers) disambiguation, to equal
	// this canonical value.
	Case string `json:"case,omitempty" yaml:"case,omitempty"`
}

// Report names one token of a matched span to emit as a practice item.
type Report struct {
	// Step selects the token: 0 is the anchor, 1 the first lookahead
	// step, and so on.
	Step int `json:"step" yaml:"step"`
	// Feature overrides the construct ID on the emitted match, e.g. the
	// aux and main parts of a compound tense.
	Feature string `json:"feature,omitempty" yaml:"feature,omitempty"`
	// Display selects the canonical form: empty or "lemma" uses the
	// token's lemma, any other value is an inflection target passed to
	// the Morphology collaborator ("nominative").
	Display string `json:"display,omitempty" yaml:"display,omitempty"`
}

// Construct is one named grammatical pattern: an anchor predicate plus
// an optional fixed sequence of lookahead predicates at the following
// positions. The whole sequence must hold or the construct fails at
// this anchor.
type Construct struct {
	ID      string           `json:"id" yaml:"id"`
	Anchor  TokenPredicate   `json:"anchor" yaml:"anchor"`
	Steps   []TokenPredicate `json:"steps,omitempty" yaml:"steps,omitempty"`
	Reports []Report         `json:"reports,omitempty" yaml:"reports,omitempty"`
}

// Catalog is the per-language construct table plus the normalization
// and validation tables the disambiguator and checker need. Catalogs
// are built once at process start and shared read-only.
type Catalog struct {
	Language   string      `json:"language" yaml:"language"`
	Constructs []Construct `json:"constructs" yaml:"constructs"`

	// CaseAliases maps tagger-specific case abbreviations (lowercased)
	// to the canonical category names used in construct IDs and
	// predicate Case fields.
	CaseAliases map[string]string `json:"caseAliases,omitempty" yaml:"case_aliases,omitempty"`

	// RoleConstraints maps a dependency role to the canonical case
	// values admissible for a token filling it. An opinion outside the
	// set is discarded before voting.
	RoleConstraints map[string][]string `json:"roleConstraints,omitempty" yaml:"role_constraints,omitempty"`

	// StripDiacritics makes answer checking accent-insensitive.
	StripDiacritics bool `json:"stripDiacritics,omitempty" yaml:"strip_diacritics,omitempty"`

	CorrectMessage  string            `json:"correctMessage,omitempty" yaml:"correct_message,omitempty"`
	IncorrectFormat string            `json:"incorrectFormat,omitempty" yaml:"incorrect_format,omitempty"`
	Hints           map[string]string `json:"hints,omitempty" yaml:"hints,omitempty"`
}

// Features lists the construct identifiers in declaration order.
func (c *Catalog) Features() []string {
	res := make([]string, 0, len(c.Constructs))
	for _, construct := range c.Constructs {
		res = append(res, construct.ID)
	}

	return res
}

// CanonicalCase normalizes a raw tagger case value through the alias
// table. It returns "" for values the catalog does not know.
func (c *Catalog) CanonicalCase(raw string) string {
	if raw == "" {
		return ""
	}

	raw = strings.ToLower(raw)
	if canonical, ok := c.CaseAliases[raw]; ok {
		return canonical
	}

	return ""
}

// Validate checks the catalog once at load time. Analysis assumes a
// validated catalog and performs no checks of its own.
func (c *Catalog) Validate() error {
	if c.Language == "" {
		return &ConfigError{Language: c.Language, Message: "language must not be empty"}
	}

	canonical := make(map[string]bool, len(c.CaseAliases))
	for _, value := range c.CaseAliases {
		canonical[value] = true
	}
	for role, values := range c.RoleConstraints {
		for _, value := range values {
			if !canonical[value] {
				return &ConfigError{
					Language: c.Language,
					Field:    fmt.Sprintf("roleConstraints.%s", role),
					Message:  fmt.Sprintf("case value %q is not produced by any alias", value),
				}
			}
		}
	}

	seen := make(map[string]bool, len(c.Constructs))
	for _, construct := range c.Constructs {
		if construct.ID == "" {
			return &ConfigError{Language: c.Language, Message: "construct ID must not be empty"}
		}
		if seen[construct.ID] {
			return &ConfigError{
				Language:  c.Language,
				Construct: construct.ID,
				Message:   "duplicate construct ID",
			}
		}
		seen[construct.ID] = true

		if err := c.validatePredicate(construct.ID, "anchor", &construct.Anchor, canonical, true); err != nil {
			return err
		}
		for i := range construct.Steps {
			field := fmt.Sprintf("steps[%d]", i)
			if err := c.validatePredicate(construct.ID, field, &construct.Steps[i], canonical, true); err != nil {
				return err
			}
		}

		for i, report := range construct.Reports {
			if report.Step < 0 || report.Step > len(construct.Steps) {
				return &ConfigError{
					Language:  c.Language,
					Construct: construct.ID,
					Field:     fmt.Sprintf("reports[%d]", i),
					Message:   fmt.Sprintf("step %d is outside the matched span", report.Step),
				}
			}
		}
	}

	return nil
}

func (c *Catalog) validatePredicate(constructID, field string, p *TokenPredicate, canonical map[string]bool, allowAnyOf bool) error {
	for name := range p.Feats {
		if !knownFeatures[name] {
			return &ConfigError{
				Language:  c.Language,
				Construct: constructID,
				Field:     field,
				Message:   fmt.Sprintf("unknown feature %q in predicate", name),
			}
		}
	}

	if p.Case != "" && !canonical[p.Case] {
		return &ConfigError{
			Language:  c.Language,
			Construct: constructID,
			Field:     field,
			Message:   fmt.Sprintf("case value %q is not produced by any alias", p.Case),
		}
	}

	for i := range p.AnyOf {
		if !allowAnyOf {
			return &ConfigError{
				Language:  c.Language,
				Construct: constructID,
				Field:     field,
				Message:   "anyOf alternatives cannot nest",
			}
		}

		nested := fmt.Sprintf("%s.anyOf[%d]", field, i)
		if err := c.validatePredicate(constructID, nested, &p.AnyOf[i], canonical, false); err != nil {
			return err
		}
	}

	return nil
}
