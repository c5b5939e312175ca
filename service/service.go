package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gveselov/morfa"
)

// Language bundles everything one language needs: its construct
// catalog, its taggers in priority order, an optional morphology
// collaborator for display forms, and the confidence gate for
// disambiguated matches.
type Language struct {
	Catalog       *morfa.Catalog
	Taggers       []morfa.Tagger
	Morph         morfa.Morphology
	MinConfidence float64
}

// Service dispatches analysis requests to the configured languages.
// The registry is built once and read-only afterwards; a single Service
// serves any number of concurrent requests without locking.
type Service struct {
	languages map[string]*Language
}

// New validates every catalog and builds the registry. A malformed
// catalog is fatal here, so analysis never sees one.
func New(languages map[string]*Language) (*Service, error) {
	for name, language := range languages {
		if len(language.Taggers) == 0 {
			return nil, fmt.Errorf("language %s has no taggers", name)
		}
		if err := language.Catalog.Validate(); err != nil {
			return nil, err
		}
	}

	return &Service{languages: languages}, nil
}

// AnalysisResult is the outcome of one analysis call. The ID has no
// meaning beyond correlating a response with client-side state.
type AnalysisResult struct {
	ID    string        `json:"id"`
	Text  string        `json:"text"`
	Words []morfa.Match `json:"words"`
}

// Analyze runs every configured tagger on the text and matches the
// requested features. A tagger failure fails the whole request; there
// is no partial degradation.
func (s *Service) Analyze(ctx context.Context, languageName, text string, features []string) (*AnalysisResult, error) {
	language, ok := s.languages[languageName]
	if !ok {
		return nil, morfa.ErrLanguageNotSupported
	}

	outputs := make([]morfa.TaggerOutput, 0, len(language.Taggers))
	for _, tagger := range language.Taggers {
		start := time.Now()
		tokens, err := tagger.Tag(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("tagger %s: %w", tagger.Name(), err)
		}
		log.Printf("Tagger %s produced %d tokens in %s", tagger.Name(), len(tokens), time.Since(start))

		outputs = append(outputs, morfa.TaggerOutput{Tagger: tagger.Name(), Tokens: tokens})
	}

	analyzer := morfa.Analyzer{
		Catalog:       language.Catalog,
		Morph:         language.Morph,
		MinConfidence: language.MinConfidence,
	}

	id := uuid.New()
	return &AnalysisResult{
		ID:    base64.RawURLEncoding.EncodeToString(id[:]),
		Text:  text,
		Words: analyzer.Analyze(ctx, outputs, features),
	}, nil
}

// CheckAnswer compares a learner's answer against the expected form
// under the language's normalization rules.
func (s *Service) CheckAnswer(languageName, original, answer, feature string) (morfa.CheckResult, error) {
	language, ok := s.languages[languageName]
	if !ok {
		return morfa.CheckResult{}, morfa.ErrLanguageNotSupported
	}

	return language.Catalog.CheckAnswer(original, answer, feature), nil
}

// Features lists the construct identifiers available for a language.
func (s *Service) Features(languageName string) ([]string, error) {
	language, ok := s.languages[languageName]
	if !ok {
		return nil, morfa.ErrLanguageNotSupported
	}

	return language.Catalog.Features(), nil
}

// Languages lists the configured language names.
func (s *Service) Languages() []string {
	res := make([]string, 0, len(s.languages))
	for name := range s.languages {
		res = append(res, name)
	}

	return res
}
