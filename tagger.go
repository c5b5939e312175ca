package morfa

import "context"

// Tagger is the capability interface to an external morphological
// tagger. Implementations fail with ErrTaggerUnavailable when the
// backing model or service cannot be reached, and with ErrTaggerInput
// when the text cannot be tokenized.
type Tagger interface {
	Name() string
	Tag(ctx context.Context, text string) ([]Token, error)
}

// TaggerOutput is one tagger's full reading of the analyzed text.
// When several outputs are passed to the Analyzer, their order is the
// fixed per-language priority used to break disambiguation ties.
type TaggerOutput struct {
	Tagger string  `json:"tagger"`
	Tokens []Token `json:"tokens"`
}

// Morphology is an optional collaborator that produces display forms.
// A failed lookup falls back to the input unchanged; a nil Morphology
// is valid and always falls back.
type Morphology interface {
	Lemmatize(ctx context.Context, word string) (string, error)
	Inflect(ctx context.Context, word string, target string) (string, error)
}
