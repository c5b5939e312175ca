// Package lexdict is an embedded lexical analyzer: a Tagger and
// Morphology backed by a word-form lexicon instead of a remote model.
// It is the second opinion source for case disambiguation and supplies
// dictionary (normal) forms for display.
package lexdict

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"unicode"

	"github.com/gveselov/morfa"
	"gopkg.in/yaml.v3"
)

// DefaultMinScore is the analyzer's own confidence floor: a parse
// scoring below it is treated as an abstention, not an opinion.
const DefaultMinScore = 0.7

var ErrWordNotFound = errors.New("word not found in lexicon")

// Entry is one analysis of a word form. Feats hold the analyzer's own
// abbreviations (e.g. "accs"); the catalog's alias table normalizes
// them before voting.
type Entry struct {
	Lemma string            `json:"lemma" yaml:"lemma"`
	PoS   string            `json:"pos" yaml:"pos"`
	Feats map[string]string `json:"feats,omitempty" yaml:"feats,omitempty"`
	Score float64           `json:"score" yaml:"score"`
}

// Lexicon maps lowercased word forms to their analyses, best first.
type Lexicon struct {
	Language string             `json:"language" yaml:"language"`
	Entries  map[string][]Entry `json:"entries" yaml:"entries"`
}

// LoadLexicon reads a lexicon from a YAML source file or its compiled
// JSON form, picked by extension.
func LoadLexicon(filePath string) (*Lexicon, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	lexicon := Lexicon{}
	switch path.Ext(filePath) {
	case ".json":
		err = json.NewDecoder(file).Decode(&lexicon)
	default:
		err = yaml.NewDecoder(file).Decode(&lexicon)
	}
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", filePath, err)
	}

	return &lexicon, nil
}

type Dictionary struct {
	name     string
	minScore float64
	lexicon  *Lexicon
}

// New wraps a lexicon. minScore <= 0 selects DefaultMinScore.
func New(name string, lexicon *Lexicon, minScore float64) *Dictionary {
	if minScore <= 0 {
		minScore = DefaultMinScore
	}

	return &Dictionary{name: name, minScore: minScore, lexicon: lexicon}
}

// Open loads the lexicon at path and wraps it with the default floor.
func Open(filePath, name string) (*Dictionary, error) {
	lexicon, err := LoadLexicon(filePath)
	if err != nil {
		return nil, err
	}

	return New(name, lexicon, 0), nil
}

func (d *Dictionary) Name() string {
	return d.name
}

// Tag scans the text for words and annotates the ones the lexicon
// knows. A word that is missing, or whose best parse scores below the
// floor, is emitted bare so it reads as an abstention downstream.
func (d *Dictionary) Tag(ctx context.Context, text string) ([]morfa.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := make([]morfa.Token, 0, 16)
	runes := []rune(text)

	i := 0
	for i < len(runes) {
		if !unicode.IsLetter(runes[i]) {
			i += 1
			continue
		}

		start := i
		for i < len(runes) && unicode.IsLetter(runes[i]) {
			i += 1
		}

		word := string(runes[start:i])
		token := morfa.Token{
			Text:   word,
			Offset: start,
			Length: i - start,
		}

		if entry := d.best(word); entry != nil && entry.Score >= d.minScore {
			token.Lemma = entry.Lemma
			token.PoS = entry.PoS
			token.Feats = entry.Feats
			token.Score = entry.Score
		}

		res = append(res, token)
	}

	return res, nil
}

// Lemmatize returns the dictionary form of the word's best parse.
func (d *Dictionary) Lemmatize(_ context.Context, word string) (string, error) {
	if entry := d.best(word); entry != nil {
		return entry.Lemma, nil
	}

	return "", fmt.Errorf("%w: %s", ErrWordNotFound, word)
}

// Inflect returns the normal form for any target: for this analyzer
// the dictionary form is the nominative singular (or infinitive),
// which is what the practice display needs.
func (d *Dictionary) Inflect(ctx context.Context, word string, _ string) (string, error) {
	return d.Lemmatize(ctx, word)
}

func (d *Dictionary) best(word string) *Entry {
	entries := d.lexicon.Entries[strings.ToLower(word)]
	if len(entries) == 0 {
		return nil
	}

	best := &entries[0]
	for i := range entries[1:] {
		if entries[i+1].Score > best.Score {
			best = &entries[i+1]
		}
	}

	return best
}
