package morfa

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var tokenYa = Token{Text: "Я", Offset: 0, Length: 1, PoS: "PRON", Lemma: "я", DepRel: "nsubj", Feats: map[string]string{"Case": "Nom"}, Sentence: "Я читаю книгу."}
var tokenChitayu = Token{Text: "читаю", Offset: 2, Length: 5, PoS: "VERB", Lemma: "читать", Sentence: "Я читаю книгу."}
var tokenKnigu = Token{Text: "книгу", Offset: 8, Length: 5, PoS: "NOUN", Lemma: "книга", DepRel: "obj", Feats: map[string]string{"Case": "Acc"}, Sentence: "Я читаю книгу."}
var tokenDot = Token{Text: ".", Offset: 13, Length: 1, PoS: "PUNCT", Sentence: "Я читаю книгу."}

var russianSentence = TaggerOutput{
	Tagger: "udpipe",
	Tokens: []Token{tokenYa, tokenChitayu, tokenKnigu, tokenDot},
}

// testMorph serves canned inflections and fails everything else.
type testMorph struct {
	forms  map[string]string
	lemmas map[string]string
}

func (m *testMorph) Lemmatize(_ context.Context, word string) (string, error) {
	if lemma, ok := m.lemmas[word]; ok {
		return lemma, nil
	}

	return "", errors.New("not in test morph")
}

func (m *testMorph) Inflect(_ context.Context, word, target string) (string, error) {
	if form, ok := m.forms[word+":"+target]; ok {
		return form, nil
	}

	return "", errors.New("not in test morph")
}

func TestAnalyzerSingleTagger(t *testing.T) {
	analyzer := Analyzer{Catalog: Russian}

	table := []struct {
		Label     string
		Requested []string
		Expected  []Match
	}{
		{
			"One case requested",
			[]string{"accusative"},
			[]Match{
				{Original: "книгу", Display: "книга", Position: 8, Length: 5, Feature: "accusative", Sentence: "Я читаю книгу."},
			},
		},
		{
			"Two cases requested",
			[]string{"nominative", "accusative"},
			[]Match{
				{Original: "Я", Display: "я", Position: 0, Length: 1, Feature: "nominative", Sentence: "Я читаю книгу."},
				{Original: "книгу", Display: "книга", Position: 8, Length: 5, Feature: "accusative", Sentence: "Я читаю книгу."},
			},
		},
		{
			"Unknown identifiers are ignored",
			[]string{"accusative", "partitive", "vocative"},
			[]Match{
				{Original: "книгу", Display: "книга", Position: 8, Length: 5, Feature: "accusative", Sentence: "Я читаю книгу."},
			},
		},
		{
			"Nothing requested",
			[]string{},
			[]Match{},
		},
		{
			"No case requested occurs in the text",
			[]string{"instrumental"},
			[]Match{},
		},
	}

	for _, row := range table {
		t.Run(row.Label, func(t *testing.T) {
			assert.Equal(t, row.Expected, analyzer.Analyze(context.Background(), []TaggerOutput{russianSentence}, row.Requested))
		})
	}
}

func TestAnalyzerIsIdempotent(t *testing.T) {
	analyzer := Analyzer{Catalog: Russian}
	outputs := []TaggerOutput{russianSentence}

	first := analyzer.Analyze(context.Background(), outputs, []string{"nominative", "accusative"})
	second := analyzer.Analyze(context.Background(), outputs, []string{"nominative", "accusative"})

	assert.Equal(t, first, second)
}

func TestAnalyzerEmptyInput(t *testing.T) {
	analyzer := Analyzer{Catalog: Russian}

	assert.Nil(t, analyzer.Analyze(context.Background(), nil, []string{"accusative"}))
	assert.Nil(t, analyzer.Analyze(context.Background(), []TaggerOutput{{Tagger: "udpipe"}}, []string{"accusative"}))
}

func TestAnalyzerUsesMorphForDisplay(t *testing.T) {
	analyzer := Analyzer{Catalog: Russian, Morph: &testMorph{
		forms: map[string]string{"книгу:nominative": "книга (n.)"},
	}}

	res := analyzer.Analyze(context.Background(), []TaggerOutput{russianSentence}, []string{"accusative"})
	if assert.Len(t, res, 1) {
		assert.Equal(t, "книга (n.)", res[0].Display)
	}
}

func TestAnalyzerDisambiguatesAcrossTaggers(t *testing.T) {
	agreeing := []TaggerOutput{
		russianSentence,
		{
			Tagger: "lexicon",
			Tokens: []Token{
				{Text: "Я", Offset: 0, Length: 1, Feats: map[string]string{"Case": "nomn"}},
				{Text: "книгу", Offset: 8, Length: 5, Lemma: "книга", Feats: map[string]string{"Case": "accs"}},
			},
		},
	}

	res := (&Analyzer{Catalog: Russian}).Analyze(context.Background(), agreeing, []string{"accusative"})
	if assert.Len(t, res, 1) {
		assert.Equal(t, "книгу", res[0].Original)
		assert.Equal(t, 1.0, res[0].Confidence)
	}
}

func TestAnalyzerConfidenceGate(t *testing.T) {
	split := []TaggerOutput{
		russianSentence,
		{
			Tagger: "lexicon",
			Tokens: []Token{{Text: "книгу", Offset: 8, Length: 5, Feats: map[string]string{"Case": "datv"}}},
		},
		{
			Tagger: "treebank",
			Tokens: []Token{{Text: "книгу", Offset: 8, Length: 5, Feats: map[string]string{"Case": "Gen"}}},
		},
	}

	// A three-way split resolves at 1/3 confidence, below the gate, so
	// the token must not be offered for practice at all.
	res := (&Analyzer{Catalog: Russian}).Analyze(context.Background(), split, []string{"nominative", "genitive", "dative", "accusative"})
	for _, match := range res {
		assert.NotEqual(t, "книгу", match.Original)
	}
}

func TestAnalyzerSpanishPeriphrases(t *testing.T) {
	analyzer := Analyzer{Catalog: Spanish}

	outputs := []TaggerOutput{{
		Tagger: "udpipe",
		Tokens: []Token{
			{Text: "Estoy", Offset: 0, Length: 5, PoS: "AUX", Lemma: "estar", Feats: map[string]string{"Tense": "Pres", "Mood": "Ind", "VerbForm": "Fin"}},
			{Text: "comiendo", Offset: 6, Length: 8, PoS: "VERB", Lemma: "comer", Feats: map[string]string{"VerbForm": "Ger"}},
			{Text: "y", Offset: 15, Length: 1, PoS: "CCONJ", Lemma: "y"},
			{Text: "bebo", Offset: 17, Length: 4, PoS: "VERB", Lemma: "beber", Feats: map[string]string{"Tense": "Pres", "Mood": "Ind", "VerbForm": "Fin"}},
		},
	}}

	// The auxiliary carries simple-present features, but the periphrasis
	// wins and consumes both tokens, so only the second finite verb is a
	// simple-present item.
	res := analyzer.Analyze(context.Background(), outputs, []string{"simple_present", "present_continuous"})
	assert.Equal(t, []Match{
		{Original: "comiendo", Display: "comer", Position: 6, Length: 8, Feature: "present_continuous"},
		{Original: "bebo", Display: "beber", Position: 17, Length: 4, Feature: "simple_present"},
	}, res)
}

func TestAnalyzerCompoundTenseReportsBothParts(t *testing.T) {
	analyzer := Analyzer{Catalog: Spanish}

	outputs := []TaggerOutput{{
		Tagger: "udpipe",
		Tokens: []Token{
			{Text: "He", Offset: 0, Length: 2, PoS: "AUX", Lemma: "haber", Feats: map[string]string{"Tense": "Pres", "Mood": "Ind", "VerbForm": "Fin"}},
			{Text: "comido", Offset: 3, Length: 6, PoS: "VERB", Lemma: "comer", Feats: map[string]string{"VerbForm": "Part"}},
		},
	}}

	res := analyzer.Analyze(context.Background(), outputs, []string{"present_perfect"})
	assert.Equal(t, []Match{
		{Original: "He", Display: "haber", Position: 0, Length: 2, Feature: "present_perfect_aux"},
		{Original: "comido", Display: "comer", Position: 3, Length: 6, Feature: "present_perfect_main"},
	}, res)
}

func TestAnalyzerFrenchEnTrainDe(t *testing.T) {
	analyzer := Analyzer{Catalog: French}

	outputs := []TaggerOutput{{
		Tagger: "udpipe",
		Tokens: []Token{
			{Text: "Je", Offset: 0, Length: 2, PoS: "PRON", Lemma: "je"},
			{Text: "suis", Offset: 3, Length: 4, PoS: "AUX", Lemma: "être", Feats: map[string]string{"Tense": "Pres", "Mood": "Ind", "VerbForm": "Fin"}},
			{Text: "en", Offset: 8, Length: 2, PoS: "ADP", Lemma: "en"},
			{Text: "train", Offset: 11, Length: 5, PoS: "NOUN", Lemma: "train"},
			{Text: "de", Offset: 17, Length: 2, PoS: "ADP", Lemma: "de"},
			{Text: "manger", Offset: 20, Length: 6, PoS: "VERB", Lemma: "manger", Feats: map[string]string{"VerbForm": "Inf"}},
		},
	}}

	res := analyzer.Analyze(context.Background(), outputs, []string{"present_simple", "present_continuous"})
	assert.Equal(t, []Match{
		{Original: "manger", Display: "manger", Position: 20, Length: 6, Feature: "present_continuous"},
	}, res)
}

func TestAnalyzerHebrewPresentAcceptsBothTagsets(t *testing.T) {
	analyzer := Analyzer{Catalog: Hebrew}

	outputs := []TaggerOutput{{
		Tagger: "udpipe",
		Tokens: []Token{
			{Text: "אוכל", Offset: 4, Length: 4, PoS: "VERB", Lemma: "אכל", Feats: map[string]string{"VerbForm": "Part"}},
			{Text: "כותב", Offset: 9, Length: 4, PoS: "VERB", Lemma: "כתב", Feats: map[string]string{"Tense": "Pres"}},
		},
	}}

	res := analyzer.Analyze(context.Background(), outputs, []string{"present"})
	if assert.Len(t, res, 2) {
		assert.Equal(t, "present", res[0].Feature)
		assert.Equal(t, "present", res[1].Feature)
	}
}

func TestAnalyzerArabicFutureBeatsPresent(t *testing.T) {
	analyzer := Analyzer{Catalog: Arabic}

	outputs := []TaggerOutput{{
		Tagger: "udpipe",
		Tokens: []Token{
			{Text: "سأكتب", Offset: 0, Length: 5, PoS: "VERB", Lemma: "كتب", Feats: map[string]string{"Aspect": "Imp"}},
			{Text: "يكتب", Offset: 6, Length: 4, PoS: "VERB", Lemma: "كتب", Feats: map[string]string{"Aspect": "Imp"}},
		},
	}}

	// Both verbs are imperfective; the س prefix makes the first one
	// future and must take precedence over the present construct.
	res := analyzer.Analyze(context.Background(), outputs, []string{"future", "present"})
	if assert.Len(t, res, 2) {
		assert.Equal(t, "future", res[0].Feature)
		assert.Equal(t, "present", res[1].Feature)
	}
}

func TestTokenHasLetter(t *testing.T) {
	assert.True(t, (&Token{Text: "книгу"}).HasLetter())
	assert.True(t, (&Token{Text: "l'été"}).HasLetter())
	assert.False(t, (&Token{Text: "."}).HasLetter())
	assert.False(t, (&Token{Text: "1984"}).HasLetter())
	assert.False(t, (&Token{Text: "..."}).HasLetter())
}
