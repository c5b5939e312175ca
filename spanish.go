package morfa

var verbalPoS = []string{"VERB", "AUX"}

// Spanish practices verb tenses and two periphrastic constructions:
// estar + gerund (only the gerund is practiced) and haber + participle
// (both parts are practiced separately). Answers are compared
// accent-insensitively, so a learner without a Spanish keyboard layout
// is not marked wrong.
var Spanish = &Catalog{
	Language:        "spanish",
	StripDiacritics: true,
	// Periphrases come first: their auxiliaries carry simple-tense
	// feature bundles, and the earlier construct wins at a shared anchor.
	Constructs: []Construct{
		{
			ID:      "present_continuous",
			Anchor:  TokenPredicate{PoS: verbalPoS, Lemma: []string{"estar"}},
			Steps:   []TokenPredicate{{Feats: map[string]string{"VerbForm": "Ger"}}},
			Reports: []Report{{Step: 1}},
		},
		{
			ID:     "present_perfect",
			Anchor: TokenPredicate{PoS: verbalPoS, Lemma: []string{"haber"}},
			Steps:  []TokenPredicate{{Feats: map[string]string{"VerbForm": "Part"}}},
			Reports: []Report{
				{Step: 0, Feature: "present_perfect_aux"},
				{Step: 1, Feature: "present_perfect_main"},
			},
		},
		{
			ID:     "simple_present",
			Anchor: TokenPredicate{PoS: verbalPoS, Feats: map[string]string{"Tense": "Pres", "Mood": "Ind", "VerbForm": "Fin"}},
		},
		{
			ID:     "imperfect",
			Anchor: TokenPredicate{PoS: verbalPoS, Feats: map[string]string{"Tense": "Imp", "Mood": "Ind"}},
		},
		{
			ID:     "preterite",
			Anchor: TokenPredicate{PoS: verbalPoS, Feats: map[string]string{"Tense": "Past", "Aspect": "Perf"}},
		},
		{
			ID:     "simple_future",
			Anchor: TokenPredicate{PoS: verbalPoS, Feats: map[string]string{"Tense": "Fut"}},
		},
		{
			ID:     "conditional",
			Anchor: TokenPredicate{PoS: verbalPoS, Feats: map[string]string{"Mood": "Cnd"}},
		},
		{
			ID:     "present_subjunctive",
			Anchor: TokenPredicate{PoS: verbalPoS, Feats: map[string]string{"Mood": "Sub", "Tense": "Pres"}},
		},
	},
	IncorrectFormat: "Incorrect. The correct form is \"%s\"",
	Hints: map[string]string{
		"present_perfect_aux":  "(conjugated form of haber)",
		"present_perfect_main": "(past participle)",
		"present_continuous":   "(gerund form)",
	},
}
