package morfa

// French mirrors the Spanish catalog with its own periphrases: être en
// train de + infinitive (the infinitive is practiced) and passé composé
// with avoir/être + participle.
var French = &Catalog{
	Language:        "french",
	StripDiacritics: true,
	// Periphrases come first, as in the Spanish catalog.
	Constructs: []Construct{
		{
			ID:     "present_continuous",
			Anchor: TokenPredicate{PoS: verbalPoS, Lemma: []string{"être"}},
			Steps: []TokenPredicate{
				{Text: []string{"en"}},
				{Text: []string{"train"}},
				{Text: []string{"de"}},
				{},
			},
			Reports: []Report{{Step: 4}},
		},
		{
			ID:     "passe_compose",
			Anchor: TokenPredicate{PoS: verbalPoS, Lemma: []string{"avoir", "être"}},
			Steps:  []TokenPredicate{{Feats: map[string]string{"VerbForm": "Part"}}},
			Reports: []Report{
				{Step: 0, Feature: "passe_compose_aux"},
				{Step: 1, Feature: "passe_compose_main"},
			},
		},
		{
			ID:     "present_simple",
			Anchor: TokenPredicate{PoS: verbalPoS, Feats: map[string]string{"Tense": "Pres", "Mood": "Ind", "VerbForm": "Fin"}},
		},
		{
			ID:     "imparfait",
			Anchor: TokenPredicate{PoS: verbalPoS, Feats: map[string]string{"Tense": "Imp", "Mood": "Ind"}},
		},
		{
			ID:     "future_simple",
			Anchor: TokenPredicate{PoS: verbalPoS, Feats: map[string]string{"Tense": "Fut"}},
		},
		{
			ID:     "conditional",
			Anchor: TokenPredicate{PoS: verbalPoS, Feats: map[string]string{"Mood": "Cnd"}},
		},
		{
			ID:     "subjonctif",
			Anchor: TokenPredicate{PoS: verbalPoS, Feats: map[string]string{"Mood": "Sub", "Tense": "Pres"}},
		},
	},
	IncorrectFormat: "Incorrect. The correct form is \"%s\"",
	Hints: map[string]string{
		"passe_compose_aux":  "(conjugated form of avoir/être)",
		"passe_compose_main": "(past participle)",
		"present_continuous": "(infinitive form)",
	},
}
