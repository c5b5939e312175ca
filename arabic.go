package morfa

// Arabic practices verb tenses, participles, the masdar, the three
// cases and the dual/plural numbers. The future has no dedicated
// morphology in the tagsets; it is marked by the س or سوف prefix on an
// imperfective verb, so that construct matches on surface text.
var Arabic = &Catalog{
	Language: "arabic",
	Constructs: []Construct{
		{
			ID:     "past",
			Anchor: TokenPredicate{PoS: []string{"VERB"}, Feats: map[string]string{"Aspect": "Perf"}},
		},
		{
			ID:     "future",
			Anchor: TokenPredicate{PoS: []string{"VERB"}, TextPrefix: []string{"س", "سوف"}},
		},
		{
			ID:     "present",
			Anchor: TokenPredicate{PoS: []string{"VERB"}, Feats: map[string]string{"Aspect": "Imp"}},
		},
		{
			ID:     "active_participle",
			Anchor: TokenPredicate{PoS: []string{"NOUN"}, Feats: map[string]string{"VerbForm": "Part", "Voice": "Act"}},
		},
		{
			ID:     "passive_participle",
			Anchor: TokenPredicate{PoS: []string{"NOUN"}, Feats: map[string]string{"VerbForm": "Part", "Voice": "Pass"}},
		},
		{
			ID:     "masdar",
			Anchor: TokenPredicate{PoS: []string{"NOUN"}, Feats: map[string]string{"VerbForm": "Vnoun"}},
		},
		{ID: "nominal", Anchor: TokenPredicate{Case: "nominal"}},
		{ID: "accusative", Anchor: TokenPredicate{Case: "accusative"}},
		{ID: "genitive", Anchor: TokenPredicate{Case: "genitive"}},
		{ID: "dual", Anchor: TokenPredicate{Feats: map[string]string{"Number": "Dual"}}},
		{ID: "plural", Anchor: TokenPredicate{Feats: map[string]string{"Number": "Plur"}}},
	},
	CaseAliases: map[string]string{
		"nom": "nominal",
		"acc": "accusative",
		"gen": "genitive",

		"nominal":    "nominal",
		"accusative": "accusative",
		"genitive":   "genitive",
	},
	CorrectMessage:  "صحيح!",
	IncorrectFormat: "غير صحيح. الشكل الصحيح هو \"%s\"",
	Hints: map[string]string{
		"past":       "(زمن الفعل)",
		"present":    "(زمن الفعل)",
		"future":     "(زمن الفعل)",
		"nominal":    "(حالة الإعراب)",
		"accusative": "(حالة الإعراب)",
		"genitive":   "(حالة الإعراب)",
		"dual":       "(العدد)",
		"plural":     "(العدد)",
	},
}
