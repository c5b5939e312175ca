package morfa

// Hebrew practices the three verb tenses and noun plurals. The present
// tense is tagged inconsistently by UD treebanks (Tense=Pres on some
// verbs, VerbForm=Part on the participial present), so the construct
// accepts either. Niqqud is significant, so answers are compared with
// diacritics intact.
var Hebrew = &Catalog{
	Language: "hebrew",
	Constructs: []Construct{
		{
			ID:     "past",
			Anchor: TokenPredicate{PoS: []string{"VERB"}, Feats: map[string]string{"Tense": "Past"}},
		},
		{
			ID: "present",
			Anchor: TokenPredicate{PoS: []string{"VERB"}, AnyOf: []TokenPredicate{
				{Feats: map[string]string{"Tense": "Pres"}},
				{Feats: map[string]string{"VerbForm": "Part"}},
			}},
		},
		{
			ID:     "future",
			Anchor: TokenPredicate{PoS: []string{"VERB"}, Feats: map[string]string{"Tense": "Fut"}},
		},
		{
			ID:     "plurals",
			Anchor: TokenPredicate{PoS: []string{"NOUN"}, Feats: map[string]string{"Number": "Plur"}},
		},
	},
	CorrectMessage:  "נכון!",
	IncorrectFormat: "לא נכון. הצורה הנכונה היא \"%s\"",
	Hints: map[string]string{
		"past":    "(צורת הפועל)",
		"present": "(צורת הפועל)",
		"future":  "(צורת הפועל)",
		"plurals": "(צורת הרבים)",
	},
}
