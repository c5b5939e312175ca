package morfa

// caseBearingPoS are the parts of speech that inflect for case.
var caseBearingPoS = []string{"NOUN", "PRON", "ADJ", "DET", "PROPN"}

// Russian practices the six grammatical cases. Matches display the
// nominative (dictionary) form. The alias table merges the abbreviation
// sets of the neural taggers (Nom, Gen, ...) and the lexicon analyzer
// (nomn, gent, ...); both spell instrumental differently, and the
// locative maps onto the prepositional case taught to learners.
var Russian = &Catalog{
	Language: "russian",
	Constructs: []Construct{
		{ID: "nominative", Anchor: TokenPredicate{PoS: caseBearingPoS, Case: "nominative"}, Reports: []Report{{Display: "nominative"}}},
		{ID: "genitive", Anchor: TokenPredicate{PoS: caseBearingPoS, Case: "genitive"}, Reports: []Report{{Display: "nominative"}}},
		{ID: "dative", Anchor: TokenPredicate{PoS: caseBearingPoS, Case: "dative"}, Reports: []Report{{Display: "nominative"}}},
		{ID: "accusative", Anchor: TokenPredicate{PoS: caseBearingPoS, Case: "accusative"}, Reports: []Report{{Display: "nominative"}}},
		{ID: "instrumental", Anchor: TokenPredicate{PoS: caseBearingPoS, Case: "instrumental"}, Reports: []Report{{Display: "nominative"}}},
		{ID: "prepositional", Anchor: TokenPredicate{PoS: caseBearingPoS, Case: "prepositional"}, Reports: []Report{{Display: "nominative"}}},
	},
	CaseAliases: map[string]string{
		"nom":  "nominative",
		"gen":  "genitive",
		"dat":  "dative",
		"acc":  "accusative",
		"abl":  "instrumental",
		"ins":  "instrumental",
		"loc":  "prepositional",
		"nomn": "nominative",
		"gent": "genitive",
		"datv": "dative",
		"accs": "accusative",
		"ablt": "instrumental",
		"loct": "prepositional",

		"nominative":    "nominative",
		"genitive":      "genitive",
		"dative":        "dative",
		"accusative":    "accusative",
		"instrumental":  "instrumental",
		"prepositional": "prepositional",
	},
	RoleConstraints: map[string][]string{
		"nsubj": {"nominative"},
		"obj":   {"accusative", "genitive"},
		"iobj":  {"dative"},
		"obl":   {"genitive", "dative", "instrumental", "prepositional"},
	},
	IncorrectFormat: "Incorrect. The word should be \"%s\"",
}
