package morfa

// Opinion is a single tagger's raw reading of one token's grammatical
// case, plus the dependency role that tagger assigned, if any. The
// value is tagger-specific; normalization happens inside Decide.
type Opinion struct {
	Tagger string `json:"tagger"`
	Value  string `json:"value"`
	Role   string `json:"role,omitempty"`
}

// Decision is the reconciled outcome for one token. Confidence is the
// winning vote count over all opinions that survived invalidation, so
// it is always in (0, 1].
type Decision struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	Agreement  int     `json:"agreement"`
}

// Decide reconciles up to a handful of independent tagger opinions into
// one decision:
//
// Raw values are mapped through the catalog's alias table before
// counting; an opinion the catalog cannot normalize is an abstention.
// An opinion whose dependency role admits only other categories is
// discarded rather than counted for a wrong value. A tagger contributes
// at most one vote. The category with the most votes wins; equal top
// counts are broken by opinion order, which callers keep in fixed
// per-language tagger priority. Decide returns nil only when every
// tagger abstained.
func Decide(opinions []Opinion, catalog *Catalog) *Decision {
	votes := make(map[string]int, len(opinions))
	order := make([]string, 0, len(opinions))
	voted := make(map[string]bool, len(opinions))
	total := 0

	for _, opinion := range opinions {
		if voted[opinion.Tagger] {
			continue
		}

		canonical := catalog.CanonicalCase(opinion.Value)
		if canonical == "" {
			continue
		}

		if opinion.Role != "" {
			if admissible, ok := catalog.RoleConstraints[opinion.Role]; ok {
				found := false
				for _, value := range admissible {
					if value == canonical {
						found = true
						break
					}
				}
				if !found {
					continue
				}
			}
		}

		voted[opinion.Tagger] = true
		total += 1
		if votes[canonical] == 0 {
			order = append(order, canonical)
		}
		votes[canonical] += 1
	}

	if total == 0 {
		return nil
	}

	winner := ""
	winnerVotes := 0
	for _, value := range order {
		if votes[value] > winnerVotes {
			winner = value
			winnerVotes = votes[value]
		}
	}

	return &Decision{
		Value:      winner,
		Confidence: float64(winnerVotes) / float64(total),
		Agreement:  winnerVotes,
	}
}
