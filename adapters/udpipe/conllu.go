package udpipe

import (
	"fmt"
	"strings"

	"github.com/gveselov/morfa"
)

// Parse decodes CoNLL-U output into tokens, recovering rune offsets by
// walking the source text the tagger was given. Words split out of a
// multiword surface token (clitics, contractions like "del") all carry
// the span of the surface form they came from.
func Parse(conllu, source string) ([]morfa.Token, error) {
	src := []rune(source)
	cursor := 0
	sentence := ""

	mwtRemaining := 0
	mwtOffset := 0
	mwtLength := 0

	res := make([]morfa.Token, 0, len(src)/4)
	for _, line := range strings.Split(conllu, "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if text, ok := strings.CutPrefix(line, "# text = "); ok {
				sentence = text
			}
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 10 {
			return nil, fmt.Errorf("%w: conllu line has %d fields", morfa.ErrTaggerInput, len(fields))
		}

		id := fields[0]
		if strings.Contains(id, ".") {
			// Empty nodes from enhanced dependencies have no surface form.
			continue
		}
		if lo, hi, ok := strings.Cut(id, "-"); ok {
			surface := []rune(fields[1])
			offset := findRunes(src, surface, cursor)
			if offset < 0 {
				offset = cursor
			}

			mwtRemaining = spanWidth(lo, hi)
			mwtOffset = offset
			mwtLength = len(surface)
			cursor = offset + len(surface)
			continue
		}

		token := morfa.Token{
			Text:     fields[1],
			Lemma:    lemmaField(fields[2]),
			PoS:      fields[3],
			Feats:    parseFeats(fields[5]),
			DepRel:   lemmaField(fields[7]),
			Sentence: sentence,
		}

		if mwtRemaining > 0 {
			token.Offset = mwtOffset
			token.Length = mwtLength
			mwtRemaining -= 1
		} else {
			form := []rune(fields[1])
			offset := findRunes(src, form, cursor)
			if offset < 0 {
				offset = cursor
			} else {
				cursor = offset + len(form)
			}
			token.Offset = offset
			token.Length = len(form)
		}

		res = append(res, token)
	}

	return res, nil
}

func parseFeats(field string) map[string]string {
	if field == "" || field == "_" {
		return nil
	}

	res := make(map[string]string, 4)
	for _, pair := range strings.Split(field, "|") {
		if name, value, ok := strings.Cut(pair, "="); ok {
			res[name] = value
		}
	}

	return res
}

func lemmaField(field string) string {
	if field == "_" {
		return ""
	}

	return field
}

// spanWidth counts the words covered by a multiword token range like
// "3-4". A malformed range is treated as covering a single word.
func spanWidth(lo, hi string) int {
	width := 1
	loN, hiN := 0, 0
	if _, err := fmt.Sscanf(lo, "%d", &loN); err != nil {
		return width
	}
	if _, err := fmt.Sscanf(hi, "%d", &hiN); err != nil {
		return width
	}
	if hiN >= loN {
		width = hiN - loN + 1
	}

	return width
}

func findRunes(src, form []rune, from int) int {
	if len(form) == 0 {
		return -1
	}

	for i := from; i+len(form) <= len(src); i++ {
		found := true
		for j := range form {
			if src[i+j] != form[j] {
				found = false
				break
			}
		}
		if found {
			return i
		}
	}

	return -1
}
