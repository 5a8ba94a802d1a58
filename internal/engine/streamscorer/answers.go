// internal/engine/streamscorer/answers.go
package streamscorer

import (
	"sort"
	"unicode/utf8"
)

// AnswerSet maps question ids to answer text. Unknown keys are ignored and
// missing keys read as the empty string.
type AnswerSet map[string]string

// Get returns the answer for field or "".
func (a AnswerSet) Get(field string) string {
	return a[field]
}

// AnswersFromVariables keeps the string-valued entries of a decoded JSON
// object. Any other value is treated as absent.
func AnswersFromVariables(vars map[string]interface{}) AnswerSet {
	out := make(AnswerSet, len(vars))
	for k, v := range vars {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// Truncated returns a copy with every answer cut to at most maxRunes
// characters, plus the sorted fields that were cut.
func (a AnswerSet) Truncated(maxRunes int) (AnswerSet, []string) {
	out := make(AnswerSet, len(a))
	var cut []string
	for k, v := range a {
		if utf8.RuneCountInString(v) > maxRunes {
			v = string([]rune(v)[:maxRunes])
			cut = append(cut, k)
		}
		out[k] = v
	}
	sort.Strings(cut)
	return out, cut
}
