// internal/engine/questionbank/bank.go
package questionbank

import (
	"errors"
	"fmt"
	"hash/fnv"
	"slices"
	"strings"
)

var ErrUnknownMode = errors.New("unknown questionnaire mode")

const defaultChoiceError = "Please choose one of the options"

// ParseMode accepts "ssc" or "hsc" in any case.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToUpper(strings.TrimSpace(s))) {
	case ModeSSC:
		return ModeSSC, nil
	case ModeHSC:
		return ModeHSC, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func setFor(m Mode) []Question {
	switch m {
	case ModeSSC:
		return sscQuestions
	case ModeHSC:
		return hscQuestions
	}
	return nil
}

// QuestionsFor returns a copy of the question set for mode.
func QuestionsFor(mode string) ([]Question, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}
	src := setFor(m)
	out := make([]Question, len(src))
	for i, q := range src {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out, nil
}

// Lookup finds a question by id. With an empty mode the SSC set is searched
// before the HSC set.
func Lookup(mode, id string) (Question, bool) {
	modes := []Mode{ModeSSC, ModeHSC}
	if mode != "" {
		m, err := ParseMode(mode)
		if err != nil {
			return Question{}, false
		}
		modes = []Mode{m}
	}
	for _, m := range modes {
		for _, q := range setFor(m) {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}

// ValidationError carries the user-facing message for a rejected answer.
type ValidationError struct {
	QuestionID string
	Message    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.QuestionID, e.Message)
}

// Validate checks value against the question's rule.
func (q Question) Validate(value string) error {
	switch q.Type {
	case TypeChoice, TypeAgeChoice:
		if len(q.Options) > 0 && !slices.Contains(q.Options, value) {
			msg := q.ErrorMessage
			if msg == "" {
				msg = defaultChoiceError
			}
			return &ValidationError{QuestionID: q.ID, Message: msg}
		}
	default:
		if len([]rune(strings.TrimSpace(value))) < q.MinLength {
			return &ValidationError{QuestionID: q.ID, Message: q.ErrorMessage}
		}
	}
	return nil
}

// Quotes returns every motivational quote.
func Quotes() []string {
	return slices.Clone(motivationalQuotes)
}

// QuoteFor picks a quote deterministically from seed. An empty seed yields
// the first quote.
func QuoteFor(seed string) string {
	if seed == "" {
		return motivationalQuotes[0]
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	return motivationalQuotes[h.Sum32()%uint32(len(motivationalQuotes))]
}
