// internal/workers/guidance/analyze-answer/models.go
package analyzeanswer

import "stream-advisor/internal/engine/textsignal"

type Input struct {
	QuestionID string `json:"questionId,omitempty"`
	Mode       string `json:"mode,omitempty"`
	Answer     string `json:"answer"`
}

// Output carries the text signals of one answer. Valid is only set when
// QuestionID names a known question.
type Output struct {
	Sentiment       float64           `json:"sentiment"`
	Keywords        []string          `json:"keywords"`
	Confidence      float64           `json:"confidence"`
	Intent          textsignal.Intent `json:"intent"`
	Subjects        []string          `json:"subjects"`
	Valid           *bool             `json:"valid,omitempty"`
	ValidationError string            `json:"validationError,omitempty"`
}
