// internal/workers/guidance/analyze-answer/handler_test.go
package analyzeanswer

import (
	"context"
	stderrors "errors"
	"testing"

	"stream-advisor/internal/common/errors"
	"stream-advisor/internal/common/logger"
	"stream-advisor/internal/engine/textsignal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	return NewHandler(DefaultConfig(), logger.NewTestLogger(t))
}

func TestHandler_Execute_Signals(t *testing.T) {
	tests := []struct {
		name          string
		answer        string
		wantSentiment float64
		wantKeywords  []string
		wantSubjects  []string
		wantTechnical int
	}{
		{
			name:          "positive technical answer",
			answer:        "I love coding!",
			wantSentiment: 1.0,
			wantKeywords:  []string{"coding", "love"},
			wantSubjects:  []string{textsignal.SubjectComputerScience},
			wantTechnical: 1,
		},
		{
			name:          "mixed answer balances out",
			answer:        "I love coding but maths is hard",
			wantSentiment: 0.0,
			wantKeywords:  []string{"but", "coding", "hard", "love", "maths"},
			wantSubjects:  []string{textsignal.SubjectMathematics, textsignal.SubjectComputerScience},
			wantTechnical: 1,
		},
		{
			name:          "empty answer",
			answer:        "",
			wantSentiment: 0.0,
			wantKeywords:  []string{},
			wantSubjects:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := newTestHandler(t).Execute(context.Background(), &Input{Answer: tt.answer})
			require.NoError(t, err)

			assert.InDelta(t, tt.wantSentiment, out.Sentiment, 1e-9)
			assert.InDelta(t, tt.wantSentiment, out.Intent.Sentiment, 1e-9)
			assert.InDelta(t, abs(tt.wantSentiment), out.Confidence, 1e-9)
			assert.Equal(t, tt.wantKeywords, out.Keywords)
			assert.Equal(t, tt.wantSubjects, out.Subjects)
			assert.Equal(t, tt.wantTechnical, out.Intent.Technical)
			assert.Nil(t, out.Valid)
			assert.Empty(t, out.ValidationError)
		})
	}
}

func TestHandler_Execute_NegativeConfidence(t *testing.T) {
	out, err := newTestHandler(t).Execute(context.Background(), &Input{Answer: "I hate biology"})
	require.NoError(t, err)

	assert.Less(t, out.Sentiment, 0.0)
	assert.InDelta(t, -out.Sentiment, out.Confidence, 1e-9)
	assert.Equal(t, 1, out.Intent.Medical)
}

func TestHandler_Execute_QuestionValidation(t *testing.T) {
	tests := []struct {
		name       string
		input      *Input
		wantValid  *bool
		wantErrMsg string
	}{
		{"text too short", &Input{QuestionID: "name", Mode: "ssc", Answer: " A "}, boolPtr(false), "Name must be at least 2 characters"},
		{"text ok", &Input{QuestionID: "name", Mode: "SSC", Answer: "Asha"}, boolPtr(true), ""},
		{"choice ok", &Input{QuestionID: "fav_subject", Answer: "Biology"}, boolPtr(true), ""},
		{"choice not in options", &Input{QuestionID: "fav_subject", Answer: "Astrology"}, boolPtr(false), "Please choose one of the options"},
		{"unknown question", &Input{QuestionID: "shoe_size", Answer: "9"}, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := newTestHandler(t).Execute(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, out.Valid)
			assert.Equal(t, tt.wantErrMsg, out.ValidationError)
		})
	}
}

func TestHandler_Execute_InvalidMode(t *testing.T) {
	_, err := newTestHandler(t).Execute(context.Background(), &Input{Mode: "CBSE", Answer: "x"})

	var stdErr *errors.StandardError
	require.True(t, stderrors.As(err, &stdErr))
	assert.Equal(t, errors.ErrCodeInvalidMode, stdErr.Code)
}

func boolPtr(b bool) *bool { return &b }

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
