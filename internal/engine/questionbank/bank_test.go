// internal/engine/questionbank/bank_test.go
package questionbank

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionsFor(t *testing.T) {
	tests := []struct {
		mode    string
		count   int
		firstID string
		wantErr bool
	}{
		{"ssc", 14, "name", false},
		{"SSC", 14, "name", false},
		{" hsc ", 14, "name", false},
		{"college", 0, "", true},
		{"", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			qs, err := QuestionsFor(tt.mode)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownMode))
				return
			}
			require.NoError(t, err)
			assert.Len(t, qs, tt.count)
			assert.Equal(t, tt.firstID, qs[0].ID)
		})
	}
}

func TestQuestionsFor_ReturnsCopy(t *testing.T) {
	qs, err := QuestionsFor("ssc")
	require.NoError(t, err)
	qs[1].Options[0] = "99"
	qs[0].Text = "changed"

	again, err := QuestionsFor("ssc")
	require.NoError(t, err)
	assert.Equal(t, "13", again[1].Options[0])
	assert.Equal(t, "Hey! What's your name? 😊", again[0].Text)
}

func TestQuestionIDsUnique(t *testing.T) {
	for _, set := range [][]Question{sscQuestions, hscQuestions} {
		seen := map[string]bool{}
		for _, q := range set {
			assert.False(t, seen[q.ID], q.ID)
			seen[q.ID] = true
		}
	}
}

func TestLookup(t *testing.T) {
	q, ok := Lookup("", "fav_subject")
	require.True(t, ok)
	assert.Equal(t, TypeChoice, q.Type)

	q, ok = Lookup("hsc", "age")
	require.True(t, ok)
	assert.Equal(t, []string{"16", "17", "18", "19", "20"}, q.Options)

	_, ok = Lookup("ssc", "skill_dev")
	assert.False(t, ok)

	_, ok = Lookup("nope", "name")
	assert.False(t, ok)
}

func TestQuestion_Validate(t *testing.T) {
	name, _ := Lookup("ssc", "name")
	location, _ := Lookup("ssc", "location")
	fav, _ := Lookup("ssc", "fav_subject")
	age, _ := Lookup("ssc", "age")
	final, _ := Lookup("hsc", "final_message")

	tests := []struct {
		name    string
		q       Question
		value   string
		wantMsg string
	}{
		{"name ok", name, "Ravi", ""},
		{"name too short after trim", name, "  A  ", "Name must be at least 2 characters"},
		{"name counts runes", name, "अर", ""},
		{"location blank", location, "   ", "Please enter your location"},
		{"choice ok", fav, "Biology", ""},
		{"choice unknown", fav, "Astrology", defaultChoiceError},
		{"age out of range", age, "21", "Please select your age"},
		{"optional text", final, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate(tt.value)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantMsg, verr.Message)
			assert.Equal(t, tt.q.ID, verr.QuestionID)
		})
	}
}

func TestQuoteFor(t *testing.T) {
	assert.Equal(t, motivationalQuotes[0], QuoteFor(""))
	assert.Equal(t, QuoteFor("session-42"), QuoteFor("session-42"))
	assert.Contains(t, Quotes(), QuoteFor("session-42"))
	assert.Len(t, Quotes(), 6)
}

// ==========================
// Scoring Aliases
// ==========================

func TestScoringAnswers(t *testing.T) {
	raw := map[string]interface{}{
		"stream":        "Science (PCM)",
		"interest_area": "Healthcare & Medicine",
		"career_field":  "Law",
		"name":          "Asha",
	}

	got := ScoringAnswers(raw)
	assert.Equal(t, "Science (PCM)", got["current_stream"])
	assert.Equal(t, "Law", got["career_field"], "explicit field wins over alias")
	assert.Equal(t, "Science (PCM)", got["stream"])
	assert.Equal(t, "Asha", got["name"])
	assert.NotContains(t, got, "free_time")
	assert.NotContains(t, raw, "current_stream", "input is not modified")
}

func TestScoringFields_AreQuestionIDs(t *testing.T) {
	for id := range scoringFields {
		_, ok := Lookup("", id)
		assert.True(t, ok, "%s is not a questionnaire id", id)
	}
	field, ok := ScoringField("hobby")
	assert.True(t, ok)
	assert.Equal(t, "free_time", field)
	_, ok = ScoringField("name")
	assert.False(t, ok)
}
