// internal/engine/questionbank/aliases.go
package questionbank

// scoringFields maps questionnaire ids to the answer field the stream scorer
// reads for the same information.
var scoringFields = map[string]string{
	"stream":        "current_stream",
	"interest_area": "career_field",
	"hobby":         "free_time",
}

// ScoringField returns the scorer field for a questionnaire id, if it differs.
func ScoringField(questionID string) (string, bool) {
	f, ok := scoringFields[questionID]
	return f, ok
}

// ScoringAnswers copies raw and adds every aliased questionnaire answer under
// its scoring field. An answer already present under the scoring field wins.
func ScoringAnswers(raw map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(raw)+len(scoringFields))
	for k, v := range raw {
		out[k] = v
	}
	for id, field := range scoringFields {
		v, ok := raw[id]
		if !ok {
			continue
		}
		if _, taken := raw[field]; !taken {
			out[field] = v
		}
	}
	return out
}
