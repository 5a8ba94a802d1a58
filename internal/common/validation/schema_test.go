// internal/common/validation/schema_test.go
package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Schema
// ==========================

func TestAnswerSetSchema(t *testing.T) {
	tests := []struct {
		name      string
		doc       interface{}
		wantValid bool
	}{
		{"string answers", map[string]interface{}{"fav_subject": "Maths", "free_time": "coding games"}, true},
		{"empty object", map[string]interface{}{}, true},
		{"unknown question id", map[string]interface{}{"Q-7": "x", "Fav Subject": "Maths"}, true},
		{"answer at the limit", map[string]interface{}{"free_time": strings.Repeat("a", MaxAnswerLength)}, true},
		{"answer over the limit", map[string]interface{}{"free_time": strings.Repeat("a", MaxAnswerLength+1)}, false},
		{"numeric answer", map[string]interface{}{"strength": 3}, false},
		{"not an object", []interface{}{"Maths"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := AnswerSetSchema.Validate(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, res.Valid, res.Error())
			if !tt.wantValid {
				assert.NotEmpty(t, res.Errors)
				assert.NotEmpty(t, res.Error())
			}
		})
	}
}

func TestCompile_RejectsBrokenSchema(t *testing.T) {
	_, err := Compile("broken", map[string]interface{}{"type": 42})
	assert.Error(t, err)
	assert.Panics(t, func() { MustCompile("broken", map[string]interface{}{"type": 42}) })
}

func TestValidationResult_ErrorOnValid(t *testing.T) {
	assert.Equal(t, "", (&ValidationResult{Valid: true}).Error())
	var nilResult *ValidationResult
	assert.Equal(t, "", nilResult.Error())
}

// ==========================
// Struct
// ==========================

type modeRequest struct {
	Mode  string `validate:"required,oneof=SSC HSC"`
	Email string `validate:"omitempty,email"`
}

func TestStruct(t *testing.T) {
	assert.True(t, Struct(modeRequest{Mode: "SSC"}).Valid)

	res := Struct(modeRequest{Mode: "CBSE", Email: "not-an-email"})
	require.False(t, res.Valid)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, "mode", res.Errors[0].Field)
	assert.Equal(t, "ONEOF", res.Errors[0].Code)
	assert.Equal(t, "must be one of [SSC HSC]", res.Errors[0].Message)
	assert.Equal(t, "email", res.Errors[1].Field)

	res = Struct(modeRequest{})
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "is required", res.Errors[0].Message)
}
