// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRegistry_Bundled(t *testing.T) {
	reg, err := LoadRegistry(filepath.Join("..", "..", "configs", "activity-registry.json"))
	require.NoError(t, err)
	require.NoError(t, reg.Validate())

	a, ok := reg.Lookup("recommend-stream")
	require.True(t, ok)
	assert.Contains(t, a.ErrorCodes, "ANSWERS_INVALID")
	assert.Empty(t, reg.Missing("fetch-questions", "analyze-answer", "recommend-stream", "archive-recommendation", "notify-recommendation"))
	assert.Equal(t, []string{"apply-scholarship"}, reg.Missing("fetch-questions", "apply-scholarship"))
}

func TestLoadRegistry_Errors(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "read registry")

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"activities":`), 0o600))
	_, err = LoadRegistry(path)
	assert.ErrorContains(t, err, "parse registry")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		activity []Activity
		want     string
	}{
		{"missing id", []Activity{{TaskType: "a"}}, "#0: id is required"},
		{"duplicate id", []Activity{{ID: "a", TaskType: "a"}, {ID: "a", TaskType: "b"}}, "a: duplicate id"},
		{"duplicate task type", []Activity{{ID: "a", TaskType: "x"}, {ID: "b", TaskType: "x"}}, `b: taskType "x" registered twice`},
		{"bad status", []Activity{{ID: "a", TaskType: "x", Status: "done"}}, `unknown status "done"`},
		{"bad timeout", []Activity{{ID: "a", TaskType: "x", Timeout: "30"}}, `invalid timeout "30"`},
		{"negative retries", []Activity{{ID: "a", TaskType: "x", Retries: -1}}, "retries must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&ActivityRegistry{Activities: tt.activity}).Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
