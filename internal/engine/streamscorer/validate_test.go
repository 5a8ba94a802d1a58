// internal/engine/streamscorer/validate_test.go
package streamscorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfiles(t *testing.T) {
	require.NoError(t, ValidateProfiles())
}

func TestValidateTables_Defects(t *testing.T) {
	tests := []struct {
		name    string
		order   []StreamID
		table   func() map[StreamID]Profile
		groups  []RuleGroup
		wantErr string
	}{
		{
			name:  "rule references unknown stream",
			order: streamOrder,
			table: func() map[StreamID]Profile { return profiles },
			groups: []RuleGroup{{Field: "x", Rules: []Rule{
				{Name: "ghost", Match: anyValue(), Weights: []Weight{w("Ghost", 1)}},
			}}},
			wantErr: `rule x/ghost references unknown stream "Ghost"`,
		},
		{
			name:  "rule without matcher",
			order: streamOrder,
			table: func() map[StreamID]Profile { return profiles },
			groups: []RuleGroup{{Field: "x", Rules: []Rule{
				{Name: "blind", Weights: []Weight{w(StreamArts, 1)}},
			}}},
			wantErr: "rule x/blind has no matcher",
		},
		{
			name:  "ordered stream without profile",
			order: append(Streams(), "Vocational"),
			table: func() map[StreamID]Profile { return profiles },
			wantErr: `stream "Vocational" has no profile`,
		},
		{
			name:  "profile too thin for narrative",
			order: streamOrder,
			table: func() map[StreamID]Profile {
				out := make(map[StreamID]Profile, len(profiles))
				for id, p := range profiles {
					out[id] = p.clone()
				}
				p := out[StreamDiploma]
				p.Exams = []string{"Only One"}
				out[StreamDiploma] = p
				return out
			},
			wantErr: `stream "Diploma" needs at least 2 exams`,
		},
		{
			name:    "default stream missing",
			order:   []StreamID{StreamArts},
			table:   func() map[StreamID]Profile { return map[StreamID]Profile{StreamArts: profiles[StreamArts]} },
			wantErr: `default stream "Science_PCM" has no profile`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTables(tt.order, tt.table(), tt.groups)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestScoreBoard(t *testing.T) {
	b := newScoreBoard()
	assert.True(t, b.Empty())
	assert.Equal(t, DefaultStream, b.Leader())
	assert.Equal(t, 50.0, b.Confidence())

	b.Add(StreamArts, 1)
	b.Add(StreamCommerce, 1)
	b.Add(StreamPCB, 0)
	b.Add(StreamPCB, -2)

	assert.False(t, b.Empty())
	assert.Equal(t, 0.0, b.Score(StreamPCB))
	assert.NotContains(t, b.Snapshot(), StreamPCB)
	assert.Equal(t, StreamCommerce, b.Leader())
	assert.Equal(t, 50.0, b.Confidence())

	b.AddToPresent(0.5)
	assert.Equal(t, 1.5, b.Score(StreamArts))
	assert.Equal(t, 3.0, b.Total())
	assert.Equal(t, 1.5, b.Max())
	assert.Len(t, b.Snapshot(), 2)
}

func TestLookupProfile(t *testing.T) {
	for _, id := range Streams() {
		p, ok := LookupProfile(id)
		require.True(t, ok, id)
		assert.NotEmpty(t, p.Title)
	}

	_, ok := LookupProfile("Vocational")
	assert.False(t, ok)
}
