// internal/workers/guidance/recommend-stream/models.go
package recommendstream

import "stream-advisor/internal/engine/streamscorer"

type Input struct {
	SessionID string                 `json:"sessionId,omitempty"`
	UserID    string                 `json:"userId,omitempty"`
	Mode      string                 `json:"mode,omitempty"`
	Answers   map[string]interface{} `json:"answers,omitempty"`
}

type Output struct {
	RecommendationID string                      `json:"recommendationId"`
	SessionID        string                      `json:"sessionId,omitempty"`
	Recommendation   streamscorer.Recommendation `json:"recommendation"`
	GeneratedAt      string                      `json:"generatedAt"` // ISO 8601
	Cached           bool                        `json:"cached"`
}
