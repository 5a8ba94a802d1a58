// internal/workers/guidance/archive-recommendation/models.go
package archiverecommendation

import "stream-advisor/internal/engine/streamscorer"

type Input struct {
	RecommendationID string                      `json:"recommendationId" validate:"required"`
	SessionID        string                      `json:"sessionId,omitempty"`
	UserID           string                      `json:"userId,omitempty"`
	Recommendation   streamscorer.Recommendation `json:"recommendation"`
}

type Output struct {
	DocumentID string `json:"documentId"`
	Index      string `json:"index"`
	Archived   bool   `json:"archived"`
}

// Document is the archived shape. StreamID and Confidence are lifted to the
// top level for aggregations.
type Document struct {
	RecommendationID string                      `json:"recommendationId"`
	SessionID        string                      `json:"sessionId,omitempty"`
	UserID           string                      `json:"userId,omitempty"`
	StreamID         streamscorer.StreamID       `json:"streamId"`
	Confidence       float64                     `json:"confidence"`
	Recommendation   streamscorer.Recommendation `json:"recommendation"`
	ArchivedAt       string                      `json:"archivedAt"`
}
