// internal/workers/guidance/fetch-questions/models.go
package fetchquestions

import "stream-advisor/internal/engine/questionbank"

type Input struct {
	Mode      string `json:"mode" validate:"required,oneof=SSC HSC"`
	SessionID string `json:"sessionId,omitempty" validate:"omitempty,max=128"`
}

type Output struct {
	Mode      string                  `json:"mode"`
	Questions []questionbank.Question `json:"questions"`
	Quote     string                  `json:"quote"`
	Total     int                     `json:"total"`
}
