// internal/workers/guidance/notify-recommendation/models.go
package notifyrecommendation

import "stream-advisor/internal/engine/streamscorer"

type Input struct {
	UserID         string                      `json:"userId" validate:"required"`
	Recommendation streamscorer.Recommendation `json:"recommendation"`
	Channels       []string                    `json:"channels,omitempty" validate:"omitempty,dive,oneof=email sms"`
}

type Output struct {
	NotificationID string   `json:"notificationId"`
	SentEmail      bool     `json:"sentEmail"`
	SentSMS        bool     `json:"sentSms"`
	MessageIDs     []string `json:"messageIds"`
	FailedChannels []string `json:"failedChannels"`
}

// Channels
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

type contact struct {
	Name  string
	Email string
	Phone string
}
