// internal/workers/guidance/notify-recommendation/handler.go
package notifyrecommendation

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"slices"

	"stream-advisor/internal/common/errors"
	"stream-advisor/internal/common/logger"
	"stream-advisor/internal/common/metrics"
	"stream-advisor/internal/common/validation"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const TaskType = "notify-recommendation"

const contactQuery = `SELECT name, email, phone FROM users WHERE id = $1`

type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type Handler struct {
	config     *Config
	db         *sql.DB
	logger     logger.Logger
	sesClient  SESService
	snsClient  SNSService
	errHandler *errors.ErrorHandler
}

func NewHandler(config *Config, db *sql.DB, sesClient SESService, snsClient SNSService, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		db:         db,
		logger:     l,
		sesClient:  sesClient,
		snsClient:  snsClient,
		errHandler: errors.NewErrorHandler(l),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	timer := metrics.StartJob(TaskType)
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.fail(client, job, timer, errors.NewInvalidInputError(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.fail(client, job, timer, err)
		return
	}

	h.completeJob(client, job, timer, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if res := validation.Struct(input); !res.Valid {
		return nil, errors.NewInvalidInputError(stderrors.New(res.Error()))
	}
	channels := input.Channels
	if len(channels) == 0 {
		channels = []string{ChannelEmail}
	}

	c, err := h.getContact(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	out := &Output{NotificationID: uuid.New().String(), MessageIDs: []string{}, FailedChannels: []string{}}

	// The job only fails when no channel delivered; otherwise failures are
	// listed in FailedChannels and the job completes.
	var firstErr error
	var firstChannel string
	record := func(channel string, id string, err error) {
		if err != nil {
			out.FailedChannels = append(out.FailedChannels, channel)
			if firstErr == nil {
				firstErr, firstChannel = err, channel
			}
			h.logger.Warn("notification channel failed", map[string]interface{}{
				"userId":  input.UserID,
				"channel": channel,
				"error":   err,
			})
			return
		}
		out.MessageIDs = append(out.MessageIDs, id)
		switch channel {
		case ChannelEmail:
			out.SentEmail = true
		case ChannelSMS:
			out.SentSMS = true
		}
	}

	if slices.Contains(channels, ChannelEmail) && h.config.EmailEnabled && c.Email != "" {
		id, err := h.sendEmail(ctx, c.Email, h.config.Subject, emailBody(c, input.Recommendation))
		record(ChannelEmail, id, err)
	}

	if slices.Contains(channels, ChannelSMS) && h.config.SMSEnabled && c.Phone != "" {
		id, err := h.sendSMS(ctx, c.Phone, smsBody(c, input.Recommendation))
		record(ChannelSMS, id, err)
	}

	if firstErr != nil && len(out.MessageIDs) == 0 {
		return nil, errors.NewNotificationFailedError(firstChannel, firstErr).WithMetadata("userId", input.UserID)
	}

	h.logger.Info("recommendation notification processed", map[string]interface{}{
		"userId":    input.UserID,
		"stream":    string(input.Recommendation.StreamID),
		"sentEmail": out.SentEmail,
		"sentSms":   out.SentSMS,
		"failed":    out.FailedChannels,
	})
	return out, nil
}

func (h *Handler) getContact(ctx context.Context, userID string) (contact, error) {
	var name, email, phone sql.NullString
	err := h.db.QueryRowContext(ctx, contactQuery, userID).Scan(&name, &email, &phone)
	switch {
	case stderrors.Is(err, sql.ErrNoRows):
		return contact{}, errors.NewContactNotFoundError(userID, err)
	case err != nil:
		return contact{}, errors.NewDatabaseError(err)
	}
	return contact{Name: name.String, Email: email.String, Phone: phone.String}, nil
}

func (h *Handler) sendEmail(ctx context.Context, to, subject, body string) (string, error) {
	out, err := h.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &sestypes.Destination{
			ToAddresses: []string{to},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(subject)},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(h.config.FromEmail),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.MessageId), nil
}

func (h *Handler) sendSMS(ctx context.Context, to, message string) (string, error) {
	in := &sns.PublishInput{
		PhoneNumber: aws.String(to),
		Message:     aws.String(message),
	}
	if h.config.SenderID != "" {
		in.MessageAttributes = map[string]snstypes.MessageAttributeValue{
			"AWS.SNS.SMS.SenderID": {DataType: aws.String("String"), StringValue: aws.String(h.config.SenderID)},
		}
	}
	out, err := h.snsClient.Publish(ctx, in)
	if err != nil {
		return "", err
	}
	return aws.ToString(out.MessageId), nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, timer *metrics.JobTimer, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{"error": err})
		timer.Failed(string(errors.ErrCodeInternal))
		return
	}
	if _, err := cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{"error": err})
		timer.Failed(string(errors.ErrCodeInternal))
		return
	}
	timer.Succeeded()
}

func (h *Handler) fail(client worker.JobClient, job entities.Job, timer *metrics.JobTimer, err error) {
	timer.Failed(string(errors.Normalize(err).Code))
	h.errHandler.HandleJobError(context.Background(), client, job, err)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
