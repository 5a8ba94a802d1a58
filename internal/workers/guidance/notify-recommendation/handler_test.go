// internal/workers/guidance/notify-recommendation/handler_test.go
package notifyrecommendation

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"stream-advisor/internal/common/errors"
	"stream-advisor/internal/common/logger"
	"stream-advisor/internal/engine/streamscorer"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Mock Implementations
// ==========================

type MockSESService struct {
	SendEmailFunc func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

func (m *MockSESService) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	return m.SendEmailFunc(ctx, params, optFns...)
}

type MockSNSService struct {
	PublishFunc func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

func (m *MockSNSService) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	return m.PublishFunc(ctx, params, optFns...)
}

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		EmailEnabled: true,
		SMSEnabled:   true,
		FromEmail:    "guidance@streamadvisor.test",
		Subject:      "Your stream recommendation is ready",
		SenderID:     "ADVISOR",
		Timeout:      5 * time.Second,
	}
}

func createTestInput(channels ...string) *Input {
	return &Input{
		UserID: "user-001",
		Recommendation: streamscorer.Analyze(streamscorer.AnswerSet{
			"current_stream": "Science (PCB)",
			"career_field":   "Medical / Healthcare",
			"fav_subject":    "Biology",
		}),
		Channels: channels,
	}
}

func expectContact(mock sqlmock.Sqlmock, name, email, phone interface{}) {
	mock.ExpectQuery(`SELECT name, email, phone FROM users WHERE id = \$1`).
		WithArgs("user-001").
		WillReturnRows(sqlmock.NewRows([]string{"name", "email", "phone"}).AddRow(name, email, phone))
}

func okSES(t *testing.T, sent *int) *MockSESService {
	return &MockSESService{
		SendEmailFunc: func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
			*sent++
			assert.Equal(t, "asha@example.com", params.Destination.ToAddresses[0])
			assert.Equal(t, "guidance@streamadvisor.test", *params.Source)
			return &ses.SendEmailOutput{MessageId: aws.String("ses-1")}, nil
		},
	}
}

func okSNS(t *testing.T, sent *int) *MockSNSService {
	return &MockSNSService{
		PublishFunc: func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
			*sent++
			assert.Equal(t, "+919800000000", *params.PhoneNumber)
			assert.Equal(t, "ADVISOR", *params.MessageAttributes["AWS.SNS.SMS.SenderID"].StringValue)
			return &sns.PublishOutput{MessageId: aws.String("sns-1")}, nil
		},
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Channels(t *testing.T) {
	tests := []struct {
		name         string
		channels     []string
		phone        interface{}
		emailEnabled bool
		wantEmail    bool
		wantSMS      bool
		wantIDs      []string
	}{
		{"default is email only", nil, "+919800000000", true, true, false, []string{"ses-1"}},
		{"email and sms", []string{"email", "sms"}, "+919800000000", true, true, true, []string{"ses-1", "sns-1"}},
		{"sms without phone", []string{"sms"}, nil, true, false, false, []string{}},
		{"email disabled", []string{"email"}, "+919800000000", false, false, false, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			expectContact(mock, "Asha", "asha@example.com", tt.phone)

			var emails, texts int
			cfg := createTestConfig()
			cfg.EmailEnabled = tt.emailEnabled
			h := &Handler{
				config:    cfg,
				db:        db,
				logger:    logger.NewTestLogger(t),
				sesClient: okSES(t, &emails),
				snsClient: okSNS(t, &texts),
			}

			out, err := h.Execute(context.Background(), createTestInput(tt.channels...))
			require.NoError(t, err)

			assert.NotEmpty(t, out.NotificationID)
			assert.Equal(t, tt.wantEmail, out.SentEmail)
			assert.Equal(t, tt.wantSMS, out.SentSMS)
			assert.Equal(t, tt.wantIDs, out.MessageIDs)
			assert.Empty(t, out.FailedChannels)
			assert.Equal(t, boolToInt(tt.wantEmail), emails)
			assert.Equal(t, boolToInt(tt.wantSMS), texts)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHandler_Execute_EmailContent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	expectContact(mock, "Asha", "asha@example.com", nil)

	input := createTestInput()
	var body, subject string
	h := NewHandler(createTestConfig(), db, &MockSESService{
		SendEmailFunc: func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
			subject = *params.Message.Subject.Data
			body = *params.Message.Body.Text.Data
			return &ses.SendEmailOutput{MessageId: aws.String("ses-2")}, nil
		},
	}, nil, logger.NewTestLogger(t))

	_, err = h.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "Your stream recommendation is ready", subject)
	assert.True(t, strings.HasPrefix(body, "Hi Asha,"))
	assert.Contains(t, body, "Science (PCB)")
	assert.Contains(t, body, input.Recommendation.DetailedAnalysis.Summary)
	assert.Contains(t, body, "1. "+input.Recommendation.DetailedAnalysis.NextSteps[0])
}

func TestHandler_Execute_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     *Input
		setupMock func(mock sqlmock.Sqlmock)
		sesErr    error
		wantCode  errors.ErrorCode
	}{
		{
			name:     "missing user id",
			input:    &Input{},
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "unsupported channel",
			input:    createTestInput("pigeon"),
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:  "unknown user",
			input: createTestInput(),
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT name, email, phone FROM users`).
					WithArgs("user-001").
					WillReturnRows(sqlmock.NewRows([]string{"name", "email", "phone"}))
			},
			wantCode: errors.ErrCodeContactNotFound,
		},
		{
			name:  "database failure",
			input: createTestInput(),
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT name, email, phone FROM users`).
					WillReturnError(stderrors.New("connection refused"))
			},
			wantCode: errors.ErrCodeDatabaseError,
		},
		{
			name:  "email send failure",
			input: createTestInput(),
			setupMock: func(mock sqlmock.Sqlmock) {
				expectContact(mock, "Asha", "asha@example.com", nil)
			},
			sesErr:   stderrors.New("MessageRejected"),
			wantCode: errors.ErrCodeNotificationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			if tt.setupMock != nil {
				tt.setupMock(mock)
			}

			h := NewHandler(createTestConfig(), db, &MockSESService{
				SendEmailFunc: func(context.Context, *ses.SendEmailInput, ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
					if tt.sesErr != nil {
						return nil, tt.sesErr
					}
					return &ses.SendEmailOutput{MessageId: aws.String("ses-3")}, nil
				},
			}, nil, logger.NewNoOpLogger())

			out, err := h.Execute(context.Background(), tt.input)
			assert.Nil(t, out)

			var stdErr *errors.StandardError
			require.True(t, stderrors.As(err, &stdErr))
			assert.Equal(t, tt.wantCode, stdErr.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHandler_Execute_PartialDeliveryCompletes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var emails, texts int
	failingSNS := &MockSNSService{
		PublishFunc: func(context.Context, *sns.PublishInput, ...func(*sns.Options)) (*sns.PublishOutput, error) {
			texts++
			return nil, stderrors.New("Throttling: rate exceeded")
		},
	}
	h := NewHandler(createTestConfig(), db, okSES(t, &emails), failingSNS, logger.NewTestLogger(t))

	// A completed job is never retried, so each attempt must send at most one email.
	for attempt := 1; attempt <= 2; attempt++ {
		expectContact(mock, "Asha", "asha@example.com", "+919800000000")

		out, err := h.Execute(context.Background(), createTestInput(ChannelEmail, ChannelSMS))
		require.NoError(t, err, "attempt %d", attempt)
		assert.True(t, out.SentEmail)
		assert.False(t, out.SentSMS)
		assert.Equal(t, []string{"ses-1"}, out.MessageIDs)
		assert.Equal(t, []string{ChannelSMS}, out.FailedChannels)
		assert.Equal(t, attempt, emails, "one email per completed attempt")
	}
	assert.Equal(t, 2, texts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_AllChannelsFail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	expectContact(mock, "Asha", "asha@example.com", "+919800000000")

	h := NewHandler(createTestConfig(), db,
		&MockSESService{SendEmailFunc: func(context.Context, *ses.SendEmailInput, ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
			return nil, stderrors.New("MessageRejected")
		}},
		&MockSNSService{PublishFunc: func(context.Context, *sns.PublishInput, ...func(*sns.Options)) (*sns.PublishOutput, error) {
			return nil, stderrors.New("Throttling")
		}},
		logger.NewNoOpLogger())

	out, err := h.Execute(context.Background(), createTestInput(ChannelEmail, ChannelSMS))
	assert.Nil(t, out)

	var stdErr *errors.StandardError
	require.True(t, stderrors.As(err, &stdErr))
	assert.Equal(t, errors.ErrCodeNotificationFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
	assert.Equal(t, ChannelEmail, stdErr.Metadata["channel"])
}

func TestSMSBody(t *testing.T) {
	rec := createTestInput().Recommendation
	msg := smsBody(contact{}, rec)

	assert.True(t, strings.HasPrefix(msg, "Hi there, your recommended stream is Science (PCB)"))
	assert.Contains(t, msg, rec.Exams[0])
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ==========================
// Config Tests
// ==========================

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, createTestConfig().Validate())

	noSender := createTestConfig()
	noSender.FromEmail = ""
	assert.EqualError(t, noSender.Validate(), "from_email is required when email is enabled")

	noSender.EmailEnabled = false
	assert.NoError(t, noSender.Validate())

	noTimeout := createTestConfig()
	noTimeout.Timeout = 0
	assert.EqualError(t, noTimeout.Validate(), "timeout must be positive")
}
