// internal/workers/guidance/analyze-answer/handler.go
package analyzeanswer

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"math"

	"stream-advisor/internal/common/errors"
	"stream-advisor/internal/common/logger"
	"stream-advisor/internal/common/metrics"
	"stream-advisor/internal/engine/questionbank"
	"stream-advisor/internal/engine/textsignal"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "analyze-answer"

type Handler struct {
	config     *Config
	extractor  *textsignal.Extractor
	logger     logger.Logger
	errHandler *errors.ErrorHandler
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		extractor:  textsignal.Default(),
		logger:     l,
		errHandler: errors.NewErrorHandler(l),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	timer := metrics.StartJob(TaskType)

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

	cmd, err := client.NewCompleteJobCommand().JobKey(job.Key).VariablesFromObject(output)
	if err == nil {
		_, err = cmd.Send(context.Background())
	}
	if err != nil {
		h.logger.Error("failed to complete job", map[string]interface{}{"jobKey": job.Key, "error": err})
		timer.Failed(string(errors.ErrCodeInternal))
		return
	}
	timer.Succeeded()
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	if input.Mode != "" {
		if _, err := questionbank.ParseMode(input.Mode); err != nil {
			return nil, errors.NewInvalidModeError(err)
		}
	}

	sentiment := h.extractor.SentimentScore(input.Answer)
	subjects := h.extractor.DetectSubjects(input.Answer)
	if subjects == nil {
		subjects = []string{}
	}

	out := &Output{
		Sentiment:  sentiment,
		Keywords:   h.extractor.ExtractKeywords(input.Answer).Sorted(),
		Confidence: math.Abs(sentiment),
		Intent:     h.extractor.ExtractIntent(input.Answer),
		Subjects:   subjects,
	}

	if input.QuestionID != "" {
		if q, ok := questionbank.Lookup(input.Mode, input.QuestionID); ok {
			valid := true
			if err := q.Validate(input.Answer); err != nil {
				valid = false
				var ve *questionbank.ValidationError
				if stderrors.As(err, &ve) {
					out.ValidationError = ve.Message
				} else {
					out.ValidationError = err.Error()
				}
			}
			out.Valid = &valid
		}
	}

	metrics.AnswerSentiment.Observe(sentiment)
	return out, nil
}

func (h *Handler) fail(client worker.JobClient, job entities.Job, timer *metrics.JobTimer, err error) {
	timer.Failed(string(errors.Normalize(err).Code))
	h.errHandler.HandleJobError(context.Background(), client, job, err)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
