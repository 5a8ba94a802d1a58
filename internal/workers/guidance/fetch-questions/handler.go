// internal/workers/guidance/fetch-questions/handler.go
package fetchquestions

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"

	"stream-advisor/internal/common/errors"
	"stream-advisor/internal/common/logger"
	"stream-advisor/internal/common/metrics"
	"stream-advisor/internal/common/validation"
	"stream-advisor/internal/engine/questionbank"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "fetch-questions"

type Handler struct {
	config     *Config
	logger     logger.Logger
	errHandler *errors.ErrorHandler
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{config: config, logger: l, errHandler: errors.NewErrorHandler(l)}
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
	req := *input
	req.Mode = strings.ToUpper(strings.TrimSpace(req.Mode))

	if res := validation.Struct(req); !res.Valid {
		return nil, errors.NewInvalidModeError(stderrors.New(res.Error())).
			WithMetadata("mode", input.Mode)
	}

	questions, err := questionbank.QuestionsFor(req.Mode)
	if err != nil {
		return nil, errors.NewInvalidModeError(err)
	}

	h.logger.Debug("questions served", map[string]interface{}{
		"mode":      req.Mode,
		"sessionId": req.SessionID,
		"total":     len(questions),
	})

	return &Output{
		Mode:      req.Mode,
		Questions: questions,
		Quote:     questionbank.QuoteFor(req.SessionID),
		Total:     len(questions),
	}, nil
}

func (h *Handler) fail(client worker.JobClient, job entities.Job, timer *metrics.JobTimer, err error) {
	timer.Failed(string(errors.Normalize(err).Code))
	h.errHandler.HandleJobError(context.Background(), client, job, err)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
