// internal/workers/guidance/archive-recommendation/handler.go
package archiverecommendation

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"stream-advisor/internal/common/errors"
	"stream-advisor/internal/common/logger"
	"stream-advisor/internal/common/metrics"
	"stream-advisor/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "archive-recommendation"

type Indexer interface {
	IndexDocument(ctx context.Context, index, id string, doc interface{}) (string, error)
}

type Handler struct {
	config     *Config
	indexer    Indexer
	logger     logger.Logger
	errHandler *errors.ErrorHandler
}

func NewHandler(config *Config, indexer Indexer, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{config: config, indexer: indexer, logger: l, errHandler: errors.NewErrorHandler(l)}
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

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if res := validation.Struct(input); !res.Valid {
		return nil, errors.NewInvalidInputError(stderrors.New(res.Error()))
	}
	if input.Recommendation.StreamID == "" {
		return nil, errors.NewInvalidInputError(stderrors.New("recommendation: streamId is required"))
	}

	doc := Document{
		RecommendationID: input.RecommendationID,
		SessionID:        input.SessionID,
		UserID:           input.UserID,
		StreamID:         input.Recommendation.StreamID,
		Confidence:       input.Recommendation.Confidence,
		Recommendation:   input.Recommendation,
		ArchivedAt:       time.Now().UTC().Format(time.RFC3339),
	}

	id, err := h.indexer.IndexDocument(ctx, h.config.Index, input.RecommendationID, doc)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, errors.NewTimeoutError("elasticsearch", err)
		}
		return nil, errors.NewArchiveFailedError(h.config.Index, err).
			WithMetadata("recommendationId", input.RecommendationID)
	}

	h.logger.Info("recommendation archived", map[string]interface{}{
		"recommendationId": input.RecommendationID,
		"documentId":       id,
		"index":            h.config.Index,
	})
	return &Output{DocumentID: id, Index: h.config.Index, Archived: true}, nil
}

func (h *Handler) fail(client worker.JobClient, job entities.Job, timer *metrics.JobTimer, err error) {
	timer.Failed(string(errors.Normalize(err).Code))
	h.errHandler.HandleJobError(context.Background(), client, job, err)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
