// internal/workers/guidance/recommend-stream/handler.go
package recommendstream

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"stream-advisor/internal/common/database"
	"stream-advisor/internal/common/errors"
	"stream-advisor/internal/common/logger"
	"stream-advisor/internal/common/metrics"
	"stream-advisor/internal/common/observability"
	"stream-advisor/internal/common/validation"
	"stream-advisor/internal/engine/questionbank"
	"stream-advisor/internal/engine/streamscorer"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const TaskType = "recommend-stream"

const loadAnswersQuery = `SELECT answers FROM quiz_sessions WHERE id = $1`

// Cache stores finished recommendations per quiz session.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) error
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
}

type Handler struct {
	config     *Config
	db         *sql.DB
	cache      Cache
	scorer     *streamscorer.Scorer
	obs        *observability.Observability
	logger     logger.Logger
	errHandler *errors.ErrorHandler
}

// NewHandler wires the worker. db and cache may be nil; without a db answers
// must arrive with the job, without a cache nothing is cached.
func NewHandler(config *Config, db *sql.DB, cache Cache, obs *observability.Observability, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		db:         db,
		cache:      cache,
		scorer:     streamscorer.Default(),
		obs:        obs,
		logger:     l,
		errHandler: errors.NewErrorHandler(l),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	timer := metrics.StartJob(TaskType)
	start := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()
	ctx, span := h.obs.StartSpan(ctx, TaskType,
		attribute.Int64("job.key", job.Key),
		attribute.Int64("process.instance.key", job.ProcessInstanceKey),
	)
	defer span.End()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.fail(ctx, client, job, timer, errors.NewInvalidInputError(err))
		return
	}
	span.SetAttributes(attribute.String("session.id", input.SessionID))

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.fail(ctx, client, job, timer, err)
		return
	}
	span.SetAttributes(attribute.String("stream.id", string(output.Recommendation.StreamID)))

	if err := h.completeJob(client, job, output); err != nil {
		timer.Failed(string(errors.ErrCodeInternal))
		return
	}
	timer.Succeeded()
	h.obs.RecordJobProcessed(ctx, TaskType, "completed")
	h.obs.RecordJobDuration(ctx, TaskType, time.Since(start), "completed")
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	// Inline answers always rescore; the cache only serves session lookups.
	if input.Answers == nil {
		if cached, ok := h.lookupCache(ctx, input.SessionID); ok {
			return cached, nil
		}
	}

	raw, err := h.resolveAnswers(ctx, input)
	if err != nil {
		return nil, err
	}
	raw = questionbank.ScoringAnswers(raw)

	if result, err := validation.AnswerSetSchema.Validate(raw); err != nil {
		h.logger.Warn("answer set not checked", map[string]interface{}{"sessionId": input.SessionID, "error": err})
	} else if !result.Valid {
		h.logger.Warn("answer set has unusable entries", map[string]interface{}{
			"sessionId": input.SessionID,
			"issues":    result.Error(),
		})
	}

	answers, cut := streamscorer.AnswersFromVariables(raw).Truncated(validation.MaxAnswerLength)
	if len(cut) > 0 {
		h.logger.Warn("long answers truncated", map[string]interface{}{
			"sessionId": input.SessionID,
			"fields":    cut,
			"maxLength": validation.MaxAnswerLength,
		})
	}

	rec := h.scorer.Analyze(answers)
	output := &Output{
		RecommendationID: uuid.New().String(),
		SessionID:        input.SessionID,
		Recommendation:   rec,
		GeneratedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	metrics.StreamRecommendations.WithLabelValues(string(rec.StreamID)).Inc()
	metrics.RecommendationConfidence.Observe(rec.Confidence)
	h.obs.RecordRecommendation(ctx, string(rec.StreamID), rec.Confidence)

	h.storeCache(ctx, output)

	fields := map[string]interface{}{
		"sessionId":  input.SessionID,
		"stream":     string(rec.StreamID),
		"confidence": rec.Confidence,
		"answers":    len(answers),
	}
	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		fields["traceId"] = sc.TraceID().String()
	}
	h.logger.Info("stream recommended", fields)
	return output, nil
}

func (h *Handler) resolveAnswers(ctx context.Context, input *Input) (map[string]interface{}, error) {
	if input.Answers != nil {
		return input.Answers, nil
	}
	if input.SessionID == "" {
		return nil, errors.NewAnswersInvalidError(stderrors.New("no answers and no sessionId"))
	}
	if h.db == nil {
		return nil, errors.NewAnswersLoadFailedError(stderrors.New("no answer store configured"))
	}

	var payload []byte
	err := h.db.QueryRowContext(ctx, loadAnswersQuery, input.SessionID).Scan(&payload)
	switch {
	case stderrors.Is(err, sql.ErrNoRows):
		return nil, errors.NewSessionNotFoundError(input.SessionID, err)
	case err != nil:
		return nil, errors.NewAnswersLoadFailedError(err).WithMetadata("sessionId", input.SessionID)
	}

	var stored map[string]interface{}
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, errors.NewAnswersInvalidError(fmt.Errorf("stored answers for %s: %w", input.SessionID, err))
	}
	return stored, nil
}

func (h *Handler) cacheKey(sessionID string) string {
	return h.config.CachePrefix + sessionID
}

func (h *Handler) lookupCache(ctx context.Context, sessionID string) (*Output, bool) {
	if h.cache == nil || sessionID == "" {
		return nil, false
	}

	var out Output
	err := h.cache.GetJSON(ctx, h.cacheKey(sessionID), &out)
	switch {
	case err == nil:
		metrics.RecommendationCacheHits.WithLabelValues("hit").Inc()
		out.Cached = true
		return &out, true
	case stderrors.Is(err, database.ErrCacheMiss):
		metrics.RecommendationCacheHits.WithLabelValues("miss").Inc()
	default:
		metrics.RecommendationCacheHits.WithLabelValues("error").Inc()
		h.logger.Warn("cache lookup failed", map[string]interface{}{"sessionId": sessionID, "error": err})
	}
	return nil, false
}

func (h *Handler) storeCache(ctx context.Context, out *Output) {
	if h.cache == nil || out.SessionID == "" {
		return
	}
	if err := h.cache.SetJSON(ctx, h.cacheKey(out.SessionID), out, h.config.CacheTTL); err != nil {
		h.logger.Warn("cache store failed", map[string]interface{}{"sessionId": out.SessionID, "error": err})
	}
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{"error": err})
		return err
	}
	if _, err := cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{"error": err})
		return err
	}
	return nil
}

func (h *Handler) fail(ctx context.Context, client worker.JobClient, job entities.Job, timer *metrics.JobTimer, err error) {
	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, string(errors.Normalize(err).Code))

	timer.Failed(string(errors.Normalize(err).Code))
	h.obs.RecordJobProcessed(ctx, TaskType, "failed")
	h.errHandler.HandleJobError(context.Background(), client, job, err)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
