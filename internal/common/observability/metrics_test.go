// internal/common/observability/metrics_test.go
package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsSafe(t *testing.T) {
	var o *Observability
	ctx := context.Background()

	assert.NotPanics(t, func() {
		spanCtx, span := o.StartSpan(ctx, "recommend-stream")
		assert.False(t, span.SpanContext().IsValid())
		assert.Equal(t, ctx, spanCtx)
		span.End()
		o.RecordJobProcessed(ctx, "recommend-stream", "completed")
		o.RecordJobDuration(ctx, "recommend-stream", time.Second, "completed")
		o.RecordRecommendation(ctx, "Arts", 72.7)
	})
	assert.NoError(t, o.Shutdown(ctx))
}

func TestNew_RecordsAndShutsDown(t *testing.T) {
	o, err := New("stream-advisor-test")
	require.NoError(t, err)

	ctx := context.Background()
	o.RecordJobProcessed(ctx, "fetch-questions", "completed")
	o.RecordRecommendation(ctx, "Science_PCM", 61.2)

	_, span := o.StartSpan(ctx, "fetch-questions")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, o.Shutdown(ctx))
}
