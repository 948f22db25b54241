package telemetry_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonesrussell/comment-sentiment/internal/telemetry"
)

// One provider per test run: promauto registers into the global
// Prometheus registry and a second Provider would panic.
var (
	testProvider *telemetry.Provider
	providerOnce sync.Once
)

func getTestProvider(t *testing.T) *telemetry.Provider {
	t.Helper()
	providerOnce.Do(func() {
		testProvider = telemetry.NewProvider()
	})
	return testProvider
}

func TestNewProvider(t *testing.T) {
	provider := getTestProvider(t)
	if provider == nil {
		t.Fatal("expected non-nil provider")
	}
	if provider.Tracer == nil {
		t.Error("expected non-nil tracer")
	}
	if provider.Metrics == nil {
		t.Error("expected non-nil metrics")
	}
	if provider.Handler() == nil {
		t.Error("expected non-nil metrics handler")
	}
}

func TestRecordClassification(t *testing.T) {
	provider := getTestProvider(t)
	ctx := context.Background()

	// Should not panic
	provider.RecordClassification(ctx, "ja", true, 100*time.Millisecond)
	provider.RecordClassification(ctx, "other", false, 50*time.Millisecond)
	provider.RecordClassificationFailure(ctx, "no_backends")
	provider.RecordLanguage(ctx, "ja")
}

func TestRecordRuleAndBackend(t *testing.T) {
	provider := getTestProvider(t)
	ctx := context.Background()

	// Should not panic
	provider.RecordRuleMatch(ctx, 5*time.Millisecond)
	provider.RecordRuleAdjustment(ctx, "sarcasm")
	provider.RecordBackendRequest(ctx, "ja-1", true, 20*time.Millisecond)
	provider.RecordBackendRequest(ctx, "multi", false, 20*time.Millisecond)
}

func TestRecordFetchAndCache(t *testing.T) {
	provider := getTestProvider(t)
	ctx := context.Background()

	// Should not panic
	provider.RecordFetch(ctx, "videos", "ok")
	provider.RecordQuotaExhausted(ctx)
	provider.RecordCacheHit(ctx)
	provider.RecordCacheMiss(ctx)
	provider.RecordVideoProcessed(ctx, true)
	provider.RecordBatchSize(25)
	provider.SetActiveWorkers(4)
	provider.SetActiveWorkers(0)
}

func TestStartSpan(t *testing.T) {
	provider := getTestProvider(t)

	ctx, span := provider.StartSpan(context.Background(), "classify")
	if ctx == nil || span == nil {
		t.Fatal("expected context and span")
	}
	span.End()
}
