package sentiment

import (
	"context"
	"errors"
	"testing"

	"github.com/jonesrussell/comment-sentiment/internal/domain"
	"github.com/jonesrussell/comment-sentiment/internal/logger"
)

func staticLoader(id BackendID, scores []float64, labels []string) Loader {
	return func(_ context.Context) (*Backend, error) {
		return NewBackend(id, &fakeScorer{scores: scores}, labels, "v1", 128), nil
	}
}

func brokenScorerLoader(id BackendID) Loader {
	return func(_ context.Context) (*Backend, error) {
		return NewBackend(id, &fakeScorer{err: errors.New("timeout")}, nil, "v1", 128), nil
	}
}

func newTestEngine(t *testing.T, loaders map[BackendID]Loader) *Engine {
	t.Helper()
	registry := NewRegistry(loaders, logger.NewNop())
	return NewEngine(registry, NewMatcher(), getTestProvider(t), logger.NewNop())
}

func TestInferEnsembleMean(t *testing.T) {
	engine := newTestEngine(t, map[BackendID]Loader{
		// Three-class head: positive 0.8, negative 0.1, neutral 0.1.
		BackendJapanese1: staticLoader(BackendJapanese1, []float64{0.1, 0.8, 0.1}, nil),
		// Binary head: positive 0.6, negative 0.4, neutral 0.
		BackendJapanese2: staticLoader(BackendJapanese2, []float64{0.6, 0.4}, []string{"ポジティブ", "ネガティブ"}),
	})

	got := engine.Infer(context.Background(), "テキスト", domain.LanguageJapanese)
	want := domain.SentimentScores{Positive: 0.7, Negative: 0.25, Neutral: 0.05}
	if !scoresEqual(got, want) {
		t.Errorf("Infer = %+v, want %+v", got, want)
	}
}

func TestInferSurvivesMemberFailure(t *testing.T) {
	engine := newTestEngine(t, map[BackendID]Loader{
		BackendJapanese1: brokenScorerLoader(BackendJapanese1),
		BackendJapanese2: staticLoader(BackendJapanese2, []float64{0.1, 0.7, 0.2}, nil),
	})

	got := engine.Infer(context.Background(), "テキスト", domain.LanguageJapanese)
	want := domain.SentimentScores{Positive: 0.7, Negative: 0.1, Neutral: 0.2}
	if !scoresEqual(got, want) {
		t.Errorf("Infer = %+v, want %+v", got, want)
	}
}

func TestInferFallsBackWhenAllScoringFails(t *testing.T) {
	engine := newTestEngine(t, map[BackendID]Loader{
		BackendMultilingual: brokenScorerLoader(BackendMultilingual),
	})

	got := engine.Infer(context.Background(), "ありがとう", domain.LanguageOther)
	if !scoresEqual(got, fallbackPositive) {
		t.Errorf("Infer = %+v, want positive fallback %+v", got, fallbackPositive)
	}

	got = engine.Infer(context.Background(), "つまらない", domain.LanguageOther)
	if !scoresEqual(got, fallbackNegative) {
		t.Errorf("Infer = %+v, want negative fallback %+v", got, fallbackNegative)
	}
}

func TestFallbackTiesGoPositive(t *testing.T) {
	engine := newTestEngine(t, nil)

	got := engine.Fallback("hello")
	if !scoresEqual(got, fallbackPositive) {
		t.Errorf("Fallback = %+v, want %+v", got, fallbackPositive)
	}
}

func TestInferRoutesMultilingualForOther(t *testing.T) {
	engine := newTestEngine(t, map[BackendID]Loader{
		BackendJapanese1:    staticLoader(BackendJapanese1, []float64{0.9, 0.05, 0.05}, nil),
		BackendMultilingual: staticLoader(BackendMultilingual, []float64{0.1, 0.2, 0.7}, []string{"negative", "neutral", "positive"}),
	})

	got := engine.Infer(context.Background(), "some text", domain.LanguageOther)
	want := domain.SentimentScores{Positive: 0.7, Negative: 0.1, Neutral: 0.2}
	if !scoresEqual(got, want) {
		t.Errorf("Infer = %+v, want %+v", got, want)
	}
}
