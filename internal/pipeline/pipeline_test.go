package pipeline_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jonesrussell/comment-sentiment/internal/domain"
	"github.com/jonesrussell/comment-sentiment/internal/language"
	"github.com/jonesrussell/comment-sentiment/internal/logger"
	"github.com/jonesrussell/comment-sentiment/internal/pipeline"
	"github.com/jonesrussell/comment-sentiment/internal/sentiment"
	"github.com/jonesrussell/comment-sentiment/internal/telemetry"
)

// One provider per test binary: promauto registers metrics globally and
// a second Provider would panic on duplicate registration.
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

type staticScorer struct {
	scores []float64
	err    error
}

func (s *staticScorer) Score(_ context.Context, _ string, _ int) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.scores, nil
}

func staticLoader(id sentiment.BackendID, scores []float64) sentiment.Loader {
	return func(_ context.Context) (*sentiment.Backend, error) {
		return sentiment.NewBackend(id, &staticScorer{scores: scores}, nil, "v1", 128), nil
	}
}

func newTestPipeline(t *testing.T, loaders map[sentiment.BackendID]sentiment.Loader, opts pipeline.Options) *pipeline.Pipeline {
	t.Helper()
	log := logger.NewNop()
	matcher := sentiment.NewMatcher()
	registry := sentiment.NewRegistry(loaders, log)
	tel := getTestProvider(t)
	engine := sentiment.NewEngine(registry, matcher, tel, log)
	adjuster := sentiment.NewAdjuster(matcher, tel, log)
	router := language.NewRouter(log)
	return pipeline.New(router, engine, adjuster, registry, getTestProvider(t), log, opts)
}

func allLoaders() map[sentiment.BackendID]sentiment.Loader {
	return map[sentiment.BackendID]sentiment.Loader{
		sentiment.BackendJapanese1:    staticLoader(sentiment.BackendJapanese1, []float64{0.1, 0.7, 0.2}),
		sentiment.BackendJapanese2:    staticLoader(sentiment.BackendJapanese2, []float64{0.1, 0.7, 0.2}),
		sentiment.BackendMultilingual: staticLoader(sentiment.BackendMultilingual, []float64{0.1, 0.7, 0.2}),
	}
}

func TestClassifyEmptyText(t *testing.T) {
	p := newTestPipeline(t, allLoaders(), pipeline.Options{})

	for _, text := range []string{"", "   ", "https://example.com"} {
		scores, err := p.Classify(context.Background(), text)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := domain.UniformScores(domain.LanguageUnknown)
		if scores != want {
			t.Errorf("Classify(%q) = %+v, want uniform unknown", text, scores)
		}
	}
}

func TestClassifySetsLanguage(t *testing.T) {
	p := newTestPipeline(t, allLoaders(), pipeline.Options{})

	scores, err := p.Classify(context.Background(), "これはすごい")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scores.Language != domain.LanguageJapanese {
		t.Errorf("language = %q, want ja", scores.Language)
	}
	if !(&scores).Valid() {
		t.Errorf("scores should form a distribution, got %+v", scores)
	}
}

func TestClassifyNoBackends(t *testing.T) {
	failing := map[sentiment.BackendID]sentiment.Loader{
		sentiment.BackendMultilingual: func(_ context.Context) (*sentiment.Backend, error) {
			return nil, errors.New("unreachable")
		},
	}

	p := newTestPipeline(t, failing, pipeline.Options{})
	_, err := p.Classify(context.Background(), "some text here")
	if !errors.Is(err, pipeline.ErrNoBackendsAvailable) {
		t.Fatalf("expected ErrNoBackendsAvailable, got %v", err)
	}
}

func TestClassifyBatchFailsAtomically(t *testing.T) {
	failing := map[sentiment.BackendID]sentiment.Loader{
		sentiment.BackendMultilingual: func(_ context.Context) (*sentiment.Backend, error) {
			return nil, errors.New("unreachable")
		},
	}

	p := newTestPipeline(t, failing, pipeline.Options{})
	got, err := p.ClassifyBatch(context.Background(), []domain.Comment{
		{CommentID: "c1", Text: "good"},
		{CommentID: "c2", Text: "bad"},
	})
	if !errors.Is(err, pipeline.ErrNoBackendsAvailable) {
		t.Fatalf("expected ErrNoBackendsAvailable, got %v", err)
	}
	if got != nil {
		t.Error("expected no partial results")
	}
}

func TestClassifyBatchRulesOnlyFallback(t *testing.T) {
	failing := map[sentiment.BackendID]sentiment.Loader{
		sentiment.BackendMultilingual: func(_ context.Context) (*sentiment.Backend, error) {
			return nil, errors.New("unreachable")
		},
	}

	p := newTestPipeline(t, failing, pipeline.Options{RulesOnlyFallback: true})
	got, err := p.ClassifyBatch(context.Background(), []domain.Comment{
		{CommentID: "c1", Text: "ありがとう"},
		{CommentID: "c2", Text: "つまらない"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	for i, c := range got {
		if c.Sentiment == nil {
			t.Fatalf("comment %d has no sentiment", i)
		}
		if !c.Sentiment.Valid() {
			t.Errorf("comment %d sentiment invalid: %+v", i, c.Sentiment)
		}
	}
	if got[0].Sentiment.Positive <= got[1].Sentiment.Positive {
		t.Error("expected lexicon to rank thanks above boredom")
	}
}

func TestClassifyBatchPreservesOrder(t *testing.T) {
	texts := []string{
		"これはすごい",
		"the best video that they have made",
		"最悪だった",
		"el mejor video que he visto",
	}
	wantLangs := []domain.Language{
		domain.LanguageJapanese,
		domain.LanguageOther,
		domain.LanguageJapanese,
		domain.LanguageOther,
	}

	comments := make([]domain.Comment, len(texts))
	for i, text := range texts {
		comments[i] = domain.Comment{CommentID: string(rune('a' + i)), Text: text}
	}

	p := newTestPipeline(t, allLoaders(), pipeline.Options{Concurrency: 4})
	got, err := p.ClassifyBatch(context.Background(), comments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(texts) {
		t.Fatalf("expected %d results, got %d", len(texts), len(got))
	}

	for i := range got {
		if got[i].Text != texts[i] {
			t.Errorf("result %d reordered: %q", i, got[i].Text)
		}
		if got[i].Sentiment == nil {
			t.Fatalf("result %d has no sentiment", i)
		}
		if got[i].Sentiment.Language != wantLangs[i] {
			t.Errorf("result %d language = %q, want %q", i, got[i].Sentiment.Language, wantLangs[i])
		}
	}
}
