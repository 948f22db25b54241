package bootstrap

import (
	"context"
	"fmt"

	"github.com/jonesrussell/comment-sentiment/internal/config"
	"github.com/jonesrussell/comment-sentiment/internal/logger"
	"github.com/jonesrussell/comment-sentiment/internal/mlclient"
	"github.com/jonesrussell/comment-sentiment/internal/sentiment"
)

// BuildRegistry creates the backend registry from the configured
// scoring sidecar URLs. Slots with an empty URL are left unregistered
// and never attempted.
func BuildRegistry(cfg *config.Config, log logger.Logger) *sentiment.Registry {
	urls := map[sentiment.BackendID]string{
		sentiment.BackendJapanese1:    cfg.Backends.JAPrimaryURL,
		sentiment.BackendJapanese2:    cfg.Backends.JAIronyURL,
		sentiment.BackendMultilingual: cfg.Backends.MultilingualURL,
	}

	loaders := make(map[sentiment.BackendID]sentiment.Loader)
	for id, url := range urls {
		if url == "" {
			log.Warn("backend URL not configured, skipping", logger.String("backend", string(id)))
			continue
		}
		loaders[id] = backendLoader(id, url, cfg.Classification.MaxTokenLength)
	}

	return sentiment.NewRegistry(loaders, log)
}

// backendLoader returns a Loader that probes the sidecar's health
// endpoint for its model version and label order, then wraps it as a
// scoring backend.
func backendLoader(id sentiment.BackendID, url string, maxTokens int) sentiment.Loader {
	return func(ctx context.Context) (*sentiment.Backend, error) {
		client := mlclient.NewClient(url)

		health, err := client.Health(ctx)
		if err != nil {
			return nil, fmt.Errorf("probe backend %s at %s: %w", id, url, err)
		}

		return sentiment.NewBackend(id, client, health.Labels, health.ModelVersion, maxTokens), nil
	}
}
