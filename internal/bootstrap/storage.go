package bootstrap

import (
	"context"

	es "github.com/elastic/go-elasticsearch/v8"

	"github.com/jonesrussell/comment-sentiment/internal/config"
	"github.com/jonesrussell/comment-sentiment/internal/logger"
	"github.com/jonesrussell/comment-sentiment/internal/storage"
)

// SetupElasticsearch creates optional Elasticsearch storage for search
// indexing. Returns nil when disabled or unreachable; the service runs
// without it.
func SetupElasticsearch(cfg *config.Config, log logger.Logger) *storage.ElasticsearchStorage {
	if !cfg.Elasticsearch.Enabled {
		return nil
	}

	client, err := es.NewClient(es.Config{
		Addresses: []string{cfg.Elasticsearch.URL},
		Username:  cfg.Elasticsearch.Username,
		Password:  cfg.Elasticsearch.Password,
	})
	if err != nil {
		log.Warn("failed to create Elasticsearch client", logger.Error(err))
		log.Info("search indexing will not be available")
		return nil
	}

	esStorage := storage.NewElasticsearchStorage(client, cfg.Elasticsearch.Index)
	if err := esStorage.TestConnection(context.Background()); err != nil {
		log.Warn("failed to verify Elasticsearch connection", logger.Error(err))
		log.Info("search indexing will not be available")
		return nil
	}

	log.Info("Elasticsearch connected", logger.String("url", cfg.Elasticsearch.URL))
	return esStorage
}
