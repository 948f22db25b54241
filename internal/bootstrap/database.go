package bootstrap

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/comment-sentiment/internal/config"
	"github.com/jonesrussell/comment-sentiment/internal/database"
	"github.com/jonesrussell/comment-sentiment/internal/logger"
)

// DatabaseComponents holds the database connection and repositories.
type DatabaseComponents struct {
	DB        *sqlx.DB
	Videos    *database.VideosRepository
	Summaries *database.SummariesRepository
}

// SetupDatabase connects to PostgreSQL, runs pending migrations, and
// builds the repositories.
func SetupDatabase(cfg *config.Config, log logger.Logger) (*DatabaseComponents, error) {
	log.Info("connecting to PostgreSQL database",
		logger.String("host", cfg.Database.Host),
		logger.Int("port", cfg.Database.Port),
		logger.String("database", cfg.Database.Database),
	)

	db, err := database.NewPostgresConnection(cfg.Database.DSN(), database.PoolSettings{
		MaxOpenConns:    cfg.Database.MaxConnections,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := database.RunMigrations(db, cfg.Database.MigrationsPath, log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	log.Info("database connected")

	return &DatabaseComponents{
		DB:        db,
		Videos:    database.NewVideosRepository(db),
		Summaries: database.NewSummariesRepository(db),
	}, nil
}
