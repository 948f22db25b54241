// Command batch analyzes one or more videos from the command line
// without running the HTTP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jonesrussell/comment-sentiment/internal/bootstrap"
	"github.com/jonesrussell/comment-sentiment/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "batch: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	videoID := flag.String("video-id", "", "single video ID to analyze")
	videoIDs := flag.String("video-ids", "", "comma-separated video IDs to analyze")
	commentLimit := flag.Int("comment-limit", 0, "comments per video (default from COMMENT_LIMIT)")
	noCache := flag.Bool("no-cache", false, "skip the JSON cache and fetch fresh data")
	flag.Parse()

	ids := collectIDs(*videoID, *videoIDs)
	if len(ids) == 0 {
		return fmt.Errorf("no video IDs given, use -video-id or -video-ids")
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	log, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	comps, err := bootstrap.NewComponents(cfg, log)
	if err != nil {
		return err
	}
	defer comps.Close()

	limit := *commentLimit
	if limit <= 0 {
		limit = cfg.Fetch.CommentLimit
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	result := comps.Batch.Process(ctx, ids, limit, !*noCache)

	for _, r := range result.Results {
		fmt.Printf("%s: %d comments, positive %.4f negative %.4f (analyzed at %s)\n",
			r.Summary.VideoID,
			r.Summary.TotalComments,
			r.Summary.PositiveRatio,
			r.Summary.NegativeRatio,
			r.Summary.AnalyzedAt.Format("2006-01-02 15:04:05"),
		)
	}

	log.Info("batch finished",
		logger.Int("succeeded", result.Succeeded),
		logger.Int("failed", result.Failed),
	)
	if result.Succeeded == 0 && result.Failed > 0 {
		return fmt.Errorf("all %d videos failed", result.Failed)
	}
	return nil
}

func collectIDs(single, list string) []string {
	var ids []string
	if single != "" {
		ids = append(ids, single)
	}
	for _, id := range strings.Split(list, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
