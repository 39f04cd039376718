package tasks

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ifuaslaerl/contentreset/internal/config"
	"github.com/ifuaslaerl/contentreset/internal/data"
)

// Report is what a reset did, for the operator and for tests.
type Report struct {
	ArticlesFound   int
	ArticlesDeleted int
	DBSkipped       bool
	Before          data.Counts
	After           data.Counts
	FinishedAt      time.Time
}

// Reset implements the content reset.
// 1. Deletes all markdown files in content/articles
// 2. Deletes every row of articles; comments and likes cascade
// Users are counted but never touched. Nothing is backed up.
func Reset(ctx context.Context, paths config.Paths, log *zap.SugaredLogger) (Report, error) {
	var report Report

	log.Warn("RESET: STARTING CONTENT RESET. THIS IS DESTRUCTIVE.")
	log.Infow("RESET: resolved paths",
		"root", paths.Root,
		"articles_dir", paths.ArticlesDir,
		"db", paths.DatabasePath,
	)

	// --- Step 1: Delete Files ---
	found, deleted, err := PurgeArticleFiles(paths.ArticlesDir, log)
	if err != nil {
		return report, err
	}
	report.ArticlesFound = found
	report.ArticlesDeleted = deleted

	// --- Step 2: Purge Database ---
	// A missing database is a fresh install, not an error.
	if !paths.DatabaseExists() {
		log.Infow("RESET: DB does not exist yet; skipping DB purge.", "db", paths.DatabasePath)
		report.DBSkipped = true
	} else {
		before, after, err := PurgeArticleRows(ctx, paths.DatabasePath, log)
		if err != nil {
			return report, err
		}
		report.Before = before
		report.After = after
	}

	report.FinishedAt = time.Now()
	log.Infow("RESET: done", "at", report.FinishedAt.Format(time.RFC3339))

	return report, nil
}
