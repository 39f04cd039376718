package tasks

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ifuaslaerl/contentreset/internal/data"
)

// PurgeArticleRows empties the articles table of the database at path and
// returns the row counts around the delete. The connection is released on
// every return path; a failure to release is part of the returned error.
func PurgeArticleRows(ctx context.Context, path string, log *zap.SugaredLogger) (before, after data.Counts, err error) {
	db, err := data.Open(path)
	if err != nil {
		return before, after, err
	}
	defer func() {
		err = multierr.Append(err, db.Close())
	}()

	conn, err := db.Conn(ctx)
	if err != nil {
		return before, after, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer func() {
		err = multierr.Append(err, conn.Close())
	}()

	if err = data.EnableForeignKeys(ctx, conn); err != nil {
		return before, after, err
	}

	// A database without the blog tables is not ours to touch.
	if err = data.CheckTables(ctx, conn); err != nil {
		return before, after, err
	}

	before, err = data.CountRows(ctx, conn)
	if err != nil {
		return before, after, err
	}
	log.Infow("PURGE: DB counts before", "counts", before.Map())

	removed, err := data.DeleteAllArticles(ctx, conn)
	if err != nil {
		return before, after, err
	}
	log.Infof("PURGE: Deleted %d article row(s).", removed)

	after, err = data.CountRows(ctx, conn)
	if err != nil {
		return before, after, err
	}
	log.Infow("PURGE: DB counts after", "counts", after.Map())

	return before, after, nil
}
