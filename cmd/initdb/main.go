// Command initdb creates data/blog.db with the blog schema if it is not
// there yet and prints the table counts.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ifuaslaerl/contentreset/internal/config"
	"github.com/ifuaslaerl/contentreset/internal/data"
	"github.com/ifuaslaerl/contentreset/internal/logging"
)

func main() {
	log := logging.New(os.Stdout)

	if err := run(context.Background(), log); err != nil {
		log.Errorw("INIT ERROR: database initialization failed", "error", err)
		log.Sync()
		os.Exit(1)
	}

	log.Sync()
}

func run(ctx context.Context, log *zap.SugaredLogger) (err error) {
	paths, err := config.Load()
	if err != nil {
		return err
	}

	if err := paths.EnsureDatabaseDir(); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	if paths.DatabaseExists() {
		log.Infow("INIT: database file already exists; applying missing tables only", "db", paths.DatabasePath)
	} else {
		log.Infow("INIT: creating database", "db", paths.DatabasePath)
	}

	db, err := data.Create(ctx, paths.DatabasePath)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, db.Close())
	}()

	if err = data.EnableForeignKeys(ctx, db); err != nil {
		return err
	}
	if err = data.ApplySchema(ctx, db); err != nil {
		return err
	}

	counts, err := data.CountRows(ctx, db)
	if err != nil {
		return err
	}

	info, err := os.Stat(paths.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to stat database: %w", err)
	}

	log.Infow("INIT: SUCCESS: schema ready",
		"counts", counts.Map(),
		"size", humanize.Bytes(uint64(info.Size())),
	)

	return nil
}
