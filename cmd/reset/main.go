// Command reset wipes a blog installation's content: every article file in
// content/articles and every article row in data/blog.db, together with the
// comments and likes that cascade from them. It takes no arguments.
package main

import (
	"context"
	"os"

	"github.com/ifuaslaerl/contentreset/internal/config"
	"github.com/ifuaslaerl/contentreset/internal/logging"
	"github.com/ifuaslaerl/contentreset/internal/tasks"
)

func main() {
	log := logging.New(os.Stdout)

	paths, err := config.Load()
	if err != nil {
		log.Errorw("RESET ERROR: configuration could not be loaded", "error", err)
		log.Sync()
		os.Exit(1)
	}

	log.Info("=== Reset Content & DB ===")

	if _, err := tasks.Reset(context.Background(), paths, log); err != nil {
		log.Errorw("RESET ERROR: reset aborted", "error", err)
		log.Sync()
		os.Exit(1)
	}

	log.Sync()
}
