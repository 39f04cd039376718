package tasks

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ifuaslaerl/contentreset/internal/config"
)

var ErrArticlesDirMissing = errors.New("articles directory not found")

// removeFile is swapped in tests to simulate failures.
var removeFile = os.Remove

// PurgeArticleFiles deletes every article file directly inside dir.
// Subdirectories, hidden files and other extensions are left alone. A file
// that cannot be removed is logged and skipped.
func PurgeArticleFiles(dir string, log *zap.SugaredLogger) (found, deleted int, err error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) || (err == nil && !info.IsDir()) {
		return 0, 0, fmt.Errorf("%w: %s", ErrArticlesDirMissing, dir)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("could not stat articles directory %s: %w", dir, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, 0, fmt.Errorf("could not read articles directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if ok, _ := filepath.Match(config.ArticlePattern, entry.Name()); ok {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	log.Infof("PURGE: Found %d article file(s). Deleting...", len(files))

	for _, path := range files {
		if err := removeFile(path); err != nil {
			log.Warnw("PURGE WARNING: Failed to delete file", "path", path, "error", err)
			continue
		}
		deleted++
	}

	log.Infof("PURGE: Deleted %d of %d article file(s).", deleted, len(files))

	return len(files), deleted, nil
}
