package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	// ArticlesSubdir holds one markdown file per article.
	ArticlesSubdir = "content/articles"
	// DatabaseSubpath is the SQLite file owned by the blog application.
	DatabaseSubpath = "data/blog.db"
	// ArticlePattern matches article files inside ArticlesSubdir.
	ArticlePattern = "*.md"
)

type EnvVariables struct {
	Root string `env:"BLOG_ROOT"`
}

// Paths are the fixed locations the reset works on, all absolute.
type Paths struct {
	Root         string
	ArticlesDir  string
	DatabasePath string
}

// Load resolves the installation root once. BLOG_ROOT wins when set (a .env
// in the working directory is read first), otherwise the working directory
// is the root.
func Load() (Paths, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Paths{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	envPath := filepath.Join(cwd, ".env")
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return Paths{}, fmt.Errorf("failed to load %s: %w", envPath, err)
		}
	}

	var env EnvVariables
	if err := cleanenv.ReadEnv(&env); err != nil {
		return Paths{}, fmt.Errorf("failed to read environment: %w", err)
	}

	root := env.Root
	if root == "" {
		root = cwd
	}

	return ResolveFrom(root)
}

// ResolveFrom derives Paths from an installation root.
func ResolveFrom(root string) (Paths, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return Paths{}, fmt.Errorf("failed to resolve root %q: %w", root, err)
	}

	return Paths{
		Root:         abs,
		ArticlesDir:  filepath.Join(abs, filepath.FromSlash(ArticlesSubdir)),
		DatabasePath: filepath.Join(abs, filepath.FromSlash(DatabaseSubpath)),
	}, nil
}

// DatabaseExists reports whether the database file is present.
func (p Paths) DatabaseExists() bool {
	_, err := os.Stat(p.DatabasePath)
	return !os.IsNotExist(err)
}

// EnsureDatabaseDir creates the directory holding the database file.
func (p Paths) EnsureDatabaseDir() error {
	return os.MkdirAll(filepath.Dir(p.DatabasePath), 0755)
}
