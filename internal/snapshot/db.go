package snapshot

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite"
)

// Config locates the workspace whose working set is persisted.
type Config struct {
	Workspace string
}

//go:embed sql/*.sql
var schemaFS embed.FS

// EnsureWorkspace creates the .visitas360 data dir under the workspace
// and returns its path.
func EnsureWorkspace(workspace string) (string, error) {
	if workspace == "" {
		workspace = "."
	}
	dir := filepath.Join(workspace, ".visitas360")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Open opens the snapshot database for the workspace, creating the data
// dir on first use. Foreign keys are enabled per connection.
func Open(cfg Config) (*sql.DB, error) {
	dir, err := EnsureWorkspace(cfg.Workspace)
	if err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=foreign_keys(1)", filepath.Join(dir, "visitas360.db"))
	return sql.Open("sqlite", dsn)
}

// Migrate brings the snapshot schema up to date. The applied version
// lives in SQLite's user_version pragma; each embedded sql file is one
// step, ordered by filename.
func Migrate(db *sql.DB) error {
	steps, err := fs.Glob(schemaFS, "sql/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(steps)

	var current int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&current); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	for i, step := range steps {
		version := i + 1
		if version <= current {
			continue
		}
		ddl, err := schemaFS.ReadFile(step)
		if err != nil {
			return err
		}
		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(ddl)); err != nil {
			tx.Rollback()
			return fmt.Errorf("apply %s: %w", step, err)
		}
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
			tx.Rollback()
			return fmt.Errorf("record %s: %w", step, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}
