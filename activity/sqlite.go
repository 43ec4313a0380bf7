package activity

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ayoisaiah/zenfocus/internal/apperr"
)

//go:embed migrations/*.sql
var migrations embed.FS

var (
	errOpenDB = &apperr.Error{
		Message: "unable to open the activity database",
	}

	errMigrate = &apperr.Error{
		Message: "unable to apply migration %s",
	}
)

// OpenSQLite opens the database at path, creating its directory if needed,
// and brings the schema up to date.
func OpenSQLite(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, errOpenDB.Wrap(err)
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, errOpenDB.Wrap(err)
	}

	// single writer
	db.SetMaxOpenConns(1)

	if err := migrate(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// migrate applies the embedded migrations the database has not seen yet.
// The schema version is the number of applied files, kept in user_version.
func migrate(ctx context.Context, db *sql.DB) error {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return errOpenDB.Wrap(err)
	}

	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return errOpenDB.Wrap(err)
	}

	// fs.Glob returns names in lexical order
	for i := version; i < len(files); i++ {
		name := filepath.Base(files[i])

		if err := applyMigration(ctx, db, files[i], i+1); err != nil {
			return errMigrate.Fmt(name).Wrap(err)
		}
	}

	return nil
}

func applyMigration(ctx context.Context, db *sql.DB, file string, version int) error {
	content, err := migrations.ReadFile(file)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		return err
	}

	// PRAGMA does not accept bound parameters
	if _, err := tx.ExecContext(ctx, "PRAGMA user_version = "+strconv.Itoa(version)); err != nil {
		return err
	}

	return tx.Commit()
}
