package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-trade-journal/internal/config"
	"github.com/MKhiriev/go-trade-journal/internal/logger"
)

// NewConnectSQLite opens the journal database described by cfg.DSN.
//
// For file DSNs the parent directory is created first. The pool is capped at
// a single connection: SQLite has one writer, and ":memory:" databases exist
// per connection.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if path, ok := dbFilePath(cfg.DSN); ok {
		if err := createLocalDBDirIfNotExists(path); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
			return nil, unavailable(ErrOpeningDatabase, err)
		}
	}

	conn, err := sql.Open("sqlite3", withBusyTimeout(cfg.DSN, cfg.BusyTimeout))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening database")
		return nil, unavailable(ErrOpeningDatabase, err)
	}
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, unavailable(ErrOpeningDatabase, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", cfg.DSN).Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		dsn:    cfg.DSN,
		logger: log,
	}, nil
}

// Destroy closes the connection and deletes the database file together with
// its journal side files. In-memory databases vanish with the connection.
// The DB is unusable afterwards.
func (db *DB) Destroy() error {
	closeErr := db.Close()
	if closeErr != nil {
		db.logger.Err(closeErr).Str("func", "DB.Destroy").Msg("error closing database before wipe")
	}

	path, ok := dbFilePath(db.dsn)
	if !ok {
		return nil
	}

	for _, p := range []string{path, path + "-journal", path + "-wal", path + "-shm"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			db.logger.Err(err).Str("func", "DB.Destroy").Str("path", p).Msg("error removing database file")
			return unavailable(ErrRemovingDatabase, err)
		}
	}

	db.logger.Info().Str("func", "DB.Destroy").Str("path", path).Msg("database wiped")
	return nil
}

// dbFilePath returns the file behind a DSN, or false for in-memory DSNs.
// Both plain paths and "file:" URIs with query parameters are understood.
func dbFilePath(dsn string) (string, bool) {
	if isInMemory(dsn) {
		return "", false
	}

	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "", false
	}
	return path, true
}

// withBusyTimeout appends the go-sqlite3 _busy_timeout parameter unless the
// DSN already sets one.
func withBusyTimeout(dsn string, timeout time.Duration) string {
	if timeout <= 0 || strings.Contains(dsn, "_busy_timeout=") || strings.Contains(dsn, "_timeout=") {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_busy_timeout=" + strconv.FormatInt(timeout.Milliseconds(), 10)
}

func isInMemory(dsn string) bool {
	return dsn == "" ||
		strings.Contains(dsn, ":memory:") ||
		strings.Contains(dsn, "mode=memory")
}

func createLocalDBDirIfNotExists(dbFile string) error {
	dir := filepath.Dir(dbFile)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("error creating DB directory: %w", err)
	}
	return nil
}
