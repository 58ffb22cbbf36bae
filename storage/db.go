package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SchemaVersion is bumped whenever OpenOrCreate learns a new collection or
// index. Upgrades only ever add; existing records are never touched.
const SchemaVersion = 1

// Collection names. Every record collection is independently keyed by a
// unique string id.
const (
	CollectionEstimates = "estimates"
	CollectionItems     = "items"
	CollectionTemplates = "templates"
	CollectionSettings  = "settings"
)

// ErrNotFound signals a point lookup for an id that is not in the collection.
var ErrNotFound = errors.New("storage: record not found")

// collectionIndexes lists the secondary lookup indexes per collection. All
// indexes are non-unique; multiple records may share a value.
var collectionIndexes = map[string][]string{
	CollectionEstimates: {"date", "status"},
	CollectionItems:     {"name", "category", "type", "active"},
	CollectionTemplates: {"name", "category"},
	CollectionSettings:  nil,
}

// InitDB opens the database named by DB_PATH. A store that cannot be opened
// must not take the application down: it falls back to an in-memory database
// so the caller can seed defaults and stay usable, losing only durability.
func InitDB() *sql.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "estimator.db"
	}

	d, err := Open(path)
	if err != nil {
		log.Printf("[storage] open %s failed: %v; falling back to in-memory store", path, err)
		d, err = Open(":memory:")
		if err != nil {
			log.Fatal("Failed to open in-memory store:", err)
		}
	}
	return d
}

// Open opens (or creates) the database at path and ensures the schema is in
// place at the current SchemaVersion.
func Open(path string) (*sql.DB, error) {
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}

	// SQLite allows a single writer; more connections only buy lock errors.
	d.SetMaxOpenConns(1)

	if err := d.Ping(); err != nil {
		d.Close()
		return nil, fmt.Errorf("storage: ping: %w", err)
	}
	if err := OpenOrCreate(d, SchemaVersion); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

// OpenOrCreate idempotently ensures every collection and its indexes exist.
// Safe to call repeatedly; re-creating an existing collection is a no-op and
// a version bump never destroys data.
func OpenOrCreate(d *sql.DB, schemaVersion int) error {
	var current int
	if err := d.QueryRow(`PRAGMA user_version`).Scan(&current); err != nil {
		return fmt.Errorf("storage: read schema version: %w", err)
	}

	for name, keys := range collectionIndexes {
		stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			record TEXT NOT NULL
		)`, name)
		if _, err := d.Exec(stmt); err != nil {
			return fmt.Errorf("storage: create collection %s: %w", name, err)
		}
		for _, key := range keys {
			stmt := fmt.Sprintf(
				`CREATE INDEX IF NOT EXISTS idx_%s_%s ON %s (json_extract(record, '$.%s'))`,
				name, key, name, key,
			)
			if _, err := d.Exec(stmt); err != nil {
				return fmt.Errorf("storage: create index %s.%s: %w", name, key, err)
			}
		}
	}

	if schemaVersion > current {
		if _, err := d.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, schemaVersion)); err != nil {
			return fmt.Errorf("storage: set schema version: %w", err)
		}
	}
	return nil
}
