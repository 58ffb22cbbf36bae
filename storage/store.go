package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// table validates a collection name against the known set before it is
// spliced into SQL.
func table(collection string) (string, error) {
	if _, ok := collectionIndexes[collection]; !ok {
		return "", fmt.Errorf("storage: unknown collection %q", collection)
	}
	return collection, nil
}

// GetAll returns every record in the collection. The store gives no ordering
// guarantee; ordering is the caller's responsibility.
func GetAll(d *sql.DB, collection string) ([]json.RawMessage, error) {
	t, err := table(collection)
	if err != nil {
		return nil, err
	}

	rows, err := d.Query(fmt.Sprintf(`SELECT record FROM %s`, t))
	if err != nil {
		return nil, fmt.Errorf("storage: get all %s: %w", collection, err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("storage: scan %s: %w", collection, err)
		}
		records = append(records, json.RawMessage(raw))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: iterate %s: %w", collection, err)
	}
	return records, nil
}

// Get returns the record with the given id, or ErrNotFound.
func Get(d *sql.DB, collection, id string) (json.RawMessage, error) {
	t, err := table(collection)
	if err != nil {
		return nil, err
	}

	var raw []byte
	err = d.QueryRow(fmt.Sprintf(`SELECT record FROM %s WHERE id = ?`, t), id).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("storage: get %s/%s: %w", collection, id, err)
	}
	return json.RawMessage(raw), nil
}

// Put inserts the record under id or fully replaces the existing one. This is
// the only mutation primitive; partial updates are read-modify-write in the
// caller. The write is a single statement, so it either applies completely or
// not at all.
func Put(d *sql.DB, collection, id string, record interface{}) error {
	t, err := table(collection)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("storage: encode %s/%s: %w", collection, id, err)
	}

	stmt := fmt.Sprintf(`INSERT INTO %s (id, record) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET record = excluded.record`, t)
	if _, err := d.Exec(stmt, id, string(raw)); err != nil {
		return fmt.Errorf("storage: put %s/%s: %w", collection, id, err)
	}
	return nil
}

// Delete removes the record with the given id. Deleting an absent id is not
// an error.
func Delete(d *sql.DB, collection, id string) error {
	t, err := table(collection)
	if err != nil {
		return err
	}

	if _, err := d.Exec(fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, t), id); err != nil {
		return fmt.Errorf("storage: delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// Count reports how many records the collection holds.
func Count(d *sql.DB, collection string) (int, error) {
	t, err := table(collection)
	if err != nil {
		return 0, err
	}

	var n int
	if err := d.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %s`, t)).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: count %s: %w", collection, err)
	}
	return n, nil
}
