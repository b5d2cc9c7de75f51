package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists dataset rows in a SQLite database. It is a loading
// and seeding layer: per-dataset reads materialize an immutable MemoryStore
// that the pipeline queries, so no database access happens inside a run.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path with WAL mode enabled
// and the schema initialized.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS rows (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	dataset TEXT NOT NULL,
	location TEXT NOT NULL,
	location_type TEXT NOT NULL,
	timestamp TEXT NOT NULL,
	timestamp_type TEXT NOT NULL,
	agent TEXT,
	agent_type TEXT,
	values_json TEXT NOT NULL,
	outlierness_json TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_rows_dataset ON rows(dataset);
CREATE INDEX IF NOT EXISTS idx_rows_dataset_location ON rows(dataset, location);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Put replaces the stored rows for a dataset.
func (s *SQLiteStore) Put(ctx context.Context, dataset string, rows []Row) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM rows WHERE dataset = ?", dataset); err != nil {
		return fmt.Errorf("clear dataset %s: %w", dataset, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO rows (dataset, location, location_type, timestamp, timestamp_type,
	agent, agent_type, values_json, outlierness_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		valuesJSON, err := json.Marshal(r.Values)
		if err != nil {
			return fmt.Errorf("marshal values: %w", err)
		}
		outliernessJSON, err := json.Marshal(r.Outlierness)
		if err != nil {
			return fmt.Errorf("marshal outlierness: %w", err)
		}
		if _, err := stmt.ExecContext(ctx,
			dataset, r.Location, r.LocationType, r.Timestamp, r.TimestampType,
			r.Agent, r.AgentType, string(valuesJSON), string(outliernessJSON),
		); err != nil {
			return fmt.Errorf("insert row: %w", err)
		}
	}

	return tx.Commit()
}

// Dataset loads every row of a dataset into an in-memory store.
func (s *SQLiteStore) Dataset(ctx context.Context, dataset string) (*MemoryStore, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT location, location_type, timestamp, timestamp_type, agent, agent_type,
	values_json, outlierness_json
FROM rows WHERE dataset = ? ORDER BY id`, dataset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var valuesJSON, outliernessJSON string
		var agent, agentType sql.NullString
		if err := rows.Scan(&r.Location, &r.LocationType, &r.Timestamp, &r.TimestampType,
			&agent, &agentType, &valuesJSON, &outliernessJSON); err != nil {
			return nil, err
		}
		r.Agent = agent.String
		r.AgentType = agentType.String
		if err := json.Unmarshal([]byte(valuesJSON), &r.Values); err != nil {
			return nil, fmt.Errorf("unmarshal values: %w", err)
		}
		if err := json.Unmarshal([]byte(outliernessJSON), &r.Outlierness); err != nil {
			return nil, fmt.Errorf("unmarshal outlierness: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return NewMemoryStore(out), nil
}

// Datasets returns the distinct dataset names present in the database.
func (s *SQLiteStore) Datasets(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT dataset FROM rows ORDER BY dataset")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
