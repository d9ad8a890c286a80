package history

import "database/sql"

const SchemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS runs (
  run_id           TEXT PRIMARY KEY,
  schema_version   INTEGER NOT NULL,
  ts_utc           TEXT NOT NULL,
  file_count       INTEGER NOT NULL,
  parse_failures   INTEGER NOT NULL,
  diagnostic_count INTEGER NOT NULL,
  duration_ms      INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs (ts_utc);
`

func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
