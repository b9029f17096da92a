package state

import (
	"database/sql"

	dbutil "github.com/llehouerou/clipnotes/internal/db"
)

const schemaVersion = 1

// maxRecent bounds the recent_posts table.
const maxRecent = 50

const schemaV1 = `
	CREATE TABLE navigation_state (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		category TEXT,
		post_path TEXT,
		section INTEGER
	);

	CREATE TABLE recent_posts (
		path TEXT PRIMARY KEY,
		slug TEXT NOT NULL,
		title TEXT NOT NULL,
		opened_at INTEGER NOT NULL
	);

	CREATE INDEX idx_recent_posts_opened_at ON recent_posts(opened_at DESC);
`

func initSchema(db *sql.DB) error {
	return dbutil.Migrate(db, schemaVersion, schemaV1)
}
