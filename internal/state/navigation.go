package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/clipnotes/internal/db"
)

// NavigationState is where the reader was. Playback position is never
// stored.
type NavigationState struct {
	Category string // post list filter, "" for all
	PostPath string // open post, "" when on the list
	Section  int    // focused section of the open post, -1 if none
}

func getNavigation(db *sql.DB) (*NavigationState, error) {
	row := db.QueryRow(`
		SELECT category, post_path, section
		FROM navigation_state WHERE id = 1
	`)

	var category, postPath sql.Null[string]
	var section sql.Null[int64]

	err := row.Scan(&category, &postPath, &section)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	return &NavigationState{
		Category: dbutil.ValueOr(category, ""),
		PostPath: dbutil.ValueOr(postPath, ""),
		Section:  int(dbutil.ValueOr(section, -1)),
	}, nil
}

func saveNavigation(db *sql.DB, state NavigationState) error {
	section := dbutil.NullIf(int64(state.Section), state.Section < 0)

	_, err := db.Exec(`
		INSERT INTO navigation_state (id, category, post_path, section)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			category = excluded.category,
			post_path = excluded.post_path,
			section = excluded.section
	`, state.Category, state.PostPath, section)

	return err
}
