package state

import (
	"database/sql"
	"time"

	dbutil "github.com/llehouerou/clipnotes/internal/db"
)

// RecentPost is one entry of the reading history.
type RecentPost struct {
	Path     string
	Slug     string
	Title    string
	OpenedAt time.Time
}

// addRecent records p, moving it to the top if already present, and trims
// the history to maxRecent entries.
func addRecent(db *sql.DB, p RecentPost) error {
	if p.OpenedAt.IsZero() {
		p.OpenedAt = time.Now()
	}
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO recent_posts (path, slug, title, opened_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(path) DO UPDATE SET
				slug = excluded.slug,
				title = excluded.title,
				opened_at = excluded.opened_at
		`, p.Path, p.Slug, p.Title, p.OpenedAt.UnixNano())
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			DELETE FROM recent_posts WHERE path NOT IN (
				SELECT path FROM recent_posts ORDER BY opened_at DESC LIMIT ?
			)
		`, maxRecent)
		return err
	})
}

// recentPosts returns up to limit entries, most recent first.
func recentPosts(db *sql.DB, limit int) ([]RecentPost, error) {
	if limit <= 0 {
		limit = maxRecent
	}
	rows, err := db.Query(`
		SELECT path, slug, title, opened_at
		FROM recent_posts ORDER BY opened_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecentPost
	for rows.Next() {
		var p RecentPost
		var openedAt int64
		if err := rows.Scan(&p.Path, &p.Slug, &p.Title, &openedAt); err != nil {
			return nil, err
		}
		p.OpenedAt = time.Unix(0, openedAt)
		out = append(out, p)
	}
	return out, rows.Err()
}
