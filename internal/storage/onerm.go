// ABOUTME: One-rep-max tracking with per-date upsert semantics.
// ABOUTME: Re-testing on the same date replaces the value; new dates extend history.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/akontos/liftlog/internal/models"
)

// UpsertOneRepMax records a 1RM for an exercise on a date. An existing
// entry for the exact (user, exercise, date) is updated in place; any
// other date inserts a new historical row. History is never merged
// across dates.
func (d *DB) UpsertOneRepMax(userID int64, exercise string, value float64, date time.Time) error {
	day := date.Format(models.DateLayout)

	res, err := d.db.Exec(`
		UPDATE user_1rm SET one_rep_max = ?
		WHERE user_id = ? AND exercise = ? AND date = ?`,
		value, userID, exercise, day)
	if err != nil {
		return fmt.Errorf("upsert 1rm: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("upsert 1rm: %w", err)
	}
	if affected > 0 {
		return nil
	}

	_, err = d.db.Exec(`
		INSERT INTO user_1rm (user_id, exercise, one_rep_max, date)
		VALUES (?, ?, ?, ?)`,
		userID, exercise, value, day)
	if err != nil {
		return fmt.Errorf("upsert 1rm: %w", err)
	}
	return nil
}

// LatestOneRepMax returns the most recent 1RM entry for an exercise, or
// nil when none has been recorded.
func (d *DB) LatestOneRepMax(userID int64, exercise string) (*models.OneRepMax, error) {
	if userID == 0 {
		return nil, nil
	}

	rows, err := d.db.Query(`
		SELECT id, user_id, exercise, one_rep_max, date
		FROM user_1rm
		WHERE user_id = ? AND exercise = ?
		ORDER BY date DESC
		LIMIT 1`, userID, exercise)
	if err != nil {
		return nil, fmt.Errorf("latest 1rm: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanOneRepMax(rows)
}

// ListOneRepMaxes returns a user's full 1RM history, most recent first.
func (d *DB) ListOneRepMaxes(userID int64) ([]*models.OneRepMax, error) {
	if userID == 0 {
		return nil, nil
	}

	rows, err := d.db.Query(`
		SELECT id, user_id, exercise, one_rep_max, date
		FROM user_1rm
		WHERE user_id = ?
		ORDER BY date DESC, exercise ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list 1rm history: %w", err)
	}
	defer rows.Close()

	var entries []*models.OneRepMax
	for rows.Next() {
		e, err := scanOneRepMax(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanOneRepMax(rows *sql.Rows) (*models.OneRepMax, error) {
	var e models.OneRepMax
	var dateStr string
	if err := rows.Scan(&e.ID, &e.UserID, &e.Exercise, &e.Value, &dateStr); err != nil {
		return nil, fmt.Errorf("scan 1rm: %w", err)
	}
	e.Date, _ = time.Parse(models.DateLayout, dateStr)
	return &e, nil
}
