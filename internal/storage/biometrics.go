// ABOUTME: Body measurement snapshots (height, weight, sex, age, body fat).
// ABOUTME: Snapshots are append-only; the latest is the max-date row per user.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/akontos/liftlog/internal/models"
)

// InsertBodyMetrics appends a new measurement snapshot.
func (d *DB) InsertBodyMetrics(b *models.BodyMetrics) error {
	res, err := d.db.Exec(`
		INSERT INTO user_metrics (user_id, date, height_cm, weight_kg, sex, age, body_fat_percentage)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.UserID,
		b.Date.Format(models.DateLayout),
		b.HeightCM, b.WeightKG, b.Sex, b.Age, b.BodyFatPct,
	)
	if err != nil {
		return fmt.Errorf("insert body metrics: %w", err)
	}
	b.ID, _ = res.LastInsertId()
	return nil
}

// ListBodyMetrics returns a user's snapshots, most recent date first.
func (d *DB) ListBodyMetrics(userID int64) ([]*models.BodyMetrics, error) {
	if userID == 0 {
		return nil, nil
	}

	rows, err := d.db.Query(`
		SELECT id, user_id, date, height_cm, weight_kg, sex, age, body_fat_percentage
		FROM user_metrics
		WHERE user_id = ?
		ORDER BY date DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list body metrics: %w", err)
	}
	defer rows.Close()

	var snapshots []*models.BodyMetrics
	for rows.Next() {
		b, err := scanBodyMetrics(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, b)
	}
	return snapshots, rows.Err()
}

// LatestBodyMetrics returns the snapshot with the greatest date, or nil
// when the user has never recorded measurements.
func (d *DB) LatestBodyMetrics(userID int64) (*models.BodyMetrics, error) {
	snapshots, err := d.ListBodyMetrics(userID)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, nil
	}
	return snapshots[0], nil
}

func scanBodyMetrics(rows *sql.Rows) (*models.BodyMetrics, error) {
	var b models.BodyMetrics
	var dateStr string
	var bodyFat sql.NullFloat64
	err := rows.Scan(&b.ID, &b.UserID, &dateStr, &b.HeightCM, &b.WeightKG, &b.Sex, &b.Age, &bodyFat)
	if err != nil {
		return nil, fmt.Errorf("scan body metrics: %w", err)
	}
	b.Date, _ = time.Parse(models.DateLayout, dateStr)
	if bodyFat.Valid {
		b.BodyFatPct = &bodyFat.Float64
	}
	return &b, nil
}
