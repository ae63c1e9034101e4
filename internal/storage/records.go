// ABOUTME: Append and query operations for resistance, mobility, and cardio logs.
// ABOUTME: All queries are scoped by user_id; a missing identity yields empty results.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akontos/liftlog/internal/models"
)

// InsertResistanceSet appends one logged set and writes back its id.
func (d *DB) InsertResistanceSet(s *models.ResistanceSet) error {
	res, err := d.db.Exec(`
		INSERT INTO resistance (user_id, date, week, day, exercise, set_number, target, actual_weight, actual_reps, rir)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.UserID,
		s.Date.Format(models.DateLayout),
		s.Week, s.Day, s.Exercise, s.SetNumber, s.Target,
		s.Weight, s.Reps, s.RIR,
	)
	if err != nil {
		return fmt.Errorf("insert resistance set: %w", err)
	}
	s.ID, _ = res.LastInsertId()
	return nil
}

// InsertResistanceSets appends a session's sets in one transaction.
// An empty batch returns ErrNothingToSave and writes nothing.
func (d *DB) InsertResistanceSets(sets []*models.ResistanceSet) error {
	if len(sets) == 0 {
		return ErrNothingToSave
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("insert resistance sets: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO resistance (user_id, date, week, day, exercise, set_number, target, actual_weight, actual_reps, rir)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("insert resistance sets: %w", err)
	}
	defer stmt.Close()

	for _, s := range sets {
		res, err := stmt.Exec(
			s.UserID,
			s.Date.Format(models.DateLayout),
			s.Week, s.Day, s.Exercise, s.SetNumber, s.Target,
			s.Weight, s.Reps, s.RIR,
		)
		if err != nil {
			return fmt.Errorf("insert resistance set %d: %w", s.SetNumber, err)
		}
		s.ID, _ = res.LastInsertId()
	}

	return tx.Commit()
}

// ListResistanceSets returns a user's sets, most recent date first.
func (d *DB) ListResistanceSets(userID int64) ([]*models.ResistanceSet, error) {
	if userID == 0 {
		return nil, nil
	}

	rows, err := d.db.Query(`
		SELECT id, user_id, date, week, day, exercise, set_number, target, actual_weight, actual_reps, rir
		FROM resistance
		WHERE user_id = ?
		ORDER BY date DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list resistance sets: %w", err)
	}
	defer rows.Close()

	var sets []*models.ResistanceSet
	for rows.Next() {
		s, err := scanResistanceSet(rows)
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	return sets, rows.Err()
}

// FetchLastSet recalls the most recently logged (weight, reps, RIR) for
// an exercise and set number. Returns nil when nothing has been logged
// or no user is given. Rows sharing the most recent date may resolve to
// either row.
func (d *DB) FetchLastSet(exercise string, setNumber int, userID int64) (*models.SetResult, error) {
	if userID == 0 {
		return nil, nil
	}

	var weight sql.NullFloat64
	var reps, rir sql.NullInt64
	err := d.db.QueryRow(`
		SELECT actual_weight, actual_reps, rir
		FROM resistance
		WHERE exercise = ? AND set_number = ? AND user_id = ?
		ORDER BY date DESC
		LIMIT 1`, exercise, setNumber, userID,
	).Scan(&weight, &reps, &rir)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch last set: %w", err)
	}
	return &models.SetResult{
		Weight: weight.Float64,
		Reps:   int(reps.Int64),
		RIR:    int(rir.Int64),
	}, nil
}

// MaxWeightPerDay returns, per logged day, the heaviest weight moved for
// an exercise, in ascending date order. This is the data behind the
// progress chart.
func (d *DB) MaxWeightPerDay(userID int64, exercise string) ([]models.ProgressPoint, error) {
	if userID == 0 {
		return nil, nil
	}

	rows, err := d.db.Query(`
		SELECT date, MAX(actual_weight)
		FROM resistance
		WHERE user_id = ? AND exercise = ?
		GROUP BY date
		ORDER BY date ASC`, userID, exercise)
	if err != nil {
		return nil, fmt.Errorf("max weight per day: %w", err)
	}
	defer rows.Close()

	var points []models.ProgressPoint
	for rows.Next() {
		var dateStr string
		var p models.ProgressPoint
		if err := rows.Scan(&dateStr, &p.Weight); err != nil {
			return nil, fmt.Errorf("scan progress point: %w", err)
		}
		p.Date, _ = time.Parse(models.DateLayout, dateStr)
		points = append(points, p)
	}
	return points, rows.Err()
}

// InsertMobilityEntry appends one mobility-circuit entry.
func (d *DB) InsertMobilityEntry(m *models.MobilityEntry) error {
	res, err := d.db.Exec(`
		INSERT INTO mobility (user_id, date, prep_done, joint_flow_done, animal_circuit_done, cuff_finisher_done)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.UserID,
		m.Date.Format(models.DateLayout),
		boolToInt(m.Prep), boolToInt(m.JointFlow), boolToInt(m.AnimalCircuit), boolToInt(m.CuffFinisher),
	)
	if err != nil {
		return fmt.Errorf("insert mobility entry: %w", err)
	}
	m.ID, _ = res.LastInsertId()
	return nil
}

// ListMobilityEntries returns a user's mobility log, most recent first.
func (d *DB) ListMobilityEntries(userID int64) ([]*models.MobilityEntry, error) {
	if userID == 0 {
		return nil, nil
	}

	rows, err := d.db.Query(`
		SELECT id, user_id, date, prep_done, joint_flow_done, animal_circuit_done, cuff_finisher_done
		FROM mobility
		WHERE user_id = ?
		ORDER BY date DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list mobility entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.MobilityEntry
	for rows.Next() {
		var m models.MobilityEntry
		var dateStr string
		var prep, joint, animal, cuff int
		if err := rows.Scan(&m.ID, &m.UserID, &dateStr, &prep, &joint, &animal, &cuff); err != nil {
			return nil, fmt.Errorf("scan mobility entry: %w", err)
		}
		m.Date, _ = time.Parse(models.DateLayout, dateStr)
		m.Prep = prep != 0
		m.JointFlow = joint != 0
		m.AnimalCircuit = animal != 0
		m.CuffFinisher = cuff != 0
		entries = append(entries, &m)
	}
	return entries, rows.Err()
}

// InsertCardioEntry appends one cardio session.
func (d *DB) InsertCardioEntry(c *models.CardioEntry) error {
	res, err := d.db.Exec(`
		INSERT INTO cardio (user_id, date, type, duration_min, avg_hr)
		VALUES (?, ?, ?, ?, ?)`,
		c.UserID,
		c.Date.Format(models.DateLayout),
		c.Type, c.DurationMin, c.AvgHR,
	)
	if err != nil {
		return fmt.Errorf("insert cardio entry: %w", err)
	}
	c.ID, _ = res.LastInsertId()
	return nil
}

// ListCardioEntries returns a user's cardio log, most recent first.
func (d *DB) ListCardioEntries(userID int64) ([]*models.CardioEntry, error) {
	if userID == 0 {
		return nil, nil
	}

	rows, err := d.db.Query(`
		SELECT id, user_id, date, type, duration_min, avg_hr
		FROM cardio
		WHERE user_id = ?
		ORDER BY date DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list cardio entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.CardioEntry
	for rows.Next() {
		var c models.CardioEntry
		var dateStr string
		if err := rows.Scan(&c.ID, &c.UserID, &dateStr, &c.Type, &c.DurationMin, &c.AvgHR); err != nil {
			return nil, fmt.Errorf("scan cardio entry: %w", err)
		}
		c.Date, _ = time.Parse(models.DateLayout, dateStr)
		entries = append(entries, &c)
	}
	return entries, rows.Err()
}

// ReassignAllRecords repoints every row in every record table to the
// given user, regardless of current owner. One-shot repair used by the
// admin reassign command; normal startup only adopts NULL owners.
func (d *DB) ReassignAllRecords(userID int64) error {
	for _, table := range recordTables {
		stmt := fmt.Sprintf("UPDATE %s SET user_id = ?", table)
		if _, err := d.db.Exec(stmt, userID); err != nil {
			return fmt.Errorf("reassign %s: %w", table, err)
		}
	}
	return nil
}

// scanResistanceSet tolerates NULLs in every non-key column: rows
// written before a column existed are adopted, not rewritten, so they
// still carry NULLs after migration.
func scanResistanceSet(rows *sql.Rows) (*models.ResistanceSet, error) {
	var s models.ResistanceSet
	var date, day, exercise, target sql.NullString
	var week, setNumber, reps, rir sql.NullInt64
	var weight sql.NullFloat64
	err := rows.Scan(&s.ID, &s.UserID, &date, &week, &day, &exercise,
		&setNumber, &target, &weight, &reps, &rir)
	if err != nil {
		return nil, fmt.Errorf("scan resistance set: %w", err)
	}
	s.Date, _ = time.Parse(models.DateLayout, date.String)
	s.Week = int(week.Int64)
	s.Day = day.String
	s.Exercise = exercise.String
	s.SetNumber = 1
	if setNumber.Valid {
		s.SetNumber = int(setNumber.Int64)
	}
	s.Target = target.String
	s.Weight = weight.Float64
	s.Reps = int(reps.Int64)
	s.RIR = int(rir.Int64)
	return &s, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
