// ABOUTME: SQLite schema creation and additive column migration.
// ABOUTME: Introspects existing tables and only applies missing columns.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// createTables holds the full current definition of every table.
// Schema evolution is purely additive: columns are only ever added.
var createTables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS resistance (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER,
		date TEXT,
		week INTEGER,
		day TEXT,
		exercise TEXT,
		set_number INTEGER DEFAULT 1,
		target TEXT,
		actual_weight REAL,
		actual_reps INTEGER,
		rir INTEGER,
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS mobility (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER,
		date TEXT,
		prep_done INTEGER,
		joint_flow_done INTEGER,
		animal_circuit_done INTEGER,
		cuff_finisher_done INTEGER,
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS cardio (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER,
		date TEXT,
		type TEXT,
		duration_min INTEGER,
		avg_hr INTEGER,
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS user_metrics (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER,
		date TEXT NOT NULL,
		height_cm REAL,
		weight_kg REAL,
		sex TEXT,
		age INTEGER,
		body_fat_percentage REAL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS user_1rm (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER,
		exercise TEXT NOT NULL,
		one_rep_max REAL NOT NULL,
		date TEXT NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id),
		UNIQUE (user_id, exercise, date)
	)`,
}

// wantColumns lists, per table, columns that older databases may lack.
// Each is added by an ALTER TABLE only when introspection shows it
// missing, so repeated startups are no-ops.
var wantColumns = map[string][]struct {
	name string
	ddl  string
}{
	"resistance": {
		{name: "set_number", ddl: "INTEGER DEFAULT 1"},
		{name: "user_id", ddl: "INTEGER"},
	},
	"mobility": {
		{name: "user_id", ddl: "INTEGER"},
	},
	"cardio": {
		{name: "user_id", ddl: "INTEGER"},
	},
	"user_metrics": {
		{name: "user_id", ddl: "INTEGER"},
	},
	"user_1rm": {
		{name: "user_id", ddl: "INTEGER"},
	},
}

// recordTables are the tables that carry a user_id foreign key.
var recordTables = []string{"resistance", "mobility", "cardio", "user_metrics", "user_1rm"}

// initSchema creates or upgrades the database schema without destroying
// existing data, then adopts any orphaned legacy rows.
func (d *DB) initSchema() error {
	for _, ddl := range createTables {
		if _, err := d.db.Exec(ddl); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	for table, cols := range wantColumns {
		existing, err := d.tableColumns(table)
		if err != nil {
			return err
		}
		for _, col := range cols {
			if existing[col.name] {
				continue
			}
			stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, col.name, col.ddl)
			if _, err := d.db.Exec(stmt); err != nil {
				return fmt.Errorf("add column %s.%s: %w", table, col.name, err)
			}
		}
	}

	return d.adoptOrphanRows()
}

// tableColumns returns the set of column names a table currently has.
func (d *DB) tableColumns(table string) (map[string]bool, error) {
	rows, err := d.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("introspect %s: %w", table, err)
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			dfltValue  any
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dfltValue, &primaryKey); err != nil {
			return nil, fmt.Errorf("scan table_info for %s: %w", table, err)
		}
		cols[name] = true
	}
	return cols, rows.Err()
}

// adoptOrphanRows assigns record rows with a NULL user_id to the
// earliest-created user. Orphans predate multi-user support; they are
// reassigned, never deleted. Runs on every startup once a user exists.
func (d *DB) adoptOrphanRows() error {
	var firstUser int64
	err := d.db.QueryRow("SELECT id FROM users ORDER BY id LIMIT 1").Scan(&firstUser)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("find first user: %w", err)
	}

	for _, table := range recordTables {
		stmt := fmt.Sprintf("UPDATE %s SET user_id = ? WHERE user_id IS NULL", table)
		if _, err := d.db.Exec(stmt, firstUser); err != nil {
			return fmt.Errorf("adopt orphan rows in %s: %w", table, err)
		}
	}
	return nil
}
