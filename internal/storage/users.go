// ABOUTME: User account operations: signup, lookup, password changes.
// ABOUTME: Passwords are stored as unsalted SHA-256 digests for legacy compatibility.
package storage

import (
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/akontos/liftlog/internal/models"
)

// HashPassword returns the hex SHA-256 digest of a password.
//
// The digest is unsalted so that hashes written by earlier versions of
// the tracker keep verifying. Do not reuse this scheme elsewhere; a new
// deployment should move to a salted, slow KDF.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether candidate hashes to storedHash.
// The comparison is constant-time.
func VerifyPassword(storedHash, candidate string) bool {
	digest := HashPassword(candidate)
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(digest)) == 1
}

// CreateUser registers a new account and returns its id.
// A duplicate username returns ErrUsernameTaken.
func (d *DB) CreateUser(username, password string) (int64, error) {
	res, err := d.db.Exec(
		"INSERT INTO users (username, password_hash) VALUES (?, ?)",
		username, HashPassword(password),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrUsernameTaken
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// GetUser retrieves an account by username, or ErrNotFound.
func (d *DB) GetUser(username string) (*models.User, error) {
	var u models.User
	err := d.db.QueryRow(
		"SELECT id, username, password_hash FROM users WHERE username = ?",
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// ListUsers returns all accounts ordered by id ascending.
func (d *DB) ListUsers() ([]*models.User, error) {
	rows, err := d.db.Query("SELECT id, username, password_hash FROM users ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

// UpdatePassword overwrites a user's password hash. It succeeds even
// when no row matched the id; callers wanting existence checks should
// resolve the user first.
func (d *DB) UpdatePassword(userID int64, newPassword string) error {
	_, err := d.db.Exec(
		"UPDATE users SET password_hash = ? WHERE id = ?",
		HashPassword(newPassword), userID,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
