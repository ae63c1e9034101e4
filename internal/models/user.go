// ABOUTME: User account model for the training log.
// ABOUTME: Accounts own every logged record via user_id foreign keys.
package models

// User is a registered account. Usernames are unique; only the password
// hash ever changes after signup.
type User struct {
	ID           int64  `json:"id" yaml:"id"`
	Username     string `json:"username" yaml:"username"`
	PasswordHash string `json:"-" yaml:"-"`
}
