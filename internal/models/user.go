package models

// User is the users table row. PasswordHash is empty for accounts that sign in through Google.
type User struct {
	UserID       int64  `db:"user_id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	AuthProvider string `db:"auth_provider"`
	AuditFields
}
