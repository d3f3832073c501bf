// Package sqlerr specifically handles database driver errors.
//
// It parses the SQLSTATE codes reported by PostgreSQL and converts
// them into client-facing errors (e.g., a unique violation on
// users.email becomes a 400 USER_ALREADY_EXISTS).
package sqlerr
