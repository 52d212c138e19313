// Package persistence implements the job bookkeeping repositories on top of
// GORM, with SQLite and PostgreSQL backends.
package persistence
