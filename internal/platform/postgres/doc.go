// Package postgres provides PostgreSQL implementations of the store
// interfaces, using the pgx stdlib driver through database/sql.
//
// Ownership scoping is enforced in SQL: every task query includes the
// owner's user_id in its WHERE clause, so a row belonging to another user is
// never read, updated, or deleted regardless of what the caller asks for.
package postgres
