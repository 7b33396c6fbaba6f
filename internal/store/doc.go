// Package store defines the persistence interfaces consumed by the rest of
// the application, along with the sentinel errors those interfaces return.
// Concrete implementations live under internal/platform.
//
// Ownership scoping is part of the TaskStore contract itself: every task
// operation takes the owner's ID and implementations must include it in the
// query predicate, so no code path can touch another user's rows.
package store
