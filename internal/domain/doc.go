// Package domain defines the core business entities of the task tracker:
// users, tasks, and the validation rules that keep them consistent.
// It has no dependencies on storage or transport concerns.
package domain
