// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock exposes optional function fields that
// override behavior per test, with a usable in-memory default underneath.
package mocks
