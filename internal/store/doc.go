// Package store provides a generic, uniquely-keyed in-memory collection
// for entities with an integer identifier. It enforces key uniqueness on
// insert and existence on read, update and delete, and surfaces every
// failure as a distinct error kind. Error reporting is the caller's
// responsibility; the store itself never logs or retries.
package store
