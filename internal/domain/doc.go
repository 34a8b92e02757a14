// Package domain defines the entity types the demo programs store and the
// validation errors they can fail with. Every entity carries an integer
// identifier and satisfies store.Entity; validation is expressed through
// struct tags checked by a shared validator and surfaced as sentinel errors.
package domain
