// Package schema defines the building blocks of profile type schemas:
// value kinds, per-field specifications, version identifiers, support
// status ledgers, and the normalization of raw specifications against a
// field set. Everything in this package is pure data plus pure functions;
// the registry and the operations built on top live in pkg/profile.
package schema
