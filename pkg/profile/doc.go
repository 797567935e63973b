// Package profile is the engine surface for profile type schemas: a
// copy-on-write registry keyed by (type name, version), validation of raw
// specifications into normalized ProfileSpecs, update authorization
// against per-field mutability flags, and support status resolution
// against a platform release.
//
// The registry is populated once during process initialization by an
// external loader and treated as read-mostly afterward. All operations on
// it are safe for concurrent use; readers never block.
package profile
