// Package filesystem is the narrow file tree interface the engine works
// through, with an implementation over afero. The OS backed filesystem is
// used in production and the in-memory one in tests.
package filesystem
