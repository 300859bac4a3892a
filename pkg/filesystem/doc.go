// Package filesystem provides filesystem implementations for ride.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem and an afero-backed one used for tests.
package filesystem
