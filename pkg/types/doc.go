// Package types defines the interfaces shared between the data model and
// the collaborators that load and save test data.
package types
