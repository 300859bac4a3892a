// Package model holds the concrete test data collaborators used by the
// data model: TestSuite and ResourceFile objects, the SuiteFactory that
// builds suite trees from files and directories, and the ResourceCache
// that hands out one ResourceFile per path.
//
// Files are read through types.FS, decoded with the codec matching their
// extension, and written back with the same codec on Serialize.
package model
