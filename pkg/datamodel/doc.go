// Package datamodel aggregates the test data opened in one session.
//
// A DataModel holds an optional root suite and every resource file that
// the suite tree imports, directly or through other resources. It answers
// questions across all of them (which keywords exist, is anything unsaved,
// which suites still need a format) and saves modified files.
//
// Parsing and saving individual files is left to the types.SuiteFactory
// and types.ResourceCache the model is built with.
package datamodel
