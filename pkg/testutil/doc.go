// Package testutil provides utilities for testing ride components.
//
// Key components:
//   - NewTree: in-memory filesystem pre-populated with test data files
//   - FailingFS: filesystem wrapper injecting write failures
//   - Fixtures: small suites and resources shared by package tests
//
// Usage guidelines:
//   - Tests should use the in-memory filesystem for speed and isolation
//   - Test data should be defined inline, not in external files
package testutil
