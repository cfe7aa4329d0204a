// Package framework contains the test-running machinery of the contract tests, independent of
// what is being tested.
//
// Tests run outside of the Go test runner. A Context plays the part of *testing.T: it has a Run
// method for subtests, it can be passed to testify's assert and require functions, and it
// collects per-test debug output that a TestLogger can print when the test fails. The request
// builder for the API under test is in the harness subpackage.
package framework
