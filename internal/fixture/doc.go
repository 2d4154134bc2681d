// Package fixture resolves the container image used by a test session.
//
// The Provider type returns a pre-built tag named by the environment, or
// builds the image once per session through a Runner and memoizes the
// result. Tag is the testing.T entry point shared across a whole
// "go test" run.
package fixture
