// Package internal contains shared types and utilities for the test image
// fixture.
//
// It provides configuration parsing, session identity, cleanup
// orchestration, and I/O abstractions used across the fixture, podman,
// and engine packages.
package internal
