// Package engine builds and manages test images through the Docker Engine
// API.
//
// It is an alternative to the podman CLI path for environments that only
// expose a daemon socket. The Client type is the main entry point for all
// engine operations.
package engine
