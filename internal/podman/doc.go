// Package podman runs container image builds through the podman CLI.
//
// The Runner type invokes "podman build" synchronously with the build
// output inherited by the caller's streams, and maps non-zero exits to
// internal.BuildError. It is the default build path for the session
// image fixture.
package podman
