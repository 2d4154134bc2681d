package fixture

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ericcurtin/bootc-image-builder/internal"
	"github.com/ericcurtin/bootc-image-builder/internal/engine"
	"github.com/ericcurtin/bootc-image-builder/internal/podman"
)

var (
	sharedOnce     sync.Once
	sharedProvider *Provider
)

// Tag returns the container image tag for the current test session,
// resolving it on first use and sharing the result across every test in
// the "go test" run. Resolution failure is fatal to the calling test, and
// the failure is memoized so later consumers fail fast without another
// build attempt.
//
// Callers that set BIB_TEST_BUILD_REMOVE_IMAGE should call Close from
// TestMain after m.Run so the built image is actually removed.
func Tag(t *testing.T) internal.ImageTag {
	t.Helper()

	sharedOnce.Do(func() {
		sharedProvider = NewDefault()
	})

	tag, err := sharedProvider.Resolve(context.Background())
	if err != nil {
		t.Fatalf("failed to resolve session container image: %v", err)
	}

	return tag
}

// Close releases the resources held by the shared session provider, such
// as the built image when BIB_TEST_BUILD_REMOVE_IMAGE is set. Call it
// from TestMain after m.Run. Safe to call when Tag was never used.
func Close() {
	if sharedProvider != nil {
		sharedProvider.Close()
	}
}

// RequirePodman skips the test if the podman binary is not available.
func RequirePodman(t *testing.T) {
	t.Helper()
	if !podman.Available() {
		t.Skip("podman is not available, skipping test")
	}
}

// RequireEngine skips the test if no Docker daemon is reachable.
func RequireEngine(t *testing.T) {
	t.Helper()

	c, err := engine.NewDefaultClient()
	if err != nil {
		t.Skip("Docker daemon is not available, skipping test")
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := c.Ping(ctx); err != nil {
		t.Skip("Docker daemon is not available, skipping test")
	}
}
