//go:build integration
// +build integration

package engine_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ericcurtin/bootc-image-builder/internal"
	"github.com/ericcurtin/bootc-image-builder/internal/engine"
)

// TestEngineLifecycle exercises the engine build path against a live
// daemon: build a minimal image, confirm it is listed, verify it is
// usable, and remove it again.
func TestEngineLifecycle(t *testing.T) {
	if os.Getenv("SKIP_INTEGRATION") == "true" {
		t.Skip("Integration tests skipped")
	}

	c, err := engine.NewDefaultClient()
	require.NoError(t, err, "Docker daemon must be running for integration tests")
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	_, err = c.Ping(ctx)
	require.NoError(t, err, "Failed to ping Docker daemon")

	containerfile := filepath.Join(t.TempDir(), "Containerfile")
	err = os.WriteFile(containerfile, []byte("FROM busybox:latest\nLABEL bib-test=integration\n"), 0644)
	require.NoError(t, err)

	tag := internal.ImageTag("bib-test-engine-integration")
	writer := internal.NewStandardWriter()

	err = c.Build(ctx, containerfile, tag, writer)
	require.NoError(t, err)

	defer func() {
		_ = c.RemoveImage(ctx, tag)
	}()

	exists, err := c.ImageExists(ctx, tag)
	require.NoError(t, err)
	require.True(t, exists, "built image should be present in the local store")

	err = c.VerifyImage(ctx, tag)
	require.NoError(t, err)

	err = c.RemoveImage(ctx, tag)
	require.NoError(t, err)

	exists, err = c.ImageExists(ctx, tag)
	require.NoError(t, err)
	require.False(t, exists, "removed image should be gone from the local store")
}
