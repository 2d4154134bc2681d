package engine

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/moby/moby/api/types/container"
	"github.com/moby/moby/client"

	"github.com/ericcurtin/bootc-image-builder/internal"
)

type Client struct {
	client EngineClient
}

// NewClient creates a Client that wraps the provided engine client interface.
func NewClient(engineClient EngineClient) Client {
	return Client{
		client: engineClient,
	}
}

// NewDefaultClient creates a Client with a real Docker client from the environment.
func NewDefaultClient() (Client, error) {
	cli, err := client.New(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return Client{}, fmt.Errorf("failed to create docker client: %w\nEnsure the daemon is running and DOCKER_HOST is set correctly", err)
	}

	return NewClient(cli), nil
}

// Close closes the underlying engine client connection.
func (c Client) Close() {
	c.client.Close()
}

// Build builds a container image from the build descriptor at
// containerfile and tags it with tag. It creates a tar archive containing
// the descriptor, sends it to the daemon, and renders the build output
// through the provided Writer. A build reported as failed by the daemon is
// returned as an internal.BuildError.
func (c Client) Build(ctx context.Context, containerfile string, tag internal.ImageTag, w internal.Writer) error {
	descriptor, err := os.ReadFile(containerfile)
	if err != nil {
		return fmt.Errorf("failed to read build descriptor at %q: %w\nCheck that the file exists and is readable", containerfile, err)
	}

	// The daemon resolves the descriptor by name within the tar context.
	name := filepath.Base(containerfile)

	pr, pw := io.Pipe()
	defer pr.Close()

	errChan := make(chan error, 1)

	go func() {
		tw := tar.NewWriter(pw)
		defer func() {
			tw.Close()
			pw.Close()
		}()

		header := &tar.Header{
			Name: name,
			Mode: 0644,
			Size: int64(len(descriptor)),
		}

		if err := tw.WriteHeader(header); err != nil {
			errChan <- fmt.Errorf("failed to write tar header for build descriptor: %w", err)
			return
		}

		if _, err := tw.Write(descriptor); err != nil {
			errChan <- fmt.Errorf("failed to write build descriptor to tar archive: %w", err)
			return
		}
		errChan <- nil
	}()

	response, err := c.client.ImageBuild(ctx, pr, client.ImageBuildOptions{
		Dockerfile: name,
		Tags:       []string{string(tag)},
		Remove:     true,
	})
	if err != nil {
		return fmt.Errorf("failed to build image %q: %w\nCheck the daemon logs for details", tag, err)
	}
	defer response.Body.Close()

	// Check if tar creation had an error
	select {
	case err := <-errChan:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := renderBuildOutput(ctx, response.Body, tag, w); err != nil {
		return err
	}

	return nil
}

// ImageExists reports whether an image with the given tag is present in the
// local image store.
func (c Client) ImageExists(ctx context.Context, tag internal.ImageTag) (bool, error) {
	result, err := c.client.ImageList(ctx, client.ImageListOptions{
		Filters: client.Filters{}.Add("reference", string(tag)),
	})
	if err != nil {
		return false, fmt.Errorf("failed to list images matching %q: %w", tag, err)
	}

	return len(result.Items) > 0, nil
}

// VerifyImage checks that the tag names a usable image by creating a
// container from it and removing the container again. Creation fails when
// the image is missing or unreadable, without running anything.
func (c Client) VerifyImage(ctx context.Context, tag internal.ImageTag) error {
	name := fmt.Sprintf("%s-verify", internal.GenerateSession().ID())

	response, err := c.client.ContainerCreate(ctx, client.ContainerCreateOptions{
		Config: &container.Config{
			Image: string(tag),
			Cmd:   []string{"true"},
		},
		Name: name,
	})
	if err != nil {
		return fmt.Errorf("container image %q is not usable: %w", tag, err)
	}

	_, err = c.client.ContainerRemove(ctx, response.ID, client.ContainerRemoveOptions{
		Force: true,
	})
	if err != nil {
		return fmt.Errorf("failed to remove verification container %q: %w", name, err)
	}

	return nil
}

// RemoveImage removes the tag from the local image store, including
// dangling intermediate layers.
func (c Client) RemoveImage(ctx context.Context, tag internal.ImageTag) error {
	_, err := c.client.ImageRemove(ctx, string(tag), client.ImageRemoveOptions{
		Force:         true,
		PruneChildren: true,
	})
	if err != nil {
		return fmt.Errorf("failed to remove container image %q: %w", tag, err)
	}

	return nil
}

// Ping pings the daemon and returns the API version if successful. Used by
// availability checks before a session commits to the engine build path.
func (c Client) Ping(ctx context.Context) (string, error) {
	ping, err := c.client.Ping(ctx, client.PingOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to ping docker daemon: %w", err)
	}
	return ping.APIVersion, nil
}
