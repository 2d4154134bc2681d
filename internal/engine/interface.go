package engine

import (
	"context"
	"io"

	"github.com/moby/moby/client"
)

// EngineClient is an interface that wraps the Docker API methods we use.
// This allows for dependency injection and testing with mocks.
//
// The real Docker client (*client.Client from moby/moby/client) implements
// this interface.
//
// Usage:
//
//	// Production code: use real Docker client
//	engineClient, err := client.New(client.FromEnv, client.WithAPIVersionNegotiation())
//	if err != nil {
//	    return err
//	}
//	c := engine.NewClient(engineClient)
//
//	// Or use the convenience function:
//	c, err := engine.NewDefaultClient()
//
//	// Test code: inject a mock
//	type mockEngineClient struct{}
//	func (m *mockEngineClient) ImageBuild(...) { /* mock implementation */ }
//	// ... implement other methods ...
//	c := engine.NewClient(&mockEngineClient{})
type EngineClient interface {
	ImageBuild(ctx context.Context, buildContext io.Reader, options client.ImageBuildOptions) (client.ImageBuildResult, error)
	ImageList(ctx context.Context, options client.ImageListOptions) (client.ImageListResult, error)
	ImageRemove(ctx context.Context, imageID string, options client.ImageRemoveOptions) (client.ImageRemoveResult, error)
	ContainerCreate(ctx context.Context, options client.ContainerCreateOptions) (client.ContainerCreateResult, error)
	ContainerRemove(ctx context.Context, containerID string, options client.ContainerRemoveOptions) (client.ContainerRemoveResult, error)
	Ping(ctx context.Context, options client.PingOptions) (client.PingResult, error)
	Close() error
}
