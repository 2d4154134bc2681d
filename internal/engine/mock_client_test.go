package engine_test

import (
	"context"
	"errors"
	"io"

	"github.com/moby/moby/client"
)

// mockEngineClient is a mock implementation of engine.EngineClient for testing
type mockEngineClient struct {
	imageBuildFunc      func(ctx context.Context, buildContext io.Reader, options client.ImageBuildOptions) (client.ImageBuildResult, error)
	imageListFunc       func(ctx context.Context, options client.ImageListOptions) (client.ImageListResult, error)
	imageRemoveFunc     func(ctx context.Context, imageID string, options client.ImageRemoveOptions) (client.ImageRemoveResult, error)
	containerCreateFunc func(ctx context.Context, options client.ContainerCreateOptions) (client.ContainerCreateResult, error)
	containerRemoveFunc func(ctx context.Context, containerID string, options client.ContainerRemoveOptions) (client.ContainerRemoveResult, error)
	pingFunc            func(ctx context.Context, options client.PingOptions) (client.PingResult, error)
	closeFunc           func() error
}

func (m *mockEngineClient) ImageBuild(ctx context.Context, buildContext io.Reader, options client.ImageBuildOptions) (client.ImageBuildResult, error) {
	if m.imageBuildFunc != nil {
		return m.imageBuildFunc(ctx, buildContext, options)
	}
	return client.ImageBuildResult{}, errors.New("not implemented")
}

func (m *mockEngineClient) ImageList(ctx context.Context, options client.ImageListOptions) (client.ImageListResult, error) {
	if m.imageListFunc != nil {
		return m.imageListFunc(ctx, options)
	}
	return client.ImageListResult{}, errors.New("not implemented")
}

func (m *mockEngineClient) ImageRemove(ctx context.Context, imageID string, options client.ImageRemoveOptions) (client.ImageRemoveResult, error) {
	if m.imageRemoveFunc != nil {
		return m.imageRemoveFunc(ctx, imageID, options)
	}
	return client.ImageRemoveResult{}, errors.New("not implemented")
}

func (m *mockEngineClient) ContainerCreate(ctx context.Context, options client.ContainerCreateOptions) (client.ContainerCreateResult, error) {
	if m.containerCreateFunc != nil {
		return m.containerCreateFunc(ctx, options)
	}
	return client.ContainerCreateResult{}, errors.New("not implemented")
}

func (m *mockEngineClient) ContainerRemove(ctx context.Context, containerID string, options client.ContainerRemoveOptions) (client.ContainerRemoveResult, error) {
	if m.containerRemoveFunc != nil {
		return m.containerRemoveFunc(ctx, containerID, options)
	}
	return client.ContainerRemoveResult{}, errors.New("not implemented")
}

func (m *mockEngineClient) Ping(ctx context.Context, options client.PingOptions) (client.PingResult, error) {
	if m.pingFunc != nil {
		return m.pingFunc(ctx, options)
	}
	return client.PingResult{}, errors.New("not implemented")
}

func (m *mockEngineClient) Close() error {
	if m.closeFunc != nil {
		return m.closeFunc()
	}
	return nil
}
