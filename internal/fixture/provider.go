package fixture

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/ericcurtin/bootc-image-builder/internal"
	"github.com/ericcurtin/bootc-image-builder/internal/podman"
)

// Runner executes a container image build. The podman CLI runner is the
// default implementation; the engine package provides a Docker Engine API
// alternative.
type Runner interface {
	Build(ctx context.Context, containerfile string, tag internal.ImageTag, w internal.Writer) error
}

// Verifier is implemented by runners that can check a tag against the
// local image store without building anything.
type Verifier interface {
	VerifyImage(ctx context.Context, tag internal.ImageTag) error
}

// Remover is implemented by runners that can remove a tag from the local
// image store.
type Remover interface {
	RemoveImage(ctx context.Context, tag internal.ImageTag) error
}

// Provider resolves the container image tag for one test session. The
// resolution runs at most once; every consumer observes the same tag or
// the same failure.
type Provider struct {
	config  internal.Config
	runner  Runner
	writer  internal.Writer
	session internal.Session
	cleanup *internal.CleanupManager

	once sync.Once
	tag  internal.ImageTag
	err  error
}

// New creates a Provider with explicit collaborators.
func New(config internal.Config, runner Runner, writer internal.Writer) *Provider {
	return &Provider{
		config:  config,
		runner:  runner,
		writer:  writer,
		session: internal.GenerateSession(),
		cleanup: internal.NewCleanupManager(),
	}
}

// NewDefault creates a Provider configured from the process environment
// with the podman CLI runner and standard output streams.
func NewDefault() *Provider {
	return New(internal.ParseConfig(os.Environ()), podman.NewRunner(), internal.NewStandardWriter())
}

// Session returns the session identity the provider names its resources
// after.
func (p *Provider) Session() internal.Session {
	return p.session
}

// Resolve returns the session's image tag. The first call performs the
// resolution (environment override or a single build); later and
// concurrent calls return the memoized result. A failed resolution stays
// failed for the whole session and is never retried.
func (p *Provider) Resolve(ctx context.Context) (internal.ImageTag, error) {
	p.once.Do(func() {
		p.tag, p.err = p.resolve(ctx)
	})

	return p.tag, p.err
}

// Close releases session resources, such as the built image when removal
// was requested. Safe to call when nothing was resolved.
func (p *Provider) Close() {
	p.cleanup.Execute()
}

func (p *Provider) resolve(ctx context.Context) (internal.ImageTag, error) {
	if tag := p.config.TagOverride; tag != "" {
		if p.config.VerifyOverride {
			if verifier, ok := p.runner.(Verifier); ok {
				if err := verifier.VerifyImage(ctx, tag); err != nil {
					return "", fmt.Errorf("pre-built container image %q is not usable: %w\nUnset %s or build the image first", tag, err, internal.TagEnvVar)
				}
			}
		}

		return tag, nil
	}

	if p.config.BuildTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.config.BuildTimeout)
		defer cancel()
	}

	p.writer.Printf("[%s] building container image %q from %q\n", p.session.ID(), p.config.Tag, p.config.Containerfile)

	if err := p.runner.Build(ctx, p.config.Containerfile, p.config.Tag, p.writer); err != nil {
		return "", fmt.Errorf("failed to build container image %q from %q: %w\nInspect the build output above for the failing step", p.config.Tag, p.config.Containerfile, err)
	}

	if p.config.RemoveImage {
		if remover, ok := p.runner.(Remover); ok {
			tag := p.config.Tag
			p.cleanup.Add("test-image", func() error {
				return remover.RemoveImage(context.Background(), tag)
			})
		}
	}

	return p.config.Tag, nil
}
