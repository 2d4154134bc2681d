package podman

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/ericcurtin/bootc-image-builder/internal"
)

// DefaultExecutable is the build tool binary resolved from PATH.
const DefaultExecutable = "podman"

// waitDelay bounds how long Run keeps draining output pipes after the
// build process is killed on cancellation. The build tool's child
// processes inherit the pipes and can outlive the killed parent, which
// would otherwise block Run past the deadline.
const waitDelay = 3 * time.Second

type Runner struct {
	// Executable is the build tool binary to invoke. Tests point this at
	// stand-in scripts; everything else uses DefaultExecutable.
	Executable string
}

// NewRunner creates a Runner that invokes the podman binary from PATH.
func NewRunner() Runner {
	return Runner{Executable: DefaultExecutable}
}

// Available reports whether the podman binary can be resolved from PATH.
func Available() bool {
	_, err := exec.LookPath(DefaultExecutable)
	return err == nil
}

// Build runs "podman build -f <containerfile> -t <tag>" in the current
// working directory and blocks until it completes. The subprocess writes
// directly to the Writer's stream so the operator sees the build output
// as it happens. A non-zero exit is returned as an internal.BuildError
// carrying the subprocess exit code.
func (r Runner) Build(ctx context.Context, containerfile string, tag internal.ImageTag, w internal.Writer) error {
	cmd := exec.CommandContext(ctx, r.Executable, "build", "-f", containerfile, "-t", string(tag))
	cmd.Stdout = w.GetWriter()
	cmd.Stderr = w.GetWriter()
	cmd.WaitDelay = waitDelay

	if err := cmd.Run(); err != nil {
		return &internal.BuildError{
			Tag:      tag,
			ExitCode: exitCode(err),
			Err:      err,
		}
	}

	return nil
}

// VerifyImage checks that the tag resolves in the local image store using
// "podman image exists", which exits non-zero when the image is missing.
func (r Runner) VerifyImage(ctx context.Context, tag internal.ImageTag) error {
	cmd := exec.CommandContext(ctx, r.Executable, "image", "exists", string(tag))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("container image %q not found in the local image store: %w", tag, err)
	}

	return nil
}

// RemoveImage removes the tag from the local image store.
func (r Runner) RemoveImage(ctx context.Context, tag internal.ImageTag) error {
	cmd := exec.CommandContext(ctx, r.Executable, "rmi", "--force", string(tag))
	cmd.WaitDelay = waitDelay
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to remove container image %q: %w: %s", tag, err, out)
	}

	return nil
}

// exitCode extracts the subprocess exit status, or -1 when the build tool
// never ran (missing binary, permission errors, cancelled context).
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
