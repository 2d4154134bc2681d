package internal

import "fmt"

// BuildError reports that the external container build terminated without
// producing a usable image. It carries the build tool's exit code so the
// session setup failure surfaces the subprocess status to the operator.
type BuildError struct {
	// Tag is the destination tag the failed build was asked to produce.
	Tag ImageTag

	// ExitCode is the build subprocess exit status. -1 means the build
	// tool could not be started at all.
	ExitCode int

	// Err is the underlying cause.
	Err error
}

func (e *BuildError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("build of container image %q could not be started: %v", e.Tag, e.Err)
	}
	return fmt.Sprintf("build of container image %q failed with exit code %d: %v", e.Tag, e.ExitCode, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
