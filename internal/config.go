package internal

import (
	"strings"
	"time"
)

const (
	// TagEnvVar names a pre-built container image tag. When set to a
	// non-empty value, the fixture returns it verbatim and performs no
	// build. Intended for environments where the image was built
	// out-of-band (CI caches, developer machines).
	TagEnvVar = "BIB_TEST_BUILD_CONTAINER_TAG"

	// ContainerfileEnvVar overrides the build descriptor path. The default
	// is DefaultContainerfile, resolved relative to the working directory.
	ContainerfileEnvVar = "BIB_TEST_BUILD_CONTAINERFILE"

	// TimeoutEnvVar bounds the build invocation with a Go duration string
	// (for example "20m"). Unset or unparsable values mean no timeout,
	// which matches the build tool's own behavior.
	TimeoutEnvVar = "BIB_TEST_BUILD_TIMEOUT"

	// VerifyEnvVar enables checking that an overridden tag actually exists
	// in the local image store before the session starts. Off by default:
	// the override path must not touch the build tool.
	VerifyEnvVar = "BIB_TEST_BUILD_VERIFY"

	// RemoveImageEnvVar enables removal of the built image when the
	// session closes. Off by default so repeated test runs reuse the
	// build cache.
	RemoveImageEnvVar = "BIB_TEST_BUILD_REMOVE_IMAGE"
)

const (
	// DefaultContainerfile is the build descriptor consumed on the build
	// path, resolved relative to the process working directory.
	DefaultContainerfile = "Containerfile"

	// DefaultImageTag is the tag applied to the image built for the
	// session when no override is present.
	DefaultImageTag = ImageTag("bootc-image-builder-test")
)

type Config struct {
	TagOverride   ImageTag
	Tag           ImageTag
	Containerfile string

	BuildTimeout   time.Duration
	VerifyOverride bool
	RemoveImage    bool
}

// ParseConfig reads the fixture configuration from a list of KEY=value
// environment entries, as produced by os.Environ. Missing or malformed
// entries fall back to defaults; the fixture has no flag surface of its own.
func ParseConfig(environment []string) Config {
	lookup := make(map[string]string)
	for _, variable := range environment {
		key, value, ok := strings.Cut(variable, "=")
		if ok {
			lookup[key] = value
		}
	}

	containerfile := lookup[ContainerfileEnvVar]
	if containerfile == "" {
		containerfile = DefaultContainerfile
	}

	var timeout time.Duration
	if value := lookup[TimeoutEnvVar]; value != "" {
		// An unparsable timeout is ignored rather than fatal; the build
		// then runs unbounded, same as when the variable is unset.
		if parsed, err := time.ParseDuration(value); err == nil && parsed > 0 {
			timeout = parsed
		}
	}

	return Config{
		TagOverride:    ImageTag(lookup[TagEnvVar]),
		Tag:            DefaultImageTag,
		Containerfile:  containerfile,
		BuildTimeout:   timeout,
		VerifyOverride: isEnabled(lookup[VerifyEnvVar]),
		RemoveImage:    isEnabled(lookup[RemoveImageEnvVar]),
	}
}

func isEnabled(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes":
		return true
	}
	return false
}
