package internal

// SessionID represents a unique identifier for one test session.
type SessionID string

// ImageTag represents a container image tag in the local image store.
type ImageTag string
