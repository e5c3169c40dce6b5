package template

import "errors"

// Sentinel errors for template rendering.
var (
	// ErrTemplateNotFound indicates the named template is not in the filesystem.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingTemplateKey indicates the template referenced a key the data
	// does not provide.
	ErrMissingTemplateKey = errors.New("missing template key")

	// ErrUnexpandedToken indicates a template action survived rendering.
	ErrUnexpandedToken = errors.New("unexpanded template token")

	// ErrUnsupportedBackend indicates no entry template exists for a backend.
	ErrUnsupportedBackend = errors.New("unsupported backend framework")
)
