package artifact

import (
	"errors"
	"fmt"
)

// ErrUnsupportedVersion indicates an artifact written in a format this
// build cannot read.
var ErrUnsupportedVersion = errors.New("unsupported artifact format version")

// ArtifactLoadError indicates a scaler or classifier artifact that is
// missing, corrupt or incompatible. Predictions cannot be served without it.
type ArtifactLoadError struct {
	Path string
	Kind Kind
	Err  error
}

func (e *ArtifactLoadError) Error() string {
	return fmt.Sprintf("load %s artifact %s: %v", e.Kind, e.Path, e.Err)
}

func (e *ArtifactLoadError) Unwrap() error { return e.Err }
