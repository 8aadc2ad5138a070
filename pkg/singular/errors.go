package singular

import (
	"errors"
	"fmt"
)

var (
	// ErrNoToken indicates no control app token is configured
	ErrNoToken = errors.New("no control app token configured")

	// ErrAssetNotFound indicates a key or id resolved to no registry entry
	ErrAssetNotFound = errors.New("subcomposition not found")

	// ErrFieldNotFound indicates a field id is absent from the asset's model
	ErrFieldNotFound = errors.New("field not found")

	// ErrNotTimeControl indicates a timecontrol operation targeted a field
	// of a different declared type
	ErrNotTimeControl = errors.New("field is not a timecontrol")

	// ErrRemoteUnavailable indicates the transport call to Singular failed
	ErrRemoteUnavailable = errors.New("singular api unavailable")

	// ErrMalformedResponse indicates the model body could not be parsed
	ErrMalformedResponse = errors.New("malformed model response")
)

// RemoteError is returned when Singular accepted the call but rejected the
// mutation. The remote status and body are passed through unswallowed so
// automation can tell a bridge fault from a rejected value.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("singular rejected request: status=%d body=%s", e.Status, e.Body)
}
