package lifecycle

import (
	"errors"
	"fmt"
)

// ErrNoActiveInstance is returned when a status check arrives before a launch.
var ErrNoActiveInstance = errors.New("no active instance, launch one first")

// ProvisioningError means the provider rejected a launch. Nothing was
// recorded, so launching again with a new spec is safe.
type ProvisioningError struct {
	Name string
	Err  error
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("launch of %s rejected: %v", e.Name, e.Err)
}

func (e *ProvisioningError) Unwrap() error { return e.Err }

// InstanceNotFoundError means the handle is no longer known to the provider.
// The session should be discarded.
type InstanceNotFoundError struct {
	InstanceID string
	Err        error
}

func (e *InstanceNotFoundError) Error() string {
	return fmt.Sprintf("instance %s not found", e.InstanceID)
}

func (e *InstanceNotFoundError) Unwrap() error { return e.Err }

// ProviderUnavailableError wraps a failed provider call. The session passed
// in is returned unchanged, so the next turn can simply retry.
type ProviderUnavailableError struct {
	Op  string
	Err error
}

func (e *ProviderUnavailableError) Error() string {
	return fmt.Sprintf("provider unavailable during %s: %v", e.Op, e.Err)
}

func (e *ProviderUnavailableError) Unwrap() error { return e.Err }

// IPAlreadyClaimedError means another session attached the selected
// floating IP first. The claim moves on to the next free address.
type IPAlreadyClaimedError struct {
	Address string
	Err     error
}

func (e *IPAlreadyClaimedError) Error() string {
	return fmt.Sprintf("floating ip %s already claimed", e.Address)
}

func (e *IPAlreadyClaimedError) Unwrap() error { return e.Err }

// IsRetryable reports whether the same request may succeed on a later turn.
func IsRetryable(err error) bool {
	var unavailable *ProviderUnavailableError
	var claimed *IPAlreadyClaimedError
	return errors.As(err, &unavailable) || errors.As(err, &claimed)
}

// IsTerminal reports whether the session must be discarded.
func IsTerminal(err error) bool {
	var notFound *InstanceNotFoundError
	return errors.As(err, &notFound)
}
