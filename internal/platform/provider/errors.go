package provider

import "errors"

var (
	// ErrInstanceNotFound indicates the handle is unknown to the backend.
	ErrInstanceNotFound = errors.New("instance not found")

	// ErrAddressClaimed indicates the floating IP is attached to another instance.
	ErrAddressClaimed = errors.New("floating ip already claimed")

	// ErrAddressNotFound indicates the address is not part of the floating IP pool.
	ErrAddressNotFound = errors.New("floating ip not found")
)

// IsNotFound checks if an error indicates the instance does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrInstanceNotFound)
}

// IsClaimed checks if an error indicates a lost floating IP race.
func IsClaimed(err error) bool {
	return errors.Is(err, ErrAddressClaimed)
}
