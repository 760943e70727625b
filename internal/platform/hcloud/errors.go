package hcloud

import (
	"errors"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// errorCode returns the Hetzner API error code carried by err, or "" when err
// is not an API error.
func errorCode(err error) hcloud.ErrorCode {
	var apiErr hcloud.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}

// IsNotFound reports whether err is a Hetzner not_found error.
func IsNotFound(err error) bool {
	return errorCode(err) == hcloud.ErrorCodeNotFound
}

// heldByOtherAction reports whether an assignment failed because another
// action was running on the floating IP at the same time.
func heldByOtherAction(code hcloud.ErrorCode) bool {
	switch code {
	case hcloud.ErrorCodeLocked, hcloud.ErrorCodeConflict, hcloud.ErrorCodeResourceLocked:
		return true
	default:
		return false
	}
}
