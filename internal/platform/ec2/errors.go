package ec2

import (
	"errors"

	"github.com/aws/smithy-go"
)

// EC2 API error codes the backend classifies.
const (
	codeInstanceNotFound  = "InvalidInstanceID.NotFound"
	codeInstanceMalformed = "InvalidInstanceID.Malformed"
	codeAlreadyAssociated = "Resource.AlreadyAssociated"
	codeAddressNotFound   = "InvalidAllocationID.NotFound"
)

// isAPIErrorCode checks if the error is an EC2 API error with one of the given codes.
func isAPIErrorCode(err error, codes ...string) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		for _, code := range codes {
			if apiErr.ErrorCode() == code {
				return true
			}
		}
	}
	return false
}

func isInstanceNotFound(err error) bool {
	return isAPIErrorCode(err, codeInstanceNotFound, codeInstanceMalformed)
}
