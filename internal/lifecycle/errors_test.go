package lifecycle

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name      string
		err       error
		retryable bool
		terminal  bool
	}{
		{name: "provisioning", err: &ProvisioningError{Name: "galaxy", Err: cause}},
		{name: "no active instance", err: ErrNoActiveInstance},
		{name: "not found", err: &InstanceNotFoundError{InstanceID: "i-1", Err: cause}, terminal: true},
		{name: "unavailable", err: &ProviderUnavailableError{Op: "get instance", Err: cause}, retryable: true},
		{name: "claimed", err: &IPAlreadyClaimedError{Address: "203.0.113.5", Err: cause}, retryable: true},
		{name: "wrapped unavailable", err: fmt.Errorf("turn: %w", &ProviderUnavailableError{Op: "x", Err: cause}), retryable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, IsRetryable(tt.err))
			assert.Equal(t, tt.terminal, IsTerminal(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	cause := errors.New("quota exceeded")
	assert.Equal(t, "launch of galaxy rejected: quota exceeded", (&ProvisioningError{Name: "galaxy", Err: cause}).Error())
	assert.Equal(t, "instance i-1 not found", (&InstanceNotFoundError{InstanceID: "i-1"}).Error())
	assert.Equal(t, "provider unavailable during get instance: quota exceeded",
		(&ProviderUnavailableError{Op: "get instance", Err: cause}).Error())
	assert.ErrorIs(t, &ProvisioningError{Err: cause}, cause)
}
