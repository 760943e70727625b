package provider

import (
	"context"
	"time"
)

// InstanceState is the provider-neutral lifecycle state of an instance.
type InstanceState string

const (
	// StateUnknown is reported when the backend state has no neutral mapping.
	StateUnknown InstanceState = "unknown"
	// StatePending covers every pre-boot phase (initializing, starting, ...).
	StatePending InstanceState = "pending"
	// StateRunning means the instance has booted.
	StateRunning InstanceState = "running"
	// StateStopped means the instance exists but is powered off.
	StateStopped InstanceState = "stopped"
	// StateError means the backend reports the instance as failed.
	StateError InstanceState = "error"
	// StateTerminated means the instance is being or has been deleted.
	StateTerminated InstanceState = "terminated"
)

// Instance is a compute instance as reported by a backend.
type Instance struct {
	ID         string
	Name       string
	State      InstanceState
	PublicIPs  []string
	PrivateIPs []string
	Created    time.Time
}

// FloatingIP is one entry of the provider-managed public address pool.
type FloatingIP struct {
	Address string
	InUse   bool
	// InstanceID is the instance the address is attached to, empty when free.
	InstanceID string
}

// CreateInstanceOpts holds all parameters for launching an instance.
// Every identifier must resolve to a resource known to the backend.
type CreateInstanceOpts struct {
	Name           string
	Image          string
	Size           string
	Network        string
	KeyPair        string
	SecurityGroups []string
	// Location is optional; backends fall back to their default placement.
	Location string
}

// Provider is the infrastructure capability used by the lifecycle core.
type Provider interface {
	// CreateInstance submits a launch and returns the provider-assigned handle.
	// It does not wait for the instance to boot.
	CreateInstance(ctx context.Context, opts CreateInstanceOpts) (string, error)
	// GetInstance returns the current record for a handle, or an error
	// wrapping ErrInstanceNotFound when the handle is unknown.
	GetInstance(ctx context.Context, id string) (*Instance, error)
	ListInstances(ctx context.Context) ([]*Instance, error)
	ListFloatingIPs(ctx context.Context) ([]FloatingIP, error)
	// AttachFloatingIP attaches address to the instance. Attaching an address
	// the instance already holds succeeds. An address held by another instance
	// yields an error wrapping ErrAddressClaimed.
	AttachFloatingIP(ctx context.Context, id, address string) error
}

// PrimaryAddress returns the address a user should reach the instance at:
// the first public address, else the first private one.
func (i *Instance) PrimaryAddress() string {
	if len(i.PublicIPs) > 0 {
		return i.PublicIPs[0]
	}
	if len(i.PrivateIPs) > 0 {
		return i.PrivateIPs[0]
	}
	return ""
}
