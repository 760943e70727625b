package hcloud

import (
	"net"
	"testing"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/imamik/cloudlaunch/internal/platform/provider"
)

func TestInstanceState(t *testing.T) {
	tests := []struct {
		status   hcloud.ServerStatus
		expected provider.InstanceState
	}{
		{hcloud.ServerStatusInitializing, provider.StatePending},
		{hcloud.ServerStatusStarting, provider.StatePending},
		{hcloud.ServerStatusRebuilding, provider.StatePending},
		{hcloud.ServerStatusMigrating, provider.StatePending},
		{hcloud.ServerStatusRunning, provider.StateRunning},
		{hcloud.ServerStatusStopping, provider.StateStopped},
		{hcloud.ServerStatusOff, provider.StateStopped},
		{hcloud.ServerStatusDeleting, provider.StateTerminated},
		{hcloud.ServerStatusUnknown, provider.StateUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := instanceState(tt.status); got != tt.expected {
				t.Errorf("instanceState(%q) = %q, want %q", tt.status, got, tt.expected)
			}
		})
	}
}

func TestInstanceFromServer_SkipsUnspecifiedIPv4(t *testing.T) {
	server := &hcloud.Server{
		ID:     5,
		Status: hcloud.ServerStatusRunning,
		PublicNet: hcloud.ServerPublicNet{
			IPv4: hcloud.ServerPublicNetIPv4{IP: net.IPv4zero},
		},
	}

	inst := instanceFromServer(server)
	if len(inst.PublicIPs) != 0 {
		t.Errorf("expected no public IPs, got %v", inst.PublicIPs)
	}
	if inst.ID != "5" {
		t.Errorf("expected ID '5', got %q", inst.ID)
	}
}

func TestParseServerID(t *testing.T) {
	id, err := parseServerID("42")
	if err != nil || id != 42 {
		t.Errorf("parseServerID(\"42\") = %d, %v", id, err)
	}
	if _, err := parseServerID("abc"); err == nil {
		t.Error("expected error for non-numeric id")
	}
}
