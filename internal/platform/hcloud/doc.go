// Package hcloud implements provider.Provider on top of the Hetzner Cloud API.
//
// # Resource mapping
//
//   - instance: a Hetzner server, addressed by its numeric ID
//   - image, size, key pair, location: image, server type, SSH key and location
//     names or IDs
//   - network: a Hetzner network the server is attached to at creation
//   - security groups: Hetzner firewalls applied at creation
//   - floating IP pool: the project's Hetzner floating IPs
//
// # Server states
//
// Hetzner reports initializing, starting, running, stopping, off, deleting,
// migrating, rebuilding and unknown. They are folded into the neutral
// provider.InstanceState values by instanceState.
//
// # Floating IP claims
//
// Hetzner moves an assigned floating IP on a second Assign call instead of
// refusing it. AttachFloatingIP therefore re-reads the address right before
// assigning and reports provider.ErrAddressClaimed when another server holds
// it; a locked or conflicting action is reported the same way.
//
// # Example Usage
//
//	client := hcloud.NewRealClient(os.Getenv("HCLOUD_TOKEN"))
//	id, err := client.CreateInstance(ctx, provider.CreateInstanceOpts{
//	    Name:           "galaxy-20261016-140501",
//	    Image:          "ubuntu-24.04",
//	    Size:           "cx22",
//	    Network:        "galaxy",
//	    KeyPair:        "cloudman_key_pair",
//	    SecurityGroups: []string{"cloudlaunch-default"},
//	})
package hcloud
