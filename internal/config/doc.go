// Package config defines the cloudlaunch configuration file and its loaders.
//
// A [Config] selects the provider backend, the launch template every new
// instance is created from, backend credentials and the skill server
// listener. It is read from cloudlaunch.yaml; HCLOUD_TOKEN overrides the
// Hetzner token from the file. Transport timeouts come from the environment
// via [LoadTimeouts].
package config
