// Package provider defines the infrastructure capability consumed by the
// instance lifecycle core.
//
// A Provider exposes exactly five operations: create, get and list instances,
// list the floating IP pool, and attach a floating IP to an instance. Backends
// live in sibling packages (hcloud, ec2) and translate their SDK types and
// error codes into the neutral types and sentinel errors declared here, so the
// state machine in internal/lifecycle never imports a cloud SDK.
//
// Instrumented wraps any Provider and records per-operation call counts and
// latency in Prometheus.
package provider
