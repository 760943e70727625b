// Package testing provides test doubles and builders shared by package tests.
//
//   - MockProvider: testify mock of provider.Provider for call expectations
//   - FakeProvider: scriptable in-memory provider with a floating IP pool
//   - ConfigBuilder: fluent builder for configuration values
//
// Usage:
//
//	fake := testing.NewFakeProvider("203.0.113.5")
//	fake.QueueIDs("i-123")
//	id, _ := fake.CreateInstance(ctx, opts)
//	fake.SetState(id, provider.StateRunning)
package testing
