package testing

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/imamik/cloudlaunch/internal/platform/provider"
)

// MockProvider is a testify mock implementation of provider.Provider.
type MockProvider struct {
	mock.Mock
}

var _ provider.Provider = (*MockProvider)(nil)

// CreateInstance records the call and returns the configured handle.
func (m *MockProvider) CreateInstance(ctx context.Context, opts provider.CreateInstanceOpts) (string, error) {
	args := m.Called(ctx, opts)
	return args.String(0), args.Error(1)
}

// GetInstance records the call and returns the configured instance.
func (m *MockProvider) GetInstance(ctx context.Context, id string) (*provider.Instance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.Instance), args.Error(1)
}

// ListInstances records the call and returns the configured instances.
func (m *MockProvider) ListInstances(ctx context.Context) ([]*provider.Instance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*provider.Instance), args.Error(1)
}

// ListFloatingIPs records the call and returns the configured pool.
func (m *MockProvider) ListFloatingIPs(ctx context.Context) ([]provider.FloatingIP, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]provider.FloatingIP), args.Error(1)
}

// AttachFloatingIP records the call and returns the configured error.
func (m *MockProvider) AttachFloatingIP(ctx context.Context, id, address string) error {
	args := m.Called(ctx, id, address)
	return args.Error(0)
}

// NewMockProvider creates a MockProvider with no expectations.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// WithInstance configures GetInstance to return an instance in the given state.
func (m *MockProvider) WithInstance(id string, state provider.InstanceState) *MockProvider {
	m.On("GetInstance", mock.Anything, id).Return(&provider.Instance{ID: id, State: state}, nil)
	return m
}

// WithPool configures ListFloatingIPs to return the given pool.
func (m *MockProvider) WithPool(pool ...provider.FloatingIP) *MockProvider {
	m.On("ListFloatingIPs", mock.Anything).Return(pool, nil)
	return m
}

// WithAttach configures AttachFloatingIP to succeed for the given address.
func (m *MockProvider) WithAttach(id, address string) *MockProvider {
	m.On("AttachFloatingIP", mock.Anything, id, address).Return(nil)
	return m
}
