package testing

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/imamik/cloudlaunch/internal/platform/provider"
)

// AttachCall records one AttachFloatingIP invocation.
type AttachCall struct {
	InstanceID string
	Address    string
}

// FakeProvider is an in-memory provider.Provider. It is safe for concurrent use.
type FakeProvider struct {
	mu sync.Mutex

	instances map[string]*provider.Instance
	order     []string
	pool      []provider.FloatingIP
	ids       []string
	created   int

	creates []provider.CreateInstanceOpts
	attachs []AttachCall
	stolen  map[string]string

	createErr error
	getErr    error
	listErr   error
	poolErr   error
	attachErr error
	clock     func() time.Time
}

var _ provider.Provider = (*FakeProvider)(nil)

// NewFakeProvider creates a FakeProvider whose pool holds the given free addresses.
func NewFakeProvider(addresses ...string) *FakeProvider {
	f := &FakeProvider{
		instances: make(map[string]*provider.Instance),
		stolen:    make(map[string]string),
		clock:     time.Now,
	}
	for _, address := range addresses {
		f.pool = append(f.pool, provider.FloatingIP{Address: address})
	}
	return f
}

// QueueIDs sets the handles returned by the next CreateInstance calls.
func (f *FakeProvider) QueueIDs(ids ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ids = append(f.ids, ids...)
}

// SetClock sets the clock used for instance creation times.
func (f *FakeProvider) SetClock(now func() time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clock = now
}

// AddInstance registers an existing instance.
func (f *FakeProvider) AddInstance(instance provider.Instance) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.instances[instance.ID] = &instance
	f.order = append(f.order, instance.ID)
}

// SetState changes the state reported for an instance.
func (f *FakeProvider) SetState(id string, state provider.InstanceState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if inst, ok := f.instances[id]; ok {
		inst.State = state
	}
}

// Delete removes an instance so GetInstance reports it as not found.
func (f *FakeProvider) Delete(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.instances, id)
	f.order = slices.DeleteFunc(f.order, func(existing string) bool { return existing == id })
}

// AddFloatingIP adds a free address to the end of the pool.
func (f *FakeProvider) AddFloatingIP(address string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pool = append(f.pool, provider.FloatingIP{Address: address})
}

// AssignFloatingIP marks an address as attached to the given instance,
// bypassing AttachFloatingIP and its call log.
func (f *FakeProvider) AssignFloatingIP(address, instanceID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.pool {
		if f.pool[i].Address == address {
			f.pool[i].InUse = true
			f.pool[i].InstanceID = instanceID
		}
	}
}

// StealOnAttach makes the next attach of address lose a race: the address is
// assigned to holder just before the attach is evaluated.
func (f *FakeProvider) StealOnAttach(address, holder string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stolen[address] = holder
}

// FailCreate makes CreateInstance return err. A nil err clears the failure.
func (f *FakeProvider) FailCreate(err error) { f.setErr(&f.createErr, err) }

// FailGet makes GetInstance return err. A nil err clears the failure.
func (f *FakeProvider) FailGet(err error) { f.setErr(&f.getErr, err) }

// FailList makes ListInstances return err. A nil err clears the failure.
func (f *FakeProvider) FailList(err error) { f.setErr(&f.listErr, err) }

// FailListFloatingIPs makes ListFloatingIPs return err. A nil err clears the failure.
func (f *FakeProvider) FailListFloatingIPs(err error) { f.setErr(&f.poolErr, err) }

// FailAttach makes AttachFloatingIP return err after recording the call.
// A nil err clears the failure.
func (f *FakeProvider) FailAttach(err error) { f.setErr(&f.attachErr, err) }

func (f *FakeProvider) setErr(target *error, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	*target = err
}

// Creates returns the options of every CreateInstance call.
func (f *FakeProvider) Creates() []provider.CreateInstanceOpts {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.creates)
}

// AttachCalls returns every AttachFloatingIP call in order.
func (f *FakeProvider) AttachCalls() []AttachCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.attachs)
}

// FloatingIPs returns a snapshot of the pool.
func (f *FakeProvider) FloatingIPs() []provider.FloatingIP {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.pool)
}

// CreateInstance registers a pending instance.
func (f *FakeProvider) CreateInstance(_ context.Context, opts provider.CreateInstanceOpts) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creates = append(f.creates, opts)
	if f.createErr != nil {
		return "", f.createErr
	}

	var id string
	if len(f.ids) > 0 {
		id, f.ids = f.ids[0], f.ids[1:]
	} else {
		f.created++
		id = fmt.Sprintf("fake-%d", f.created)
	}
	f.instances[id] = &provider.Instance{
		ID:         id,
		Name:       opts.Name,
		State:      provider.StatePending,
		PrivateIPs: []string{"10.0.0.2"},
		Created:    f.clock(),
	}
	f.order = append(f.order, id)
	return id, nil
}

// GetInstance returns a copy of the instance.
func (f *FakeProvider) GetInstance(_ context.Context, id string) (*provider.Instance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	inst, ok := f.instances[id]
	if !ok {
		return nil, fmt.Errorf("instance %s: %w", id, provider.ErrInstanceNotFound)
	}
	return cloneInstance(inst), nil
}

// ListInstances returns copies of all instances in creation order.
func (f *FakeProvider) ListInstances(_ context.Context) ([]*provider.Instance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	instances := make([]*provider.Instance, 0, len(f.order))
	for _, id := range f.order {
		instances = append(instances, cloneInstance(f.instances[id]))
	}
	return instances, nil
}

// ListFloatingIPs returns a snapshot of the pool.
func (f *FakeProvider) ListFloatingIPs(_ context.Context) ([]provider.FloatingIP, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.poolErr != nil {
		return nil, f.poolErr
	}
	return slices.Clone(f.pool), nil
}

// AttachFloatingIP attaches a pool address with the same rules as the real
// backends: same holder succeeds, another holder yields ErrAddressClaimed.
func (f *FakeProvider) AttachFloatingIP(_ context.Context, id, address string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.attachs = append(f.attachs, AttachCall{InstanceID: id, Address: address})
	if f.attachErr != nil {
		return f.attachErr
	}
	if _, ok := f.instances[id]; !ok {
		return fmt.Errorf("instance %s: %w", id, provider.ErrInstanceNotFound)
	}

	idx := slices.IndexFunc(f.pool, func(ip provider.FloatingIP) bool { return ip.Address == address })
	if idx < 0 {
		return fmt.Errorf("floating ip %s: %w", address, provider.ErrAddressNotFound)
	}
	if holder, ok := f.stolen[address]; ok {
		delete(f.stolen, address)
		f.pool[idx].InUse = true
		f.pool[idx].InstanceID = holder
	}

	ip := &f.pool[idx]
	if ip.InUse {
		if ip.InstanceID == id {
			return nil
		}
		return fmt.Errorf("floating ip %s held by %s: %w", address, ip.InstanceID, provider.ErrAddressClaimed)
	}
	ip.InUse = true
	ip.InstanceID = id
	return nil
}

func cloneInstance(inst *provider.Instance) *provider.Instance {
	c := *inst
	c.PublicIPs = slices.Clone(inst.PublicIPs)
	c.PrivateIPs = slices.Clone(inst.PrivateIPs)
	return &c
}
