package replay

import (
	"fmt"
	"sort"
	"sync"
)

// Host creates the live objects a replay starts from.
type Host interface {
	// NewCanvas creates a canvas of the given size. The canvas must have a
	// GetContext method matching the recorded getContext calls.
	NewCanvas(width, height int) (any, error)

	// NewImage creates a visual source from recorded snapshot data.
	NewImage(data string) (any, error)
}

// HostFactory creates a new host instance.
// Factories are registered via RegisterHost and called by NewHost.
type HostFactory func() Host

var (
	registryMu sync.RWMutex
	hosts      = make(map[string]HostFactory)
)

// RegisterHost registers a host factory with the given name. It is
// typically called from init in the host's package:
//
//	func init() {
//	    replay.RegisterHost("softgl", func() replay.Host { return NewHost() })
//	}
//
// RegisterHost panics if factory is nil or if a host with the same name is
// already registered.
func RegisterHost(name string, factory HostFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("replay: RegisterHost factory is nil")
	}
	if _, dup := hosts[name]; dup {
		panic("replay: RegisterHost called twice for " + name)
	}
	hosts[name] = factory
}

// UnregisterHost removes a host from the registry. It is a no-op for
// unknown names.
func UnregisterHost(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(hosts, name)
}

// NewHost creates a new host instance by name.
// The error for an unknown name hints at a missing import.
func NewHost(name string) (Host, error) {
	registryMu.RLock()
	factory, ok := hosts[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("replay: unknown host %q (forgotten import?)", name)
	}
	return factory(), nil
}

// MustHost is like NewHost but panics on error.
func MustHost(name string) Host {
	h, err := NewHost(name)
	if err != nil {
		panic(err)
	}
	return h
}

// Hosts returns the registered host names in alphabetical order.
func Hosts() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(hosts))
	for name := range hosts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a host with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := hosts[name]
	return ok
}

// Count returns the number of registered hosts.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(hosts)
}
