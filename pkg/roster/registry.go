package roster

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Resource is the registry's type-erased view of a collection: the
// operations that make sense without knowing the record type.
// Collection[T] satisfies it for every record type.
type Resource interface {
	Name() string
	Count() int
	NextID() int64
	Reset()
	Clear() int
}

// Registry tracks every collection owned by the server so that state
// management (overview, reset, clear) can operate across record types.
// Unlike Collection, the Registry guards its own table: registration and
// overview may be called outside the request serialization lock.
type Registry struct {
	mu        sync.RWMutex
	resources map[string]Resource
	order     []string
	observer  Observer
}

// NewRegistry creates an empty registry with a no-op observer.
func NewRegistry() *Registry {
	return &Registry{
		resources: make(map[string]Resource),
		observer:  NoopObserver{},
	}
}

// SetObserver installs the observer fired by the request layer. A nil
// observer restores the no-op default.
func (g *Registry) SetObserver(obs Observer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if obs == nil {
		obs = NoopObserver{}
	}
	g.observer = obs
}

// Observer returns the installed observer.
func (g *Registry) Observer() Observer {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.observer
}

// Register adds a collection to the registry.
func (g *Registry) Register(res Resource) error {
	if res == nil {
		return errors.New("resource cannot be nil")
	}
	if res.Name() == "" {
		return errors.New("resource name cannot be empty")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.resources[res.Name()]; exists {
		return fmt.Errorf("resource %q already registered", res.Name())
	}
	g.resources[res.Name()] = res
	g.order = append(g.order, res.Name())
	return nil
}

// Get returns a registered collection by name, or nil.
func (g *Registry) Get(name string) Resource {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.resources[name]
}

// Names returns all resource names in registration order.
func (g *Registry) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]string(nil), g.order...)
}

// Overview reports the registered resources and their record counts.
// The caller must hold the serialization lock, as counts read collection
// state.
func (g *Registry) Overview() *Overview {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ov := &Overview{
		Resources: make([]ResourceInfo, 0, len(g.order)),
	}
	for _, name := range g.order {
		res := g.resources[name]
		ov.Resources = append(ov.Resources, ResourceInfo{
			Name:   name,
			Count:  res.Count(),
			NextID: res.NextID(),
		})
		ov.TotalRecords += res.Count()
	}
	return ov
}

// Reset restores resources to their seed state. An empty name resets every
// resource. The caller must hold the serialization lock.
func (g *Registry) Reset(name string) (*ResetResult, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	start := time.Now()
	var reset []string

	if name == "" {
		for _, n := range g.order {
			g.resources[n].Reset()
			reset = append(reset, n)
		}
	} else {
		res, ok := g.resources[name]
		if !ok {
			return nil, fmt.Errorf("resource %q not found", name)
		}
		res.Reset()
		reset = []string{name}
	}

	g.observer.OnReset(reset, time.Since(start))
	return &ResetResult{
		Reset:     true,
		Resources: reset,
		Message:   "state reset to seed data",
	}, nil
}

// Overview reports registry-wide state.
type Overview struct {
	// Resources lists each collection with its current count.
	Resources []ResourceInfo `json:"resources"`
	// TotalRecords is the record count across all collections.
	TotalRecords int `json:"totalRecords"`
}

// ResourceInfo describes one registered collection.
type ResourceInfo struct {
	// Name is the collection name.
	Name string `json:"name"`
	// Count is the current number of records.
	Count int `json:"count"`
	// NextID is the identifier the next create will assign.
	NextID int64 `json:"nextId"`
}

// ResetResult is returned after a state reset.
type ResetResult struct {
	// Reset indicates success.
	Reset bool `json:"reset"`
	// Resources lists the collections that were reset.
	Resources []string `json:"resources"`
	// Message is a human-readable status message.
	Message string `json:"message"`
}
