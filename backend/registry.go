// Copyright 2026 The viewports Authors
// SPDX-License-Identifier: MIT

// Package backend selects and constructs windowing backends for
// viewports.
//
// Backends register themselves by name with a priority and an
// availability probe, typically from an init function:
//
//	func init() {
//		backend.Register("x11", 100, factory, available)
//	}
//
// Hosts either pick the best available backend:
//
//	platform, err := backend.Open(backend.Options{})
//
// or ask for a specific one:
//
//	platform, err := backend.OpenByName("headless", backend.Options{})
package backend

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/qthree/viewports"
)

// Factory creates a connected Platform with the given options.
// Implementations should validate options and return descriptive errors.
type Factory func(opts Options) (viewports.Platform, error)

// Options configures backend construction.
type Options struct {
	// Display names the windowing endpoint to connect to (the X11
	// DISPLAY string). Empty means the backend's environment default.
	Display string
}

// Entry represents a registered windowing backend.
type Entry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: real windowing systems (X11)
	//   - 10: headless/in-memory backends
	Priority int

	// Factory creates platform instances.
	Factory Factory

	// Available reports if the backend can run on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

// Registry manages registered windowing backends.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewRegistry creates a new empty registry. Most code should use the
// global registry via Register and Open.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Register adds a backend to the global registry. If available is nil,
// the backend is assumed always available. Registering a name that
// already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority
// (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific backend.
func Get(name string) (*Entry, bool) {
	return globalRegistry.Get(name)
}

// Open creates a platform using the best available backend.
func Open(opts Options) (viewports.Platform, error) {
	return globalRegistry.Open(opts)
}

// OpenByName creates a platform using a specific named backend.
func OpenByName(name string, opts Options) (viewports.Platform, error) {
	return globalRegistry.OpenByName(name, opts)
}

// Register adds a backend to the registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = &Entry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Get returns a backend entry by name.
func (r *Registry) Get(name string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// sorted returns all entries ordered by priority (highest first), ties
// broken by name for determinism.
func (r *Registry) sorted() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// List returns all registered names by descending priority.
func (r *Registry) List() []string {
	entries := r.sorted()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Available returns the names of backends whose probe passes, by
// descending priority.
func (r *Registry) Available() []string {
	var names []string
	for _, e := range r.sorted() {
		if e.Available() {
			names = append(names, e.Name)
		}
	}
	return names
}

// Open creates a platform from the highest-priority available backend.
func (r *Registry) Open(opts Options) (viewports.Platform, error) {
	var errs []error
	for _, e := range r.sorted() {
		if !e.Available() {
			continue
		}
		p, err := e.Factory(opts)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Name, err))
			continue
		}
		return p, nil
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("backend: no backend could open: %w", errors.Join(errs...))
	}
	return nil, errors.New("backend: no windowing backends available")
}

// OpenByName creates a platform from a specific backend.
func (r *Registry) OpenByName(name string, opts Options) (viewports.Platform, error) {
	e, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("backend: unknown backend %q", name)
	}
	if !e.Available() {
		return nil, fmt.Errorf("backend: backend %q not available on this system", name)
	}
	return e.Factory(opts)
}
