package remap

import (
	"reflect"
	"runtime"
	"sync"
	"weak"
)

// Registry hands out IDs for live objects and keeps per-object tags.
//
// Entries are keyed by weak pointers and removed by a runtime cleanup once
// the host drops the object, so the registry never extends an object's
// lifetime. The mutex only exists because cleanups run on their own
// goroutine; callers use a Registry from a single goroutine.
type Registry struct {
	mu      sync.Mutex
	next    uint64
	entries map[weak.Pointer[byte]]*entry
}

type entry struct {
	id    ID
	hasID bool
	tags  map[string]any
}

// NewRegistry creates an empty registry whose first ID is 0.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[weak.Pointer[byte]]*entry),
	}
}

// Identify returns the ID attached to obj, allocating the next one on
// first sight. The kind name is taken from KindOf.
func (r *Registry) Identify(obj any) (ID, error) {
	e, err := r.lookup(obj, true)
	if err != nil {
		return ID{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if !e.hasID {
		e.id = ID{Kind: KindOf(obj), N: r.next}
		e.hasID = true
		r.next++
	}
	return e.id, nil
}

// Lookup returns the ID already attached to obj without allocating one.
func (r *Registry) Lookup(obj any) (ID, bool) {
	e, err := r.lookup(obj, false)
	if err != nil || e == nil {
		return ID{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return e.id, e.hasID
}

// Tag returns the named tag attached to obj.
func (r *Registry) Tag(obj any, name string) (any, bool) {
	e, err := r.lookup(obj, false)
	if err != nil || e == nil {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := e.tags[name]
	return v, ok
}

// SetTag attaches a named tag to obj, replacing any previous value.
func (r *Registry) SetTag(obj any, name string, v any) error {
	e, err := r.lookup(obj, true)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.tags == nil {
		e.tags = make(map[string]any, 1)
	}
	e.tags[name] = v
	return nil
}

// Next returns the integer the next new object will receive.
func (r *Registry) Next() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next
}

// Len returns the number of live tracked objects.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry) lookup(obj any, create bool) (*entry, error) {
	p, err := addressOf(obj)
	if err != nil {
		return nil, err
	}
	key := weak.Make(p)

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[key]; ok {
		return e, nil
	}
	if !create {
		return nil, nil
	}
	e := &entry{}
	r.entries[key] = e
	runtime.AddCleanup(p, r.drop, key)
	return e, nil
}

func (r *Registry) drop(key weak.Pointer[byte]) {
	r.mu.Lock()
	delete(r.entries, key)
	r.mu.Unlock()
}

// addressOf returns the address identifying obj. Only non-nil pointers to
// values with a non-zero size have an address that is unique per object.
func addressOf(obj any) (*byte, error) {
	v := reflect.ValueOf(obj)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.IsNil() {
		return nil, ErrNotTrackable
	}
	if v.Type().Elem().Size() == 0 {
		return nil, ErrNotTrackable
	}
	return (*byte)(v.UnsafePointer()), nil
}
