package intercept

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/gogpu/glrr"
)

// Proxy forwards calls to a live object and reports them to an Observer.
// The original method always runs first; the observer sees its result.
//
// A Proxy is not safe for concurrent use.
type Proxy struct {
	target   any
	observer Observer
	methods  map[string]reflect.Value
}

// Install wraps methods of target and reports calls to obs. Every name
// must exist on target. Installing onto an existing Proxy adds the new
// names to it; names already installed are left as they are.
func Install(target any, methods []string, obs Observer) (*Proxy, error) {
	p, ok := target.(*Proxy)
	if !ok {
		p = &Proxy{
			target:   target,
			observer: obs,
			methods:  make(map[string]reflect.Value, len(methods)),
		}
	}
	for _, name := range methods {
		if _, done := p.methods[name]; done {
			continue
		}
		m, err := Lookup(p.target, name)
		if err != nil {
			return nil, err
		}
		p.methods[name] = m
	}
	return p, nil
}

// Target returns the wrapped object.
func (p *Proxy) Target() any {
	return p.target
}

// Methods returns the installed method names, sorted.
func (p *Proxy) Methods() []string {
	names := make([]string, 0, len(p.methods))
	for name := range p.methods {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Installed reports whether method was installed.
func (p *Proxy) Installed(method string) bool {
	_, ok := p.methods[method]
	return ok
}

// Call runs method on the target and then notifies the observer.
// It returns the original result unchanged. An observer error is returned
// alongside that result: the live call has already happened, but the
// caller must know it was not recorded.
func (p *Proxy) Call(method string, args ...any) (any, error) {
	m, ok := p.methods[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotInstalled, method)
	}
	in, err := convertArgs(m.Type(), method, args)
	if err != nil {
		return nil, err
	}
	ret, err := unpack(m.Call(in))
	if err != nil {
		return nil, err
	}

	if p.observer != nil {
		if oerr := p.observer.OnCall(p.target, method, args, ret); oerr != nil {
			glrr.Logger().Error("intercept: observer failed", "method", method, "err", oerr)
			return ret, fmt.Errorf("%w: %s: %w", ErrObserver, method, oerr)
		}
	}
	return ret, nil
}
