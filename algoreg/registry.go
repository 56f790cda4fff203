package algoreg

import (
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"

	"github.com/rafalsk/botan/metricskey"
)

var logger = xlog.NewPackageLogger("github.com/rafalsk/botan", "algoreg")

// DefaultProvider is the provider name used for registrations that do not
// specify one: the library's own software implementations.
const DefaultProvider = "builtin"

// Maker constructs an instance of family T from a parsed specification.
// Makers are stateless; a maker may fail independently of the registry, for
// example on an invalid argument or a missing nested dependency.
type Maker[T any] func(spec Spec) (T, error)

// Registry holds the registered makers of one algorithm family, keyed by
// base name and provider. It is safe for concurrent use; makers run outside
// the registry lock, so a maker may resolve another family's registry.
type Registry[T any] struct {
	family string

	mu     sync.Mutex
	makers map[string]map[string]Maker[T]
}

var registries sync.Map // reflect.Type => *Registry[T]

// Global returns the process-wide registry for family T, creating it on
// first use. Each distinct family type gets an independent table and lock.
func Global[T any]() *Registry[T] {
	t := reflect.TypeFor[T]()
	if v, ok := registries.Load(t); ok {
		return v.(*Registry[T])
	}

	r := &Registry[T]{
		family: familyName(t),
		makers: make(map[string]map[string]Maker[T]),
	}
	v, _ := registries.LoadOrStore(t, r)
	return v.(*Registry[T])
}

func familyName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// Family returns the family name used in diagnostics and metrics.
func (r *Registry[T]) Family() string {
	return r.family
}

// Register adds maker under (base, provider). The first registration for a
// pair wins; a duplicate is a no-op, which keeps registration idempotent
// regardless of the order implementation packages initialize in.
func (r *Registry[T]) Register(base, provider string, maker Maker[T]) {
	if base == "" || provider == "" || maker == nil {
		logger.KV(xlog.ERROR, "reason", "invalid_registration",
			"family", r.family, "algo", base, "provider", provider)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	provs := r.makers[base]
	if provs == nil {
		provs = make(map[string]Maker[T])
		r.makers[base] = provs
	}
	if _, ok := provs[provider]; ok {
		logger.KV(xlog.DEBUG, "reason", "duplicate_registration",
			"family", r.family, "algo", base, "provider", provider)
		return
	}
	provs[provider] = maker
}

// Providers returns every provider registered for base, in unspecified
// order. The result is empty when the base name is unknown.
func (r *Registry[T]) Providers(base string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	provs := r.makers[base]
	list := make([]string, 0, len(provs))
	for name := range provs {
		list = append(list, name)
	}
	return list
}

// BaseNames returns every registered base name in lexicographic order.
func (r *Registry[T]) BaseNames() []string {
	r.mu.Lock()
	names := make([]string, 0, len(r.makers))
	for name := range r.makers {
		names = append(names, name)
	}
	r.mu.Unlock()

	sort.Strings(names)
	return names
}

// Make resolves a maker for spec and invokes it. An empty provider means no
// preference: a sole registered provider is used as is, and with several the
// highest-weighted one wins, ties broken by lexicographic provider name. A
// named provider is an exact match or nothing; the registry never falls back
// to a different provider than the one requested.
//
// An unsatisfiable request returns an error wrapping ErrNotAvailable. A
// failed maker returns a *ConstructionError carrying the cause and the
// spec's canonical form. Every successful call returns a fresh instance
// owned by the caller; nothing is cached.
func (r *Registry[T]) Make(spec Spec, provider string) (T, error) {
	var zero T

	maker, selected := r.findMaker(spec.BaseName(), provider)
	if maker == nil {
		if provider != "" {
			return zero, errors.WithMessagef(ErrNotAvailable,
				"%s via provider %q", spec.String(), provider)
		}
		return zero, errors.WithMessagef(ErrNotAvailable, "%s", spec.String())
	}

	defer metricskey.PerfAlgoConstruct.MeasureSince(time.Now(), r.family, selected)

	v, err := maker(spec)
	if err != nil {
		return zero, &ConstructionError{
			Spec:     spec.String(),
			Provider: provider,
			cause:    err,
		}
	}
	return v, nil
}

// findMaker applies the selection policy under the lock and returns the
// chosen maker with its provider name, or nil when nothing satisfies the
// request.
func (r *Registry[T]) findMaker(base, provider string) (Maker[T], string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	provs := r.makers[base]
	if len(provs) == 0 {
		return nil, ""
	}

	if provider != "" {
		return provs[provider], provider
	}

	var (
		best       Maker[T]
		bestName   string
		bestWeight int
	)
	for name, maker := range provs {
		w := ProviderWeight(name)
		if best == nil || w > bestWeight || (w == bestWeight && name < bestName) {
			best, bestName, bestWeight = maker, name, w
		}
	}
	return best, bestName
}

// Make constructs an instance of family T from spec through the global
// registry. An empty provider means no preference.
func Make[T any](spec Spec, provider string) (T, error) {
	return Global[T]().Make(spec, provider)
}

// MakeNamed parses name as a spec and constructs an instance of family T.
func MakeNamed[T any](name, provider string) (T, error) {
	var zero T
	spec, err := ParseSpec(name)
	if err != nil {
		return zero, err
	}
	return Global[T]().Make(spec, provider)
}
