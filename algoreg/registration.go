package algoreg

// Registration is a handle whose creation registers a maker with family T's
// global registry. It carries no state; implementation packages bind one to
// a package-level variable (or call the constructor from init) so that every
// compiled-in algorithm is registered before any Make call is reachable.
type Registration struct{}

// NewRegistration registers maker for base under the builtin provider.
func NewRegistration[T any](base string, maker Maker[T]) Registration {
	Global[T]().Register(base, DefaultProvider, maker)
	return Registration{}
}

// NewProviderRegistration registers maker for base under the named provider.
func NewProviderRegistration[T any](base, provider string, maker Maker[T]) Registration {
	Global[T]().Register(base, provider, maker)
	return Registration{}
}

// NewConditionalRegistration registers maker only when cond holds, e.g. a
// platform or configuration check evaluated at startup.
func NewConditionalRegistration[T any](cond bool, base, provider string, maker Maker[T]) Registration {
	if cond {
		Global[T]().Register(base, provider, maker)
	}
	return Registration{}
}
