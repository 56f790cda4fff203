package algoreg

import (
	"sync"
)

// WeightFunc maps a provider name to a relative priority; larger is more
// preferred. It is consulted only when a request names no provider and more
// than one is registered for the base name.
type WeightFunc func(provider string) int

// DefaultProviderWeight is the default priority table. Hardware-backed
// providers rank above the builtin software implementations; unknown
// providers rank below both, so a third-party provider never wins a tie
// unless the deployment weights it.
func DefaultProviderWeight(provider string) int {
	switch provider {
	case "pkcs11":
		return 8
	case "accel":
		return 7
	case DefaultProvider:
		return 5
	default:
		return 1
	}
}

var (
	weightMu sync.RWMutex
	weightFn WeightFunc = DefaultProviderWeight
)

// ProviderWeight returns the current priority for the named provider.
func ProviderWeight(provider string) int {
	weightMu.RLock()
	fn := weightFn
	weightMu.RUnlock()
	return fn(provider)
}

// SetProviderWeight replaces the process-wide weight function, returning the
// previous one. Passing nil restores the default table.
func SetProviderWeight(fn WeightFunc) WeightFunc {
	weightMu.Lock()
	defer weightMu.Unlock()

	prev := weightFn
	if fn == nil {
		fn = DefaultProviderWeight
	}
	weightFn = fn
	return prev
}
