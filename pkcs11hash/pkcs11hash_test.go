package pkcs11hash_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafalsk/botan/algoconf"
	"github.com/rafalsk/botan/algohash"
	"github.com/rafalsk/botan/algoreg"
	"github.com/rafalsk/botan/pkcs11hash"
)

func TestConfigureWithoutModule(t *testing.T) {
	t.Setenv(algoconf.EnvPkcs11Module, "")

	err := pkcs11hash.Configure(&algoconf.Config{})
	require.NoError(t, err)
}

func TestConfigureBrokenModule(t *testing.T) {
	cfg := &algoconf.Config{}
	cfg.PKCS11.Path = "/no/such/module.so"

	err := pkcs11hash.Configure(cfg)
	require.NoError(t, err)

	provs := algohash.Registry().Providers("SHA-256")
	assert.Contains(t, provs, pkcs11hash.ProviderName)

	// the maker runs and fails; the registry reports a construction
	// failure, not an unavailable algorithm
	_, err = algohash.NewWithProvider("SHA-256", pkcs11hash.ProviderName)
	require.Error(t, err)

	var ce *algoreg.ConstructionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "SHA-256", ce.Spec)
	assert.False(t, errors.Is(err, algoreg.ErrNotAvailable))

	// builtin remains usable for the same base name
	h, err := algohash.NewWithProvider("SHA-256", "builtin")
	require.NoError(t, err)
	assert.Equal(t, 32, h.Size())
}
