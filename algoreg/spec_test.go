package algoreg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafalsk/botan/algoreg"
)

func TestParseSpec(t *testing.T) {
	tcases := []struct {
		input string
		base  string
		args  []string
	}{
		{"SHA-256", "SHA-256", nil},
		{" SHA-256 ", "SHA-256", nil},
		{"SHA-3(256)", "SHA-3", []string{"256"}},
		{"HMAC(SHA-256)", "HMAC", []string{"SHA-256"}},
		{"HMAC(SHA-3(384))", "HMAC", []string{"SHA-3(384)"}},
		{"PBKDF2(SHA-512,150000)", "PBKDF2", []string{"SHA-512", "150000"}},
		{"X( a , b(c,d) )", "X", []string{"a", "b(c,d)"}},
		{"NoArgs()", "NoArgs", nil},
	}

	for _, tc := range tcases {
		t.Run(tc.input, func(t *testing.T) {
			spec, err := algoreg.ParseSpec(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.base, spec.BaseName())
			assert.Equal(t, len(tc.args), spec.ArgCount())
			for i, want := range tc.args {
				got, err := spec.Arg(i)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestParseSpecErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"   ",
		"(SHA-256)",
		"HMAC(SHA-256",
		"HMAC(SHA-256))",
		"HMAC)",
		"HMAC(a,,b)",
		"HMAC(a,)",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := algoreg.ParseSpec(input)
			assert.Error(t, err)
		})
	}
}

func TestSpecArgs(t *testing.T) {
	spec := algoreg.MustParseSpec("KDF(SHA-256,1000)")

	_, err := spec.Arg(2)
	assert.EqualError(t, err, "KDF(SHA-256,1000): missing argument 2")

	assert.Equal(t, "SHA-256", spec.ArgDefault(0, "SHA-512"))
	assert.Equal(t, "SHA-512", spec.ArgDefault(5, "SHA-512"))

	n, err := spec.IntArg(1, 99)
	require.NoError(t, err)
	assert.Equal(t, 1000, n)

	n, err = spec.IntArg(7, 99)
	require.NoError(t, err)
	assert.Equal(t, 99, n)

	_, err = spec.IntArg(0, 99)
	assert.EqualError(t, err, `KDF(SHA-256,1000): argument 0 is not an integer: "SHA-256"`)
}

func TestSpecString(t *testing.T) {
	assert.Equal(t, "SHA-256", algoreg.MustParseSpec("SHA-256").String())
	assert.Equal(t, "HMAC(SHA-256)", algoreg.MustParseSpec("HMAC( SHA-256 )").String())
	assert.Equal(t, "PBKDF2(SHA-512,150000)",
		algoreg.MustParseSpec("PBKDF2(SHA-512, 150000)").String())
}

func TestMustParseSpecPanics(t *testing.T) {
	assert.Panics(t, func() {
		algoreg.MustParseSpec("bad(")
	})
}
