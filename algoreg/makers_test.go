package algoreg_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafalsk/botan/algoreg"
)

type lenAlgo struct {
	n1, n2 int
	s      string
}

func TestNoArgs(t *testing.T) {
	maker := algoreg.NoArgs(func() *lenAlgo {
		return &lenAlgo{n1: 42}
	})

	v, err := maker(algoreg.MustParseSpec("X(ignored,args)"))
	require.NoError(t, err)
	assert.Equal(t, 42, v.n1)
}

func TestOneLen(t *testing.T) {
	maker := algoreg.OneLen(64, func(n int) (*lenAlgo, error) {
		if n > 64 {
			return nil, errors.Errorf("size too large: %d", n)
		}
		return &lenAlgo{n1: n}, nil
	})

	v, err := maker(algoreg.MustParseSpec("X"))
	require.NoError(t, err)
	assert.Equal(t, 64, v.n1)

	v, err = maker(algoreg.MustParseSpec("X(32)"))
	require.NoError(t, err)
	assert.Equal(t, 32, v.n1)

	_, err = maker(algoreg.MustParseSpec("X(128)"))
	assert.EqualError(t, err, "size too large: 128")

	_, err = maker(algoreg.MustParseSpec("X(large)"))
	assert.EqualError(t, err, `X(large): argument 0 is not an integer: "large"`)
}

func TestTwoLen(t *testing.T) {
	maker := algoreg.TwoLen(16, 8, func(n1, n2 int) (*lenAlgo, error) {
		return &lenAlgo{n1: n1, n2: n2}, nil
	})

	v, err := maker(algoreg.MustParseSpec("X"))
	require.NoError(t, err)
	assert.Equal(t, 16, v.n1)
	assert.Equal(t, 8, v.n2)

	v, err = maker(algoreg.MustParseSpec("X(20)"))
	require.NoError(t, err)
	assert.Equal(t, 20, v.n1)
	assert.Equal(t, 8, v.n2)

	v, err = maker(algoreg.MustParseSpec("X(20,12)"))
	require.NoError(t, err)
	assert.Equal(t, 20, v.n1)
	assert.Equal(t, 12, v.n2)

	_, err = maker(algoreg.MustParseSpec("X(20,big)"))
	assert.Error(t, err)
}

func TestOneString(t *testing.T) {
	maker := algoreg.OneString("SHA-256", func(s string) (*lenAlgo, error) {
		return &lenAlgo{s: s}, nil
	})

	v, err := maker(algoreg.MustParseSpec("X"))
	require.NoError(t, err)
	assert.Equal(t, "SHA-256", v.s)

	v, err = maker(algoreg.MustParseSpec("X(SHA-512)"))
	require.NoError(t, err)
	assert.Equal(t, "SHA-512", v.s)
}

func TestOneStringRequired(t *testing.T) {
	maker := algoreg.OneStringRequired(func(s string) (*lenAlgo, error) {
		return &lenAlgo{s: s}, nil
	})

	v, err := maker(algoreg.MustParseSpec("X(SHA-512)"))
	require.NoError(t, err)
	assert.Equal(t, "SHA-512", v.s)

	_, err = maker(algoreg.MustParseSpec("X"))
	assert.EqualError(t, err, "X: missing argument 0")
}
