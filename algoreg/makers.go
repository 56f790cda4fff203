package algoreg

import (
	"github.com/cockroachdb/errors"
)

// The adapters below cover the recurring constructor shapes, so that an
// implementation package registering an algorithm supplies only its
// constructor and defaults rather than bespoke spec handling.

// NoArgs adapts a niladic constructor; the spec's arguments are ignored.
func NoArgs[T any](ctor func() T) Maker[T] {
	return func(Spec) (T, error) {
		return ctor(), nil
	}
}

// OneLen adapts a constructor taking one integer, read from argument 0 with
// the given default.
func OneLen[T any](def int, ctor func(int) (T, error)) Maker[T] {
	return func(spec Spec) (T, error) {
		var zero T
		n, err := spec.IntArg(0, def)
		if err != nil {
			return zero, err
		}
		return ctor(n)
	}
}

// TwoLen adapts a constructor taking two integers, read from arguments 0 and
// 1 with the given defaults.
func TwoLen[T any](def1, def2 int, ctor func(int, int) (T, error)) Maker[T] {
	return func(spec Spec) (T, error) {
		var zero T
		n1, err := spec.IntArg(0, def1)
		if err != nil {
			return zero, err
		}
		n2, err := spec.IntArg(1, def2)
		if err != nil {
			return zero, err
		}
		return ctor(n1, n2)
	}
}

// OneString adapts a constructor taking one string, read from argument 0
// with the given default.
func OneString[T any](def string, ctor func(string) (T, error)) Maker[T] {
	return func(spec Spec) (T, error) {
		return ctor(spec.ArgDefault(0, def))
	}
}

// OneStringRequired adapts a constructor taking one mandatory string; the
// maker fails when argument 0 is absent.
func OneStringRequired[T any](ctor func(string) (T, error)) Maker[T] {
	return func(spec Spec) (T, error) {
		var zero T
		arg, err := spec.Arg(0)
		if err != nil {
			return zero, err
		}
		return ctor(arg)
	}
}

// Dependent adapts a constructor that wraps an instance of another family X.
// Argument 0 is parsed as a nested spec and resolved through X's global
// registry with no provider preference; the resolved instance is owned by
// the value ctor returns. The maker fails when argument 0 is absent,
// unparsable, or names an algorithm no X provider implements.
func Dependent[T, X any](ctor func(X) (T, error)) Maker[T] {
	return func(spec Spec) (T, error) {
		var zero T
		arg, err := spec.Arg(0)
		if err != nil {
			return zero, err
		}
		nested, err := ParseSpec(arg)
		if err != nil {
			return zero, err
		}
		x, err := Global[X]().Make(nested, "")
		if err != nil {
			return zero, errors.WithMessagef(err, "dependency %q", arg)
		}
		return ctor(x)
	}
}
