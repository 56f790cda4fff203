package algoreg

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Spec is a parsed algorithm request: a base name plus ordered arguments.
// Implementations are immutable; the registry only reads from them.
type Spec interface {
	// BaseName returns the requested algorithm name, e.g. "HMAC".
	BaseName() string

	// Arg returns the argument at position i,
	// or an error if the position is absent.
	Arg(i int) (string, error)

	// ArgDefault returns the argument at position i,
	// or def if the position is absent.
	ArgDefault(i int, def string) string

	// IntArg returns the argument at position i parsed as an integer,
	// def if absent, or an error if present but not an integer.
	IntArg(i int, def int) (int, error)

	// String returns the canonical textual form, used for diagnostics.
	String() string
}

// Name is the standard Spec implementation produced by ParseSpec.
type Name struct {
	base string
	args []string
}

// ParseSpec parses a request of the form "Base" or "Base(arg1,arg2,...)".
// Arguments may themselves be parenthesized specs, e.g. "HMAC(SHA-3(256))";
// commas split arguments only at the top nesting level.
func ParseSpec(s string) (*Name, error) {
	s = strings.TrimSpace(s)

	open := strings.IndexByte(s, '(')
	if open < 0 {
		if s == "" {
			return nil, errors.New("empty algorithm name")
		}
		if strings.ContainsAny(s, "),") {
			return nil, errors.Errorf("malformed algorithm spec: %q", s)
		}
		return &Name{base: s}, nil
	}

	base := strings.TrimSpace(s[:open])
	if base == "" {
		return nil, errors.Errorf("malformed algorithm spec: %q", s)
	}
	if s[len(s)-1] != ')' {
		return nil, errors.Errorf("unbalanced parentheses in %q", s)
	}

	inner := s[open+1 : len(s)-1]
	args, err := splitArgs(inner)
	if err != nil {
		return nil, errors.WithMessagef(err, "malformed algorithm spec %q", s)
	}
	return &Name{base: base, args: args}, nil
}

// MustParseSpec is ParseSpec for known-good literals; it panics on error.
func MustParseSpec(s string) *Name {
	n, err := ParseSpec(s)
	if err != nil {
		panic(err)
	}
	return n
}

func splitArgs(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var args []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, errors.New("unbalanced parentheses")
			}
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errors.New("unbalanced parentheses")
	}
	args = append(args, strings.TrimSpace(s[start:]))

	for _, a := range args {
		if a == "" {
			return nil, errors.New("empty argument")
		}
	}
	return args, nil
}

// BaseName returns the algorithm name.
func (n *Name) BaseName() string {
	return n.base
}

// ArgCount returns the number of arguments.
func (n *Name) ArgCount() int {
	return len(n.args)
}

// Arg returns the argument at position i, or an error if absent.
func (n *Name) Arg(i int) (string, error) {
	if i < 0 || i >= len(n.args) {
		return "", errors.Errorf("%s: missing argument %d", n.String(), i)
	}
	return n.args[i], nil
}

// ArgDefault returns the argument at position i, or def if absent.
func (n *Name) ArgDefault(i int, def string) string {
	if i < 0 || i >= len(n.args) {
		return def
	}
	return n.args[i]
}

// IntArg returns the argument at position i as an integer, or def if absent.
func (n *Name) IntArg(i int, def int) (int, error) {
	if i < 0 || i >= len(n.args) {
		return def, nil
	}
	v, err := strconv.Atoi(n.args[i])
	if err != nil {
		return 0, errors.Errorf("%s: argument %d is not an integer: %q",
			n.String(), i, n.args[i])
	}
	return v, nil
}

// String returns the canonical form, e.g. "HMAC(SHA-256)".
func (n *Name) String() string {
	if len(n.args) == 0 {
		return n.base
	}
	return n.base + "(" + strings.Join(n.args, ",") + ")"
}
