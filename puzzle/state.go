package puzzle

import (
	"fmt"
	"strings"
)

// State is one configuration of a puzzle. Position 0 is the farmer and
// position i is passenger i-1; true means "on the near bank".
type State []bool

// Key encodes s as a string of 1 (near) and 0 (far) digits, farmer first.
func (s State) Key() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, near := range s {
		if near {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}

// String implements fmt.Stringer.
func (s State) String() string { return s.Key() }

// ParseKey decodes a key produced by State.Key for the given definition.
func ParseKey(d *Definition, key string) (State, error) {
	if len(key) != d.Width() {
		return nil, fmt.Errorf("%w: %q has %d digits, want %d", ErrBadStateKey, key, len(key), d.Width())
	}

	s := make(State, len(key))
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '1':
			s[i] = true
		case '0':
		default:
			return nil, fmt.Errorf("%w: %q", ErrBadStateKey, key)
		}
	}

	return s, nil
}

// AllNear returns the state with everyone on the near bank.
func AllNear(d *Definition) State { return uniform(d, true) }

// AllFar returns the state with everyone on the far bank.
func AllFar(d *Definition) State { return uniform(d, false) }

func uniform(d *Definition, near bool) State {
	s := make(State, d.Width())
	for i := range s {
		s[i] = near
	}

	return s
}

// stateAt returns the idx-th state in enumeration order: farmer is the most
// significant digit, so idx 0 is all-far and 2^width-1 is all-near.
func stateAt(width, idx int) State {
	s := make(State, width)
	for p := 0; p < width; p++ {
		s[p] = idx>>(width-1-p)&1 == 1
	}

	return s
}
