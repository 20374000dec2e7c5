package puzzle

// Valid reports whether s leaves no conflict pair alone on the bank the
// farmer is not on.
func Valid(d *Definition, s State) bool {
	farmer := s[0]
	for _, c := range d.Conflicts {
		pred, prey := d.index(c.Predator), d.index(c.Prey)
		if pred < 0 || prey < 0 {
			continue
		}
		if s[pred] != farmer && s[prey] != farmer {
			return false
		}
	}

	return true
}

// Moves returns the legal successors of s: the farmer crosses alone first,
// then with each passenger on the farmer's bank in declaration order.
// Successors that break a conflict rule are left out.
func Moves(d *Definition, s State) []State {
	var out []State
	try := func(passenger int) {
		next := make(State, len(s))
		copy(next, s)
		next[0] = !s[0]
		if passenger > 0 {
			next[passenger] = !s[passenger]
		}
		if Valid(d, next) {
			out = append(out, next)
		}
	}

	try(0)
	for i := 1; i < len(s); i++ {
		if s[i] == s[0] {
			try(i)
		}
	}

	return out
}
