// Package puzzle models river-crossing puzzles as state graphs.
//
// A puzzle has a farmer and a list of passengers. Each state records, for the
// farmer and every passenger, whether it stands on the near bank. The farmer
// rows across alone or with one passenger from the bank the farmer is on. A
// bank without the farmer must never hold both members of a conflict pair
// (the fox eats the goose, the goose eats the corn).
//
// BuildGraph turns a Definition into a frozen core.Graph holding every state,
// legal or not, with unit-weight transitions into legal states only.
package puzzle

import (
	"errors"
	"fmt"
)

// MaxPassengers bounds the state space to 2^(MaxPassengers+1) nodes.
const MaxPassengers = 15

// Sentinel errors for puzzle definitions and state keys.
var (
	// ErrNoPassengers indicates a definition with an empty passenger list.
	ErrNoPassengers = errors.New("puzzle: at least one passenger is required")

	// ErrTooManyPassengers indicates the state space would be too large.
	ErrTooManyPassengers = errors.New("puzzle: too many passengers")

	// ErrDuplicatePassenger indicates a passenger name listed twice.
	ErrDuplicatePassenger = errors.New("puzzle: duplicate passenger")

	// ErrUnknownPassenger indicates a conflict naming a passenger that is not listed.
	ErrUnknownPassenger = errors.New("puzzle: unknown passenger")

	// ErrBadStateKey indicates a key of the wrong length or with digits other than 0 and 1.
	ErrBadStateKey = errors.New("puzzle: malformed state key")

	// ErrInvalidState indicates a start or goal state that breaks a conflict rule.
	ErrInvalidState = errors.New("puzzle: state violates a conflict rule")
)

// Conflict says Predator eats Prey when they share a bank without the farmer.
type Conflict struct {
	Predator string
	Prey     string
}

// Definition describes one river-crossing puzzle.
type Definition struct {
	Name       string
	Farmer     string
	Passengers []string
	Conflicts  []Conflict
	Start      string // state key; empty means everyone on the near bank
	Goal       string // state key; empty means everyone on the far bank
}

// Classic returns the farmer, fox, goose and corn puzzle.
func Classic() *Definition {
	return &Definition{
		Name:       "classic",
		Farmer:     "farmer",
		Passengers: []string{"fox", "goose", "corn"},
		Conflicts: []Conflict{
			{Predator: "fox", Prey: "goose"},
			{Predator: "goose", Prey: "corn"},
		},
		Start: "1111",
		Goal:  "0000",
	}
}

// Width returns the number of positions in a state key: farmer plus passengers.
func (d *Definition) Width() int { return len(d.Passengers) + 1 }

// StartState returns the parsed start state, defaulting to everyone near.
func (d *Definition) StartState() (State, error) {
	if d.Start == "" {
		return AllNear(d), nil
	}

	return ParseKey(d, d.Start)
}

// GoalState returns the parsed goal state, defaulting to everyone far.
func (d *Definition) GoalState() (State, error) {
	if d.Goal == "" {
		return AllFar(d), nil
	}

	return ParseKey(d, d.Goal)
}

// Validate checks passengers, conflicts and the start and goal keys.
func (d *Definition) Validate() error {
	if len(d.Passengers) == 0 {
		return ErrNoPassengers
	}
	if len(d.Passengers) > MaxPassengers {
		return fmt.Errorf("%w: %d > %d", ErrTooManyPassengers, len(d.Passengers), MaxPassengers)
	}

	seen := make(map[string]bool, len(d.Passengers))
	for _, p := range d.Passengers {
		if seen[p] {
			return fmt.Errorf("%w: %q", ErrDuplicatePassenger, p)
		}
		seen[p] = true
	}
	for _, c := range d.Conflicts {
		for _, name := range []string{c.Predator, c.Prey} {
			if !seen[name] {
				return fmt.Errorf("%w: %q", ErrUnknownPassenger, name)
			}
		}
	}

	ends := []struct {
		label string
		get   func() (State, error)
	}{{"start", d.StartState}, {"goal", d.GoalState}}
	for _, end := range ends {
		s, err := end.get()
		if err != nil {
			return fmt.Errorf("%s: %w", end.label, err)
		}
		if !Valid(d, s) {
			return fmt.Errorf("%s %s: %w", end.label, s.Key(), ErrInvalidState)
		}
	}

	return nil
}

// index returns the state position of a passenger, or -1.
func (d *Definition) index(name string) int {
	for i, p := range d.Passengers {
		if p == name {
			return i + 1
		}
	}

	return -1
}

// farmerName returns the display name of the farmer.
func (d *Definition) farmerName() string {
	if d.Farmer == "" {
		return "farmer"
	}

	return d.Farmer
}
