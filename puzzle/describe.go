package puzzle

import (
	"fmt"
)

// Describe names the move that turns from into to, for example
// "farmer crosses to the far bank with the goose". It returns an empty
// string when the two states are not one legal crossing apart.
func Describe(d *Definition, from, to State) string {
	if len(from) != d.Width() || len(to) != d.Width() || from[0] == to[0] {
		return ""
	}

	bank := "far bank"
	if to[0] {
		bank = "near bank"
	}

	var carried []string
	for i := 1; i < len(from); i++ {
		if from[i] == to[i] {
			continue
		}
		if from[i] != from[0] {
			return ""
		}
		carried = append(carried, d.Passengers[i-1])
	}

	switch len(carried) {
	case 0:
		return fmt.Sprintf("%s crosses to the %s alone", d.farmerName(), bank)
	case 1:
		return fmt.Sprintf("%s crosses to the %s with the %s", d.farmerName(), bank, carried[0])
	default:
		return ""
	}
}
