package state

import (
	"fmt"
	"math/rand"
)

// Display names are adjective+noun+number. Uniqueness is not enforced; the
// connection id is the identity, the name is cosmetic.
var (
	nameAdjectives = []string{
		"Brave", "Clever", "Daring", "Eager", "Fierce",
		"Gentle", "Hidden", "Iron", "Jolly", "Keen",
		"Lucky", "Mighty", "Nimble", "Quiet", "Rapid",
		"Sly", "Stout", "Swift", "Wild", "Wise",
	}
	nameNouns = []string{
		"Badger", "Crow", "Drake", "Falcon", "Fox",
		"Hawk", "Lynx", "Otter", "Raven", "Stag",
		"Tiger", "Viper", "Wolf", "Wren", "Boar",
	}
)

// GenerateName rolls a random display name for a new player.
func GenerateName(rng *rand.Rand) string {
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	adjective := nameAdjectives[intn(len(nameAdjectives))]
	noun := nameNouns[intn(len(nameNouns))]
	return fmt.Sprintf("%s%s%d", adjective, noun, intn(1000))
}
