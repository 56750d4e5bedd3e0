package items

import "github.com/google/uuid"

// Kind enumerates the item archetypes known to the world.
type Kind string

const (
	KindSword  Kind = "sword"
	KindStaff  Kind = "staff"
	KindPotion Kind = "potion"
	KindShield Kind = "shield"
)

// ParseKind validates an item kind received from a client.
func ParseKind(value string) (Kind, bool) {
	switch Kind(value) {
	case KindSword, KindStaff, KindPotion, KindShield:
		return Kind(value), true
	default:
		return "", false
	}
}

// Item is an immutable world object. Exactly one attribute is meaningful per
// kind: Damage for swords and staves, Healing for potions, Defense for
// shields. Ownership moves between the ground and a single inventory slot;
// the item itself never changes.
type Item struct {
	ID      string `json:"id"`
	Type    Kind   `json:"type"`
	Damage  int    `json:"damage,omitempty"`
	Healing int    `json:"healing,omitempty"`
	Defense int    `json:"defense,omitempty"`
}

// IsWeapon reports whether the item can source attack damage.
func (i Item) IsWeapon() bool {
	return i.Type == KindSword || i.Type == KindStaff
}

// NewSword mints a sword with the given damage.
func NewSword(damage int) Item {
	return Item{ID: uuid.NewString(), Type: KindSword, Damage: damage}
}

// NewStaff mints a staff with the given damage.
func NewStaff(damage int) Item {
	return Item{ID: uuid.NewString(), Type: KindStaff, Damage: damage}
}

// NewPotion mints a potion with the given healing amount.
func NewPotion(healing int) Item {
	return Item{ID: uuid.NewString(), Type: KindPotion, Healing: healing}
}

// NewShield mints a shield with the given defense.
func NewShield(defense int) Item {
	return Item{ID: uuid.NewString(), Type: KindShield, Defense: defense}
}

// GroundItem is an item lying in the world at a position. Once picked up the
// wrapper is discarded and only the Item travels into the inventory.
type GroundItem struct {
	Item
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
