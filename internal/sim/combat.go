package sim

import (
	"github.com/google/uuid"

	"github.com/GodfreyDev/ChatGame/internal/items"
	"github.com/GodfreyDev/ChatGame/internal/state"
)

// DefaultAttackDamage applies when the attack payload names no weapon.
const DefaultAttackDamage = 10

// Attack reject reasons reported back to the originating connection.
const (
	RejectAttackerSafeZone = "safe zone: attacker"
	RejectTargetSafeZone   = "safe zone: target"
)

// TargetKind classifies what an attack resolved against.
type TargetKind string

const (
	TargetPlayer TargetKind = "player"
	TargetEnemy  TargetKind = "enemy"
)

// AttackOutcome reports the result of one attack resolution. Exactly one of
// Rejected, NotFound, or a resolved target applies.
type AttackOutcome struct {
	Rejected bool
	Reason   string
	NotFound bool

	TargetKind TargetKind
	TargetID   string
	Damage     int
	Absorbed   int
	Health     int
	Killed     bool

	// Set when an enemy kill rewards the attacker.
	RewardCopper   int
	RewardCode     string
	AttackerCopper int
}

// ResolveAttack applies one player-initiated attack. The attacker must exist
// and stand outside every safe zone; player targets are additionally
// protected while inside a safe zone. Enemies get no such protection. Damage
// comes from the weapon payload, defaulting to DefaultAttackDamage, and is
// reduced by a shield anywhere in a player target's inventory.
//
// Lethal damage removes the target from the store. A destroyed enemy grants
// the attacker KillReward copper and a freshly minted reward code.
func (w *World) ResolveAttack(attackerID, targetID string, weapon *items.Item) AttackOutcome {
	attacker, ok := w.players[attackerID]
	if !ok {
		return AttackOutcome{NotFound: true}
	}
	if w.worldMap.IsInSafeZone(attacker.X, attacker.Y) {
		return AttackOutcome{Rejected: true, Reason: RejectAttackerSafeZone}
	}

	damage := DefaultAttackDamage
	if weapon != nil && weapon.Damage > 0 {
		damage = weapon.Damage
	}

	if target, ok := w.players[targetID]; ok {
		if w.worldMap.IsInSafeZone(target.X, target.Y) {
			return AttackOutcome{Rejected: true, Reason: RejectTargetSafeZone}
		}
		dealt, absorbed, killed := w.damagePlayer(target, damage)
		if killed {
			w.RemovePlayer(targetID)
		}
		return AttackOutcome{
			TargetKind: TargetPlayer,
			TargetID:   targetID,
			Damage:     dealt,
			Absorbed:   absorbed,
			Health:     target.Health,
			Killed:     killed,
		}
	}

	if target, ok := w.enemies[targetID]; ok {
		target.ApplyHealthDelta(-damage)
		outcome := AttackOutcome{
			TargetKind: TargetEnemy,
			TargetID:   targetID,
			Damage:     damage,
			Health:     target.Health,
		}
		if target.Health <= 0 {
			delete(w.enemies, targetID)
			attacker.Copper += KillReward
			outcome.Killed = true
			outcome.RewardCopper = KillReward
			outcome.RewardCode = uuid.NewString()
			outcome.AttackerCopper = attacker.Copper
		}
		return outcome
	}

	// Stale target id: silent idempotent failure.
	return AttackOutcome{NotFound: true}
}

// damagePlayer applies shield-reduced damage to a player. A shield anywhere
// in the inventory absorbs up to its defense, equipped or not. Returns the
// damage actually dealt, the amount absorbed, and whether the blow was fatal.
func (w *World) damagePlayer(target *state.PlayerState, damage int) (int, int, bool) {
	absorbed := 0
	if shield, ok := target.FirstShield(); ok {
		absorbed = shield.Defense
		if absorbed > damage {
			absorbed = damage
		}
	}
	dealt := damage - absorbed
	target.ApplyHealthDelta(-dealt)
	return dealt, absorbed, target.Health <= 0
}
