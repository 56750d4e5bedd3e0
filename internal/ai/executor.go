package ai

import (
	"math"
	"math/rand"
	"time"

	"github.com/GodfreyDev/ChatGame/internal/state"
)

// Advance runs one tick of the enemy state machine. Transitions are evaluated
// in priority order: a player inside the aggro radius forces a chase
// regardless of any running timer; otherwise an expired timer rolls a fresh
// idle/move action; otherwise the current action continues and its timer
// burns down by the elapsed tick time.
//
// The blackboard is mutated in place. The returned decision carries the
// movement intent for the caller to apply against the collision model, plus a
// melee attack target when the chase has closed to striking range and the
// cooldown has elapsed.
func Advance(bb *Blackboard, cfg Config, rng *rand.Rand, enemyX, enemyY float64, lastAttack, now time.Time, players []PlayerRef, dt float64) Decision {
	if bb.Action == "" {
		bb.Action = state.AIActionIdle
	}

	nearest, nearestDist, found := nearestPlayer(enemyX, enemyY, players)

	switch {
	case found && nearestDist < cfg.AggroRadius:
		bb.Action = state.AIActionChase
		bb.TargetID = nearest.ID
	case bb.Timer <= 0:
		if rng.Intn(2) == 0 {
			bb.Action = state.AIActionIdle
		} else {
			bb.Action = state.AIActionMove
		}
		bb.Timer = cfg.MinActionTime + rng.Float64()*(cfg.MaxActionTime-cfg.MinActionTime)
		bb.Heading = state.CardinalDirections[rng.Intn(len(state.CardinalDirections))]
		bb.TargetID = ""
	default:
		bb.Timer -= dt
	}

	switch bb.Action {
	case state.AIActionChase:
		target, ok := playerByID(players, bb.TargetID)
		if !ok {
			// Target vanished mid-chase; hold position until the timer
			// branch rolls a new action.
			return Decision{Facing: bb.Heading}
		}
		dx := target.X - enemyX
		dy := target.Y - enemyY
		angle := math.Atan2(dy, dx)
		facing := state.DeriveFacing(dx, dy, bb.Heading)
		bb.Heading = facing

		decision := Decision{
			MoveX:  math.Cos(angle),
			MoveY:  math.Sin(angle),
			Facing: facing,
		}
		dist := math.Hypot(dx, dy)
		if dist < cfg.MeleeRange && now.Sub(lastAttack) >= cfg.AttackCooldown {
			decision.AttackTargetID = target.ID
		}
		return decision
	case state.AIActionMove:
		moveX, moveY := state.DirectionToVector(bb.Heading)
		return Decision{MoveX: moveX, MoveY: moveY, Facing: bb.Heading}
	default:
		return Decision{Facing: bb.Heading}
	}
}

func nearestPlayer(x, y float64, players []PlayerRef) (PlayerRef, float64, bool) {
	var nearest PlayerRef
	nearestDist := math.MaxFloat64
	found := false
	for _, player := range players {
		dist := math.Hypot(player.X-x, player.Y-y)
		if dist < nearestDist {
			nearest = player
			nearestDist = dist
			found = true
		}
	}
	return nearest, nearestDist, found
}

func playerByID(players []PlayerRef, id string) (PlayerRef, bool) {
	if id == "" {
		return PlayerRef{}, false
	}
	for _, player := range players {
		if player.ID == id {
			return player, true
		}
	}
	return PlayerRef{}, false
}
