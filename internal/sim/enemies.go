package sim

import (
	"time"

	"github.com/GodfreyDev/ChatGame/internal/ai"
	"github.com/GodfreyDev/ChatGame/internal/state"
)

// EnemyAttack reports one enemy melee hit resolved during a tick pass.
type EnemyAttack struct {
	EnemyID  string
	TargetID string
	Damage   int
	Absorbed int
	Health   int
	Killed   bool
}

// TickResult carries everything the hub must broadcast after one tick pass.
type TickResult struct {
	Enemies []state.Enemy
	Attacks []EnemyAttack
}

// AdvanceEnemies runs one tick of every enemy's state machine against the
// current player set, applies movement through the collision model, and
// resolves melee strikes.
//
// A proposed position is rejected wholesale when any bounding-box corner
// lands on a WALL tile; the AI state and timer still advance on rejection.
// Enemy melee is deliberately not gated by safe zones.
func (w *World) AdvanceEnemies(now time.Time, dt float64) TickResult {
	players := w.playerRefs()
	result := TickResult{}

	for _, id := range w.sortedEnemyIDs() {
		enemy := w.enemies[id]
		decision := ai.Advance(&enemy.Blackboard, w.aiConfig, w.rng, enemy.X, enemy.Y, enemy.LastAttack, now, players, dt)

		enemy.Direction = decision.Facing
		if decision.Moving() {
			nextX := enemy.X + decision.MoveX*enemy.Speed*dt
			nextY := enemy.Y + decision.MoveY*enemy.Speed*dt
			if !w.worldMap.CollidesWall(nextX, nextY, enemy.Width, enemy.Height) {
				enemy.X = nextX
				enemy.Y = nextY
			}
			enemy.FrameIndex++
		}

		if decision.AttackTargetID != "" {
			if target, ok := w.players[decision.AttackTargetID]; ok {
				dealt, absorbed, killed := w.damagePlayer(target, w.aiConfig.AttackDamage)
				enemy.LastAttack = now
				if killed {
					w.RemovePlayer(target.ID)
					players = w.playerRefs()
				}
				result.Attacks = append(result.Attacks, EnemyAttack{
					EnemyID:  enemy.ID,
					TargetID: target.ID,
					Damage:   dealt,
					Absorbed: absorbed,
					Health:   target.Health,
					Killed:   killed,
				})
			}
		}
	}

	result.Enemies = w.EnemiesSnapshot()
	return result
}
