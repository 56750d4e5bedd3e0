package server

import (
	"context"
	"time"

	"github.com/GodfreyDev/ChatGame/internal/net/proto"
	"github.com/GodfreyDev/ChatGame/logging"
	combatlog "github.com/GodfreyDev/ChatGame/logging/combat"
	simulationlog "github.com/GodfreyDev/ChatGame/logging/simulation"
)

// maxTickDelta caps the elapsed time fed into one simulation step so a
// stalled process does not teleport every enemy on resume.
const maxTickDelta = 250 * time.Millisecond

// RunSimulation drives the fixed-cadence enemy update until stop closes.
// Each pass advances the AI under the hub lock, then fans the fresh enemy
// snapshot and any melee consequences out to every connection.
func (h *Hub) RunSimulation(stop <-chan struct{}) {
	interval := time.Second / time.Duration(h.cfg.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			delta := now.Sub(last)
			last = now
			if delta > maxTickDelta {
				delta = maxTickDelta
			}
			h.step(now, delta.Seconds())

			if spent := time.Since(now); spent > interval {
				simulationlog.TickBudgetExceeded(context.Background(), h.publisher, h.tick.Load(), spent, interval)
			}
		}
	}
}

// step runs one simulation pass and broadcasts its consequences.
func (h *Hub) step(now time.Time, dt float64) {
	tick := h.tick.Add(1)

	h.mu.Lock()
	result := h.world.AdvanceEnemies(now, dt)
	h.mu.Unlock()

	h.broadcast(proto.UpdateEnemiesMessage{Type: proto.TypeUpdateEnemies, Enemies: result.Enemies})

	for _, attack := range result.Attacks {
		enemyRef := logging.EntityRef{ID: attack.EnemyID, Kind: logging.EntityKindEnemy}
		targetRef := logging.EntityRef{ID: attack.TargetID, Kind: logging.EntityKindPlayer}
		if attack.Killed {
			h.broadcast(proto.PlayerKilledMessage{Type: proto.TypePlayerKilled, ID: attack.TargetID, By: attack.EnemyID})
			combatlog.Defeat(context.Background(), h.publisher, tick, enemyRef, targetRef, combatlog.DefeatPayload{})
			h.forceDisconnect(attack.TargetID, "killed")
			continue
		}
		h.broadcast(proto.PlayerDamagedMessage{Type: proto.TypePlayerDamaged, ID: attack.TargetID, Health: attack.Health})
		combatlog.Damage(context.Background(), h.publisher, tick, enemyRef, targetRef, combatlog.DamagePayload{
			Amount:       float64(attack.Damage),
			Absorbed:     float64(attack.Absorbed),
			TargetHealth: float64(attack.Health),
		})
	}
}
