package sim

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/GodfreyDev/ChatGame/internal/ai"
	"github.com/GodfreyDev/ChatGame/internal/items"
	"github.com/GodfreyDev/ChatGame/internal/state"
	worldpkg "github.com/GodfreyDev/ChatGame/internal/world"
)

// Enemy archetype tuning. Dimensions are world units.
const (
	enemyWidth     = 48.0
	enemyHeight    = 48.0
	enemySpeed     = 120.0
	enemyMaxHealth = 50

	playerMaxHealth = 100

	// PlayerHalf is the half-extent of the player's collision box.
	PlayerHalf = 24.0
)

// KillReward is the copper granted for destroying an enemy.
const KillReward = 10

// World is the single shared aggregate of mutable game state: players,
// enemies, ground items, and pending trades (stored on their senders). It has
// no lock of its own; the hub serializes every operation and every tick pass.
type World struct {
	worldMap *worldpkg.Map
	rng      *rand.Rand
	aiConfig ai.Config

	players map[string]*state.PlayerState
	enemies map[string]*state.EnemyState
	ground  map[string]*items.GroundItem
}

// NewWorld constructs an empty world over the generated map.
func NewWorld(worldMap *worldpkg.Map, rng *rand.Rand, aiConfig ai.Config) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &World{
		worldMap: worldMap,
		rng:      rng,
		aiConfig: aiConfig,
		players:  make(map[string]*state.PlayerState),
		enemies:  make(map[string]*state.EnemyState),
		ground:   make(map[string]*items.GroundItem),
	}
}

// Map exposes the immutable tile grid.
func (w *World) Map() *worldpkg.Map {
	return w.worldMap
}

// SpawnPlayer creates a player for the connection id at a uniform point in
// the spawn safe zone, with a generated display name and full health.
func (w *World) SpawnPlayer(id string, now time.Time) *state.PlayerState {
	x, y := w.worldMap.SpawnPoint(w.rng)
	player := state.NewPlayerState(id, state.GenerateName(w.rng), x, y, playerMaxHealth, now)
	w.players[id] = player
	return player
}

// Player looks a player up by connection id.
func (w *World) Player(id string) (*state.PlayerState, bool) {
	player, ok := w.players[id]
	return player, ok
}

// RemovePlayer drops the player and dissolves any trade offer that references
// them, in either direction.
func (w *World) RemovePlayer(id string) (*state.PlayerState, bool) {
	player, ok := w.players[id]
	if !ok {
		return nil, false
	}
	delete(w.players, id)
	for _, other := range w.players {
		if other.PendingTrade != nil && other.PendingTrade.RecipientID == id {
			other.PendingTrade = nil
		}
	}
	return player, true
}

// PlayerCount reports the live player population.
func (w *World) PlayerCount() int {
	return len(w.players)
}

// PlayersSnapshot returns wire-visible player records, ordered by id so
// broadcasts are stable.
func (w *World) PlayersSnapshot() []state.Player {
	snapshot := make([]state.Player, 0, len(w.players))
	for _, player := range w.players {
		snapshot = append(snapshot, player.Snapshot())
	}
	sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].ID < snapshot[j].ID })
	return snapshot
}

// SpawnEnemies places count enemies at random open positions with full
// health. Called once at world initialization.
func (w *World) SpawnEnemies(count int) {
	for i := 0; i < count; i++ {
		x, y := w.worldMap.RandomOpenPosition(w.rng, enemyWidth, enemyHeight)
		enemy := state.NewEnemyState(uuid.NewString(), x, y, enemyWidth, enemyHeight, enemySpeed, enemyMaxHealth)
		w.enemies[enemy.ID] = enemy
	}
}

// Enemy looks an enemy up by id.
func (w *World) Enemy(id string) (*state.EnemyState, bool) {
	enemy, ok := w.enemies[id]
	return enemy, ok
}

// EnemyCount reports the live enemy population.
func (w *World) EnemyCount() int {
	return len(w.enemies)
}

// EnemiesSnapshot returns wire-visible enemy records ordered by id.
func (w *World) EnemiesSnapshot() []state.Enemy {
	snapshot := make([]state.Enemy, 0, len(w.enemies))
	for _, enemy := range w.enemies {
		snapshot = append(snapshot, enemy.Snapshot())
	}
	sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].ID < snapshot[j].ID })
	return snapshot
}

// SpawnGroundItems places count items from the catalog at random open
// positions. Called once at world initialization.
func (w *World) SpawnGroundItems(count int) {
	spawned := items.SpawnInitial(count, func() (float64, float64) {
		return w.worldMap.RandomOpenPosition(w.rng, worldpkg.TileSize/2, worldpkg.TileSize/2)
	})
	for i := range spawned {
		item := spawned[i]
		w.ground[item.ID] = &item
	}
}

// AddGroundItem places a single item in the world, used by tests and drops.
func (w *World) AddGroundItem(item items.GroundItem) {
	w.ground[item.ID] = &item
}

// GroundItemCount reports how many items lie in the world.
func (w *World) GroundItemCount() int {
	return len(w.ground)
}

// GroundItemsSnapshot returns the world items ordered by id.
func (w *World) GroundItemsSnapshot() []items.GroundItem {
	snapshot := make([]items.GroundItem, 0, len(w.ground))
	for _, item := range w.ground {
		snapshot = append(snapshot, *item)
	}
	sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].ID < snapshot[j].ID })
	return snapshot
}

func (w *World) sortedEnemyIDs() []string {
	ids := make([]string, 0, len(w.enemies))
	for id := range w.enemies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (w *World) playerRefs() []ai.PlayerRef {
	refs := make([]ai.PlayerRef, 0, len(w.players))
	for _, player := range w.players {
		refs = append(refs, ai.PlayerRef{ID: player.ID, X: player.X, Y: player.Y})
	}
	return refs
}
