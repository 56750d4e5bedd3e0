// Package proto defines the websocket wire messages. Payloads are flat JSON
// records; the Type field routes them on both sides.
package proto

import (
	"encoding/json"

	"github.com/GodfreyDev/ChatGame/internal/items"
	"github.com/GodfreyDev/ChatGame/internal/state"
	"github.com/GodfreyDev/ChatGame/internal/world"
)

// Client message type identifiers.
const (
	TypePlayerMovement = "playerMovement"
	TypeChatMessage    = "chatMessage"
	TypePrivateMessage = "privateMessage"
	TypePickupItem     = "pickupItem"
	TypeAttack         = "attack"
	TypeTradeRequest   = "tradeRequest"
	TypeAcceptTrade    = "acceptTrade"
	TypeDeclineTrade   = "declineTrade"
	TypeEquipItem      = "equipItem"
	TypeUsePotion      = "usePotion"
)

// Server message type identifiers.
const (
	TypeCurrentPlayers     = "currentPlayers"
	TypeCurrentItems       = "currentItems"
	TypeUpdateEnemies      = "updateEnemies"
	TypeWorldInfo          = "worldInfo"
	TypeNewPlayer          = "newPlayer"
	TypePlayerMoved        = "playerMoved"
	TypePlayerDamaged      = "playerDamaged"
	TypePlayerHealed       = "playerHealed"
	TypePlayerKilled       = "playerKilled"
	TypePlayerEquipped     = "playerEquipped"
	TypePlayerDisconnected = "playerDisconnected"
	TypeItemPickedUp       = "itemPickedUp"
	TypeEnemyKilled        = "enemyKilled"
	TypeAttackError        = "attackError"
	TypeChatError          = "chatError"
	TypeTradeSuccess       = "tradeSuccess"
	TypeTradeError         = "tradeError"
	TypeTradeDeclined      = "tradeDeclined"
	TypeRewardCode         = "rewardCode"
	TypeUpdateCopper       = "updateCopper"
)

// WeaponPayload mirrors the weapon object attached to attack messages.
type WeaponPayload struct {
	Type   string `json:"type"`
	Damage int    `json:"damage"`
}

// ClientMessage captures every inbound websocket message. Unused fields stay
// at their zero values; Type selects the meaningful subset.
type ClientMessage struct {
	Type               string         `json:"type"`
	X                  float64        `json:"x"`
	Y                  float64        `json:"y"`
	Direction          string         `json:"direction"`
	FrameIndex         int            `json:"frameIndex"`
	Health             int            `json:"health"`
	Message            string         `json:"message"`
	RecipientID        string         `json:"recipientId"`
	ItemID             string         `json:"itemId"`
	ItemIndex          *int           `json:"itemIndex"`
	TargetID           string         `json:"targetId"`
	Weapon             *WeaponPayload `json:"weapon"`
	OfferedItemIndex   int            `json:"offeredItemIndex"`
	RequestedItemIndex int            `json:"requestedItemIndex"`
	SenderID           string         `json:"senderId"`
}

// CurrentPlayersMessage is the player part of the join snapshot.
type CurrentPlayersMessage struct {
	Type    string         `json:"type"`
	SelfID  string         `json:"selfId"`
	Players []state.Player `json:"players"`
}

// CurrentItemsMessage is the ground-item part of the join snapshot.
type CurrentItemsMessage struct {
	Type  string             `json:"type"`
	Items []items.GroundItem `json:"items"`
}

// UpdateEnemiesMessage is the full enemy set, sent on join and every tick.
type UpdateEnemiesMessage struct {
	Type    string        `json:"type"`
	Enemies []state.Enemy `json:"enemies"`
}

// WorldInfoMessage describes the static world geometry for the client. The
// tile grid itself is regenerated client-side from the same deterministic
// procedure, so only dimensions and safe zones travel.
type WorldInfoMessage struct {
	Type       string       `json:"type"`
	GridWidth  int          `json:"gridWidth"`
	GridHeight int          `json:"gridHeight"`
	TileSize   float64      `json:"tileSize"`
	SafeZones  []world.Rect `json:"safeZones"`
}

// NewPlayerMessage announces an arrival to everyone else.
type NewPlayerMessage struct {
	Type   string       `json:"type"`
	Player state.Player `json:"player"`
}

// PlayerMovedMessage mirrors an accepted movement report.
type PlayerMovedMessage struct {
	Type       string          `json:"type"`
	ID         string          `json:"id"`
	X          float64         `json:"x"`
	Y          float64         `json:"y"`
	Direction  state.Direction `json:"direction"`
	FrameIndex int             `json:"frameIndex"`
	Health     int             `json:"health"`
}

// PlayerDamagedMessage carries a target's surviving health.
type PlayerDamagedMessage struct {
	Type   string `json:"type"`
	ID     string `json:"id"`
	Health int    `json:"health"`
}

// PlayerHealedMessage mirrors a potion consumption.
type PlayerHealedMessage struct {
	Type   string `json:"type"`
	ID     string `json:"id"`
	Health int    `json:"health"`
}

// PlayerKilledMessage is the death notice broadcast before the forced
// disconnect.
type PlayerKilledMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	By   string `json:"by,omitempty"`
}

// PlayerEquippedMessage mirrors an equipped-item change.
type PlayerEquippedMessage struct {
	Type          string `json:"type"`
	ID            string `json:"id"`
	EquippedIndex int    `json:"equippedIndex"`
}

// PlayerDisconnectedMessage announces a departure.
type PlayerDisconnectedMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// ItemPickedUpMessage broadcasts a ground item's removal.
type ItemPickedUpMessage struct {
	Type     string `json:"type"`
	ItemID   string `json:"itemId"`
	PlayerID string `json:"playerId"`
}

// EnemyKilledMessage broadcasts an enemy's removal.
type EnemyKilledMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	By   string `json:"by,omitempty"`
}

// AttackErrorMessage reports a rejected attack to its initiator only.
type AttackErrorMessage struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// ChatMessage fans a chat line out with the sender id attached.
type ChatMessage struct {
	Type       string `json:"type"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName,omitempty"`
	Message    string `json:"message"`
}

// ChatErrorMessage reports an undeliverable private message to its sender.
type ChatErrorMessage struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// TradeRequestMessage notifies the recipient of a pending offer with full
// item details.
type TradeRequestMessage struct {
	Type           string     `json:"type"`
	SenderID       string     `json:"senderId"`
	SenderName     string     `json:"senderName"`
	OfferedIndex   int        `json:"offeredItemIndex"`
	RequestedIndex int        `json:"requestedItemIndex"`
	OfferedItem    items.Item `json:"offeredItem"`
	RequestedItem  items.Item `json:"requestedItem"`
}

// TradeSuccessMessage hands each party its post-swap inventory.
type TradeSuccessMessage struct {
	Type      string       `json:"type"`
	PartnerID string       `json:"partnerId"`
	Inventory []items.Item `json:"inventory"`
}

// TradeErrorMessage reports a failed proposal or acceptance.
type TradeErrorMessage struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// TradeDeclinedMessage tells the sender their offer was turned down.
type TradeDeclinedMessage struct {
	Type        string `json:"type"`
	RecipientID string `json:"recipientId"`
}

// RewardCodeMessage delivers a kill reward code to the killer only.
type RewardCodeMessage struct {
	Type string `json:"type"`
	Code string `json:"code"`
}

// UpdateCopperMessage mirrors a copper balance change to its owner.
type UpdateCopperMessage struct {
	Type   string `json:"type"`
	Copper int    `json:"copper"`
}

// Encode renders any outbound message as JSON.
func Encode(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

// Decode parses an inbound client message.
func Decode(data []byte) (ClientMessage, error) {
	var msg ClientMessage
	err := json.Unmarshal(data, &msg)
	return msg, err
}
