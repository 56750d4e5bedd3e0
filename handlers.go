package server

import (
	"context"

	"github.com/GodfreyDev/ChatGame/internal/items"
	"github.com/GodfreyDev/ChatGame/internal/net/proto"
	"github.com/GodfreyDev/ChatGame/internal/sim"
	"github.com/GodfreyDev/ChatGame/internal/state"
	"github.com/GodfreyDev/ChatGame/logging"
	combatlog "github.com/GodfreyDev/ChatGame/logging/combat"
	economylog "github.com/GodfreyDev/ChatGame/logging/economy"
	tradelog "github.com/GodfreyDev/ChatGame/logging/trade"
)

// Dispatch routes one inbound client message to its handler. Unknown types
// are logged and dropped; a malformed reference inside a known type is a
// silent no-op per the error model.
func (h *Hub) Dispatch(playerID string, msg proto.ClientMessage) {
	switch msg.Type {
	case proto.TypePlayerMovement:
		h.HandleMovement(playerID, msg)
	case proto.TypeChatMessage:
		h.HandleChat(playerID, msg.Message)
	case proto.TypePrivateMessage:
		h.HandlePrivateMessage(playerID, msg.RecipientID, msg.Message)
	case proto.TypePickupItem:
		h.HandlePickup(playerID, msg.ItemID)
	case proto.TypeAttack:
		h.HandleAttack(playerID, msg.TargetID, msg.Weapon)
	case proto.TypeTradeRequest:
		h.HandleTradeRequest(playerID, msg.RecipientID, msg.OfferedItemIndex, msg.RequestedItemIndex)
	case proto.TypeAcceptTrade:
		h.HandleAcceptTrade(playerID, msg.SenderID)
	case proto.TypeDeclineTrade:
		h.HandleDeclineTrade(playerID, msg.SenderID)
	case proto.TypeEquipItem:
		if msg.ItemIndex != nil {
			h.HandleEquipItem(playerID, *msg.ItemIndex)
		}
	case proto.TypeUsePotion:
		if msg.ItemIndex != nil {
			h.HandleUsePotion(playerID, *msg.ItemIndex)
		}
	default:
		h.logger.Printf("unknown message type %q from %s", msg.Type, playerID)
	}
}

// HandleMovement overwrites the sender's position, direction, frame, and
// health from the report, then mirrors it to everyone else. When validation
// is enabled a report whose bounding box clips a wall is discarded and the
// authoritative state is echoed back to the sender only.
func (h *Hub) HandleMovement(playerID string, msg proto.ClientMessage) {
	h.mu.Lock()
	player, ok := h.world.Player(playerID)
	if !ok {
		h.mu.Unlock()
		return
	}

	if h.cfg.ValidateMovement {
		half := sim.PlayerHalf
		if h.world.Map().CollidesWall(msg.X-half, msg.Y-half, 2*half, 2*half) {
			correction := h.movedMessage(player)
			h.mu.Unlock()
			h.sendTo(playerID, correction)
			return
		}
	}

	player.X = msg.X
	player.Y = msg.Y
	player.FrameIndex = msg.FrameIndex
	player.Health = state.ClampHealth(msg.Health, player.MaxHealth)
	if direction, ok := state.ParseDirection(msg.Direction); ok {
		player.Direction = direction
	}
	moved := h.movedMessage(player)
	h.mu.Unlock()

	h.broadcastExcept(playerID, moved)
}

func (h *Hub) movedMessage(player *state.PlayerState) proto.PlayerMovedMessage {
	return proto.PlayerMovedMessage{
		Type:       proto.TypePlayerMoved,
		ID:         player.ID,
		X:          player.X,
		Y:          player.Y,
		Direction:  player.Direction,
		FrameIndex: player.FrameIndex,
		Health:     player.Health,
	}
}

// HandleChat fans a chat line out to every connection with the sender
// attached.
func (h *Hub) HandleChat(playerID, message string) {
	if message == "" {
		return
	}
	h.mu.Lock()
	player, ok := h.world.Player(playerID)
	name := ""
	if ok {
		name = player.Name
	}
	h.mu.Unlock()
	if !ok {
		return
	}
	h.broadcast(proto.ChatMessage{Type: proto.TypeChatMessage, SenderID: playerID, SenderName: name, Message: message})
}

// HandlePrivateMessage routes a line to a single recipient, reporting an
// error back to the sender when the recipient is gone.
func (h *Hub) HandlePrivateMessage(playerID, recipientID, message string) {
	h.mu.Lock()
	sender, senderOK := h.world.Player(playerID)
	_, recipientOK := h.world.Player(recipientID)
	name := ""
	if senderOK {
		name = sender.Name
	}
	h.mu.Unlock()
	if !senderOK {
		return
	}
	if !recipientOK {
		h.sendTo(playerID, proto.ChatErrorMessage{Type: proto.TypeChatError, Reason: "recipient not found"})
		return
	}
	h.sendTo(recipientID, proto.ChatMessage{Type: proto.TypePrivateMessage, SenderID: playerID, SenderName: name, Message: message})
}

// HandlePickup moves a ground item into the requester's inventory if it is
// still in the world, then broadcasts the removal.
func (h *Hub) HandlePickup(playerID, itemID string) {
	h.mu.Lock()
	item, ok := h.world.PickupItem(playerID, itemID)
	h.mu.Unlock()
	if !ok {
		return
	}

	h.broadcast(proto.ItemPickedUpMessage{Type: proto.TypeItemPickedUp, ItemID: itemID, PlayerID: playerID})
	economylog.Pickup(context.Background(), h.publisher, h.tick.Load(),
		logging.EntityRef{ID: playerID, Kind: logging.EntityKindPlayer},
		logging.EntityRef{ID: itemID, Kind: logging.EntityKindItem},
		string(item.Type))
}

// HandleAttack resolves a player-initiated attack and fans the consequences
// out. Rejections go back to the attacker only; stale targets are silent.
func (h *Hub) HandleAttack(playerID, targetID string, weapon *proto.WeaponPayload) {
	var weaponItem *items.Item
	weaponName := ""
	if weapon != nil {
		kind, _ := items.ParseKind(weapon.Type)
		weaponItem = &items.Item{Type: kind, Damage: weapon.Damage}
		weaponName = weapon.Type
	}

	h.mu.Lock()
	outcome := h.world.ResolveAttack(playerID, targetID, weaponItem)
	h.mu.Unlock()

	tick := h.tick.Load()
	attackerRef := logging.EntityRef{ID: playerID, Kind: logging.EntityKindPlayer}

	switch {
	case outcome.Rejected:
		h.sendTo(playerID, proto.AttackErrorMessage{Type: proto.TypeAttackError, Reason: outcome.Reason})
		combatlog.Rejected(context.Background(), h.publisher, tick, attackerRef, outcome.Reason)
	case outcome.NotFound:
		// Stale reference: idempotent no-op.
	case outcome.TargetKind == sim.TargetPlayer:
		targetRef := logging.EntityRef{ID: outcome.TargetID, Kind: logging.EntityKindPlayer}
		if outcome.Killed {
			h.broadcast(proto.PlayerKilledMessage{Type: proto.TypePlayerKilled, ID: outcome.TargetID, By: playerID})
			combatlog.Defeat(context.Background(), h.publisher, tick, attackerRef, targetRef, combatlog.DefeatPayload{Weapon: weaponName})
			h.forceDisconnect(outcome.TargetID, "killed")
		} else {
			h.broadcast(proto.PlayerDamagedMessage{Type: proto.TypePlayerDamaged, ID: outcome.TargetID, Health: outcome.Health})
			combatlog.Damage(context.Background(), h.publisher, tick, attackerRef, targetRef, combatlog.DamagePayload{
				Weapon:       weaponName,
				Amount:       float64(outcome.Damage),
				Absorbed:     float64(outcome.Absorbed),
				TargetHealth: float64(outcome.Health),
			})
		}
	case outcome.TargetKind == sim.TargetEnemy:
		targetRef := logging.EntityRef{ID: outcome.TargetID, Kind: logging.EntityKindEnemy}
		if outcome.Killed {
			h.broadcast(proto.EnemyKilledMessage{Type: proto.TypeEnemyKilled, ID: outcome.TargetID, By: playerID})
			h.sendTo(playerID, proto.UpdateCopperMessage{Type: proto.TypeUpdateCopper, Copper: outcome.AttackerCopper})
			h.sendTo(playerID, proto.RewardCodeMessage{Type: proto.TypeRewardCode, Code: outcome.RewardCode})
			combatlog.Defeat(context.Background(), h.publisher, tick, attackerRef, targetRef, combatlog.DefeatPayload{Weapon: weaponName})
			economylog.Reward(context.Background(), h.publisher, tick, attackerRef, outcome.RewardCopper)
		} else {
			// Surviving enemy health reaches clients with the next tick's
			// full enemy broadcast.
			combatlog.Damage(context.Background(), h.publisher, tick, attackerRef, targetRef, combatlog.DamagePayload{
				Weapon:       weaponName,
				Amount:       float64(outcome.Damage),
				TargetHealth: float64(outcome.Health),
			})
		}
	}
}

// HandleTradeRequest records a swap offer and notifies the recipient with
// full item details. Failures notify the sender only and change nothing.
func (h *Hub) HandleTradeRequest(senderID, recipientID string, offeredIndex, requestedIndex int) {
	h.mu.Lock()
	proposal, reason := h.world.ProposeTrade(senderID, recipientID, offeredIndex, requestedIndex)
	h.mu.Unlock()

	tick := h.tick.Load()
	senderRef := logging.EntityRef{ID: senderID, Kind: logging.EntityKindPlayer}
	recipientRef := logging.EntityRef{ID: recipientID, Kind: logging.EntityKindPlayer}

	if reason != "" {
		h.sendTo(senderID, proto.TradeErrorMessage{Type: proto.TypeTradeError, Reason: reason})
		tradelog.Failed(context.Background(), h.publisher, tick, senderRef, recipientRef, reason)
		return
	}

	h.sendTo(recipientID, proto.TradeRequestMessage{
		Type:           proto.TypeTradeRequest,
		SenderID:       proposal.SenderID,
		SenderName:     proposal.SenderName,
		OfferedIndex:   proposal.OfferedIndex,
		RequestedIndex: proposal.RequestedIndex,
		OfferedItem:    proposal.OfferedItem,
		RequestedItem:  proposal.RequestedItem,
	})
	tradelog.Proposed(context.Background(), h.publisher, tick, senderRef, recipientRef,
		tradelog.OfferPayload{OfferedIndex: proposal.OfferedIndex, RequestedIndex: proposal.RequestedIndex})
}

// HandleAcceptTrade re-validates and executes a pending swap. Success hands
// each party its new inventory; a stale slot fails the trade for both.
func (h *Hub) HandleAcceptTrade(recipientID, senderID string) {
	h.mu.Lock()
	result := h.world.AcceptTrade(recipientID, senderID)
	h.mu.Unlock()

	tick := h.tick.Load()
	senderRef := logging.EntityRef{ID: senderID, Kind: logging.EntityKindPlayer}
	recipientRef := logging.EntityRef{ID: recipientID, Kind: logging.EntityKindPlayer}

	if !result.OK {
		failure := proto.TradeErrorMessage{Type: proto.TypeTradeError, Reason: result.Reason}
		h.sendTo(senderID, failure)
		h.sendTo(recipientID, failure)
		tradelog.Failed(context.Background(), h.publisher, tick, senderRef, recipientRef, result.Reason)
		return
	}

	h.sendTo(senderID, proto.TradeSuccessMessage{Type: proto.TypeTradeSuccess, PartnerID: recipientID, Inventory: result.SenderInventory})
	h.sendTo(recipientID, proto.TradeSuccessMessage{Type: proto.TypeTradeSuccess, PartnerID: senderID, Inventory: result.RecipientInventory})
	tradelog.Accepted(context.Background(), h.publisher, tick, senderRef, recipientRef, tradelog.OfferPayload{})
}

// HandleDeclineTrade clears a matching offer and tells the sender.
func (h *Hub) HandleDeclineTrade(recipientID, senderID string) {
	h.mu.Lock()
	ok := h.world.DeclineTrade(recipientID, senderID)
	h.mu.Unlock()
	if !ok {
		return
	}

	h.sendTo(senderID, proto.TradeDeclinedMessage{Type: proto.TypeTradeDeclined, RecipientID: recipientID})
	tradelog.Declined(context.Background(), h.publisher, h.tick.Load(),
		logging.EntityRef{ID: senderID, Kind: logging.EntityKindPlayer},
		logging.EntityRef{ID: recipientID, Kind: logging.EntityKindPlayer})
}

// HandleEquipItem updates the equipped-item reference and mirrors it.
func (h *Hub) HandleEquipItem(playerID string, index int) {
	h.mu.Lock()
	_, ok := h.world.EquipItem(playerID, index)
	h.mu.Unlock()
	if !ok {
		return
	}
	h.broadcast(proto.PlayerEquippedMessage{Type: proto.TypePlayerEquipped, ID: playerID, EquippedIndex: index})
}

// HandleUsePotion consumes a potion and mirrors the healed state.
func (h *Hub) HandleUsePotion(playerID string, index int) {
	h.mu.Lock()
	_, health, ok := h.world.UsePotion(playerID, index)
	h.mu.Unlock()
	if !ok {
		return
	}
	h.broadcast(proto.PlayerHealedMessage{Type: proto.TypePlayerHealed, ID: playerID, Health: health})
}
