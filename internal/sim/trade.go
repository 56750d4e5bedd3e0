package sim

import (
	"github.com/GodfreyDev/ChatGame/internal/items"
	"github.com/GodfreyDev/ChatGame/internal/state"
)

// Trade failure reasons reported to the involved parties.
const (
	TradeRejectUnknownSender    = "unknown sender"
	TradeRejectUnknownRecipient = "unknown recipient"
	TradeRejectSelfTrade        = "cannot trade with yourself"
	TradeRejectOfferedSlot      = "offered item no longer exists"
	TradeRejectRequestedSlot    = "requested item no longer exists"
	TradeRejectNoPending        = "no matching trade offer"
)

// TradeProposal describes a recorded offer, with full item details for the
// recipient notification.
type TradeProposal struct {
	SenderID       string
	SenderName     string
	RecipientID    string
	OfferedIndex   int
	RequestedIndex int
	OfferedItem    items.Item
	RequestedItem  items.Item
}

// TradeResult reports the outcome of an acceptance. On success both
// inventories changed; on failure nothing did. Either way the pending offer
// is cleared.
type TradeResult struct {
	OK                 bool
	Reason             string
	SenderID           string
	RecipientID        string
	SenderInventory    []items.Item
	RecipientInventory []items.Item
}

// ProposeTrade validates and records a two-item swap offer. A sender holds at
// most one pending offer; a second proposal silently replaces the first. On
// failure nothing is recorded and only the sender is notified.
func (w *World) ProposeTrade(senderID, recipientID string, offeredIndex, requestedIndex int) (TradeProposal, string) {
	sender, ok := w.players[senderID]
	if !ok {
		return TradeProposal{}, TradeRejectUnknownSender
	}
	if senderID == recipientID {
		return TradeProposal{}, TradeRejectSelfTrade
	}
	recipient, ok := w.players[recipientID]
	if !ok {
		return TradeProposal{}, TradeRejectUnknownRecipient
	}
	offered, ok := sender.ItemAt(offeredIndex)
	if !ok {
		return TradeProposal{}, TradeRejectOfferedSlot
	}
	requested, ok := recipient.ItemAt(requestedIndex)
	if !ok {
		return TradeProposal{}, TradeRejectRequestedSlot
	}

	sender.PendingTrade = &state.PendingTrade{
		SenderID:       senderID,
		RecipientID:    recipientID,
		OfferedIndex:   offeredIndex,
		RequestedIndex: requestedIndex,
	}
	return TradeProposal{
		SenderID:       senderID,
		SenderName:     sender.Name,
		RecipientID:    recipientID,
		OfferedIndex:   offeredIndex,
		RequestedIndex: requestedIndex,
		OfferedItem:    offered,
		RequestedItem:  requested,
	}, ""
}

// AcceptTrade re-validates a pending offer and swaps the two items in place:
// each slot index now holds the other party's prior item. Items may have
// moved between proposal and acceptance, which is exactly the race the
// re-check exists to catch; a stale slot fails the trade for both parties
// without touching either inventory. The pending offer is cleared either way.
func (w *World) AcceptTrade(recipientID, senderID string) TradeResult {
	sender, ok := w.players[senderID]
	if !ok {
		return TradeResult{Reason: TradeRejectUnknownSender, SenderID: senderID, RecipientID: recipientID}
	}
	pending := sender.PendingTrade
	if pending == nil || pending.RecipientID != recipientID {
		return TradeResult{Reason: TradeRejectNoPending, SenderID: senderID, RecipientID: recipientID}
	}
	sender.PendingTrade = nil

	result := TradeResult{SenderID: senderID, RecipientID: recipientID}
	recipient, ok := w.players[recipientID]
	if !ok {
		result.Reason = TradeRejectUnknownRecipient
		return result
	}
	offered, ok := sender.ItemAt(pending.OfferedIndex)
	if !ok {
		result.Reason = TradeRejectOfferedSlot
		return result
	}
	requested, ok := recipient.ItemAt(pending.RequestedIndex)
	if !ok {
		result.Reason = TradeRejectRequestedSlot
		return result
	}

	sender.Inventory[pending.OfferedIndex] = requested
	recipient.Inventory[pending.RequestedIndex] = offered

	result.OK = true
	result.SenderInventory = append([]items.Item(nil), sender.Inventory...)
	result.RecipientInventory = append([]items.Item(nil), recipient.Inventory...)
	return result
}

// DeclineTrade clears a matching pending offer. Returns false when no offer
// from the sender names this recipient.
func (w *World) DeclineTrade(recipientID, senderID string) bool {
	sender, ok := w.players[senderID]
	if !ok {
		return false
	}
	pending := sender.PendingTrade
	if pending == nil || pending.RecipientID != recipientID {
		return false
	}
	sender.PendingTrade = nil
	return true
}
