package trade

import (
	"context"

	"github.com/GodfreyDev/ChatGame/logging"
)

const (
	// EventProposed is emitted when a trade offer reaches its recipient.
	EventProposed logging.EventType = "trade.proposed"
	// EventAccepted is emitted when both inventories swap successfully.
	EventAccepted logging.EventType = "trade.accepted"
	// EventDeclined is emitted when the recipient turns the offer down.
	EventDeclined logging.EventType = "trade.declined"
	// EventFailed is emitted when a pending offer no longer resolves.
	EventFailed logging.EventType = "trade.failed"
)

// OfferPayload captures the slots referenced by a two-item swap offer.
type OfferPayload struct {
	OfferedIndex   int `json:"offeredIndex"`
	RequestedIndex int `json:"requestedIndex"`
}

// FailurePayload names the validation that invalidated a pending offer.
type FailurePayload struct {
	Reason string `json:"reason"`
}

func publish(ctx context.Context, pub logging.Publisher, eventType logging.EventType, tick uint64, sender, recipient logging.EntityRef, payload any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     eventType,
		Tick:     tick,
		Actor:    sender,
		Targets:  []logging.EntityRef{recipient},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryEconomy,
		Payload:  payload,
	})
}

// Proposed publishes a trade.proposed event.
func Proposed(ctx context.Context, pub logging.Publisher, tick uint64, sender, recipient logging.EntityRef, offer OfferPayload) {
	publish(ctx, pub, EventProposed, tick, sender, recipient, offer)
}

// Accepted publishes a trade.accepted event.
func Accepted(ctx context.Context, pub logging.Publisher, tick uint64, sender, recipient logging.EntityRef, offer OfferPayload) {
	publish(ctx, pub, EventAccepted, tick, sender, recipient, offer)
}

// Declined publishes a trade.declined event.
func Declined(ctx context.Context, pub logging.Publisher, tick uint64, sender, recipient logging.EntityRef) {
	publish(ctx, pub, EventDeclined, tick, sender, recipient, nil)
}

// Failed publishes a trade.failed event.
func Failed(ctx context.Context, pub logging.Publisher, tick uint64, sender, recipient logging.EntityRef, reason string) {
	publish(ctx, pub, EventFailed, tick, sender, recipient, FailurePayload{Reason: reason})
}
