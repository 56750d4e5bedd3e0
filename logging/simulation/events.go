package simulation

import (
	"context"
	"time"

	"github.com/GodfreyDev/ChatGame/logging"
)

// EventTickBudget is emitted when a tick pass overruns its time budget.
const EventTickBudget logging.EventType = "simulation.tick_budget"

// TickBudgetPayload compares the measured tick cost against the cadence.
type TickBudgetPayload struct {
	DurationMillis int64 `json:"durationMillis"`
	BudgetMillis   int64 `json:"budgetMillis"`
}

// TickBudgetExceeded publishes a simulation.tick_budget warning.
func TickBudgetExceeded(ctx context.Context, pub logging.Publisher, tick uint64, duration, budget time.Duration) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventTickBudget,
		Tick:     tick,
		Actor:    logging.EntityRef{Kind: logging.EntityKindWorld},
		Severity: logging.SeverityWarn,
		Category: logging.CategorySystem,
		Payload: TickBudgetPayload{
			DurationMillis: duration.Milliseconds(),
			BudgetMillis:   budget.Milliseconds(),
		},
	})
}
