package budget

import (
	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/money"
	"github.com/pocketwise/backend/internal/types"
)

// Rollover states that a category carries an amount from one month into
// the next. It is the one calculation artifact that is meant to be
// persisted, forming the durable link between months.
//
// Rollovers and the CarryForwards projection are two representations of
// the same balances. Integrating applications must pick one mechanism to
// open a month with and never combine both, which would double-count
// carried balances.
type Rollover struct {
	CategoryID uuid.UUID
	FromMonth  types.Month
	ToMonth    types.Month
	Amount     money.Cents
}

// ProcessRollover emits one rollover per category of a closed month. The
// amount is the category's closing available balance and can be negative
// when the category is overspent.
func ProcessRollover(s MonthState) []Rollover {
	rollovers := make([]Rollover, 0)

	for _, group := range s.Groups {
		for _, category := range group.Categories {
			rollovers = append(rollovers, Rollover{
				CategoryID: category.ID,
				FromMonth:  s.Month,
				ToMonth:    s.Month.Next(),
				Amount:     category.Available,
			})
		}
	}

	return rollovers
}

// ApplyRollovers folds rollovers into an allocation map for the month
// they roll into. The input map is not modified; categories without a
// rollover keep their original allocation. Negative rollover amounts
// reduce the opening allocation.
func ApplyRollovers(allocations money.Amounts, rollovers []Rollover) money.Amounts {
	applied := allocations.Clone()

	for _, rollover := range rollovers {
		applied[rollover.CategoryID] = applied.Get(rollover.CategoryID) + rollover.Amount
	}

	return applied
}
