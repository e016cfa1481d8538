// Package budget implements the monthly budget calculation.
//
// Every function in this package is pure: inputs are never mutated,
// outputs are freshly allocated, and calls are safe from any number of
// goroutines. The only ordering between months is data flow — a month's
// computed state feeds the next month's input.
package budget

import (
	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/money"
	"github.com/pocketwise/backend/internal/types"
)

// TargetType determines how progress towards a category target is measured.
type TargetType string

const (
	TargetNone        TargetType = ""
	TargetMonthly     TargetType = "monthly"
	TargetSavingsGoal TargetType = "savings_goal"
	TargetDebtPayment TargetType = "debt_payment"
)

// Valid reports whether the target type is one of the known values.
func (t TargetType) Valid() bool {
	switch t {
	case TargetNone, TargetMonthly, TargetSavingsGoal, TargetDebtPayment:
		return true
	}

	return false
}

// Category is the read-only category snapshot the calculation works on.
type Category struct {
	ID           uuid.UUID
	Name         string
	Emoji        string
	TargetAmount money.Cents
	TargetType   TargetType
}

// Group is a named, ordered collection of categories.
type Group struct {
	ID         uuid.UUID
	Name       string
	Categories []Category
}

// Input is the immutable input bundle for one month.
//
// The three maps are keyed by category ID; absent entries read as zero.
type Input struct {
	Month              types.Month
	Groups             []Group
	Allocations        money.Amounts
	Activity           money.Amounts
	CarryForwards      money.Amounts
	TotalIncome        money.Cents
	OverspentLastMonth money.Cents
}

// CategoryState is the computed state of one category for one month.
type CategoryState struct {
	Category
	Allocated    money.Cents
	Activity     money.Cents
	CarryForward money.Cents
	Available    money.Cents

	// TargetProgress is the percentage of the category target that is
	// funded. It is nil for categories without a positive target and
	// can exceed 100 for overfunded targets.
	TargetProgress *int
}

// GroupState sums the computed state of a group's categories.
type GroupState struct {
	ID         uuid.UUID
	Name       string
	Allocated  money.Cents
	Activity   money.Cents
	Available  money.Cents
	Categories []CategoryState
}

// MonthState is the complete computed budget state for one month.
// It carries no identity beyond its month and is regenerated on every
// call, never updated in place.
type MonthState struct {
	Month          types.Month
	TotalIncome    money.Cents
	TotalAllocated money.Cents
	TotalActivity  money.Cents
	TotalOverspent money.Cents
	ReadyToAssign  money.Cents
	Groups         []GroupState
}

// Calculate computes the budget state of a single month.
//
// It is a total function: missing map entries count as zero and empty
// groups produce zero-valued states. Groups and categories appear in the
// output in input order, so callers can rely on positional correspondence.
func Calculate(input Input) MonthState {
	state := MonthState{
		Month:       input.Month,
		TotalIncome: input.TotalIncome,
		Groups:      make([]GroupState, 0, len(input.Groups)),
	}

	for _, group := range input.Groups {
		groupState := GroupState{
			ID:         group.ID,
			Name:       group.Name,
			Categories: make([]CategoryState, 0, len(group.Categories)),
		}

		for _, category := range group.Categories {
			categoryState := CategoryState{
				Category:     category,
				Allocated:    input.Allocations.Get(category.ID),
				Activity:     input.Activity.Get(category.ID),
				CarryForward: input.CarryForwards.Get(category.ID),
			}
			categoryState.Available = categoryState.CarryForward + categoryState.Allocated + categoryState.Activity

			if categoryState.Available < 0 {
				state.TotalOverspent += -categoryState.Available
			}

			categoryState.TargetProgress = targetProgress(categoryState)

			groupState.Allocated += categoryState.Allocated
			groupState.Activity += categoryState.Activity
			groupState.Available += categoryState.Available
			groupState.Categories = append(groupState.Categories, categoryState)
		}

		state.TotalAllocated += groupState.Allocated
		state.TotalActivity += groupState.Activity
		state.Groups = append(state.Groups, groupState)
	}

	state.ReadyToAssign = state.TotalIncome - state.TotalAllocated - input.OverspentLastMonth
	return state
}

// CarryForwards projects the closing available balance of every category.
// The returned map is the input for the following month's CarryForwards.
func (s MonthState) CarryForwards() money.Amounts {
	carryForwards := make(money.Amounts)

	for _, group := range s.Groups {
		for _, category := range group.Categories {
			carryForwards[category.ID] = category.Available
		}
	}

	return carryForwards
}

// TotalOverspend returns the total overspend of the month. It is the
// canonical source for the following month's OverspentLastMonth input.
func (s MonthState) TotalOverspend() money.Cents {
	return s.TotalOverspent
}

// targetProgress returns the funding percentage for a category target.
//
// Savings goals are cumulative, they measure the full available balance
// against the target. All other target types measure only this month's
// allocation. Progress is never clamped.
func targetProgress(s CategoryState) *int {
	if s.TargetAmount <= 0 {
		return nil
	}

	funded := s.Allocated
	if s.TargetType == TargetSavingsGoal {
		funded = s.Available
	}

	progress := roundPct(funded, s.TargetAmount)
	return &progress
}

// roundPct returns part/whole as a percentage, rounded half away from
// zero. whole must be positive.
func roundPct(part, whole money.Cents) int {
	n := int64(part) * 100
	d := int64(whole)

	if n >= 0 {
		return int((n + d/2) / d)
	}

	return int((n - d/2) / d)
}
