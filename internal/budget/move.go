package budget

import (
	"errors"

	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/money"
)

var (
	ErrMoveAmountNotPositive = errors.New("move amount must be positive")
	ErrMoveSameCategory      = errors.New("cannot move money to the same category")
)

// Move is a pair of allocation deltas for moving money between two
// categories. The deltas always sum to zero.
type Move struct {
	FromDelta money.Cents
	ToDelta   money.Cents
}

// MoveMoney calculates the allocation deltas for moving amount from one
// category to another. Applying the deltas to the persisted allocations
// is the caller's responsibility, including transactional discipline.
func MoveMoney(from, to uuid.UUID, amount money.Cents) (Move, error) {
	if amount <= 0 {
		return Move{}, ErrMoveAmountNotPositive
	}

	if from == to {
		return Move{}, ErrMoveSameCategory
	}

	return Move{
		FromDelta: -amount,
		ToDelta:   amount,
	}, nil
}
