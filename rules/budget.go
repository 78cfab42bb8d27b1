package rules

import (
	"context"
	"errors"
	"time"
)

// ErrBudgetExceeded is returned by patterns that ran out of time or steps.
var ErrBudgetExceeded = errors.New("rule evaluation budget exceeded")

// Budget bounds the work a single rule may perform. A step is roughly one
// regular expression evaluation over 64 bytes of input.
type Budget struct {
	ctx      context.Context
	deadline time.Time
	limit    int
	used     int
}

// NewBudget creates a budget that expires after timeout or steps, whichever
// comes first. Zero values disable the respective limit. Cancellation of
// ctx is reported as the context error, not as ErrBudgetExceeded.
func NewBudget(ctx context.Context, timeout time.Duration, steps int) *Budget {
	b := &Budget{ctx: ctx, limit: steps}
	if timeout > 0 {
		b.deadline = time.Now().Add(timeout)
	}
	return b
}

// Unlimited returns a budget that never expires.
func Unlimited() *Budget {
	return NewBudget(context.Background(), 0, 0)
}

// Spend charges n steps.
func (b *Budget) Spend(n int) error {
	if b == nil {
		return nil
	}
	b.used += n
	if b.ctx != nil {
		if err := b.ctx.Err(); err != nil {
			return err
		}
	}
	if b.limit > 0 && b.used > b.limit {
		return ErrBudgetExceeded
	}
	if !b.deadline.IsZero() && time.Now().After(b.deadline) {
		return ErrBudgetExceeded
	}
	return nil
}

// Used returns the number of steps spent so far.
func (b *Budget) Used() int {
	if b == nil {
		return 0
	}
	return b.used
}

// spendOn charges the cost of scanning text.
func (b *Budget) spendOn(text string) error {
	return b.Spend(len(text)/64 + 1)
}
