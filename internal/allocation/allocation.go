// Package allocation implements the cost-allocation (rateio) engine.
//
// The engine distributes a monetary total across named recipients according
// to a strategy. All functions are pure: they never mutate their inputs and
// return freshly computed recipient lists.
package allocation

import (
	"fmt"
	"sync/atomic"

	"github.com/shopspring/decimal"
)

// Strategy is the rule used to compute each recipient's share.
type Strategy string

const (
	StrategyEqual        Strategy = "EQUAL"
	StrategyProportional Strategy = "PROPORTIONAL"
	StrategyFixed        Strategy = "FIXED"
	StrategyMixed        Strategy = "MIXED"
)

// Strategies lists all valid strategies.
var Strategies = []Strategy{StrategyEqual, StrategyProportional, StrategyFixed, StrategyMixed}

// ParseStrategy parses a strategy from its string representation.
func ParseStrategy(s string) (Strategy, error) {
	for _, strategy := range Strategies {
		if s == string(strategy) {
			return strategy, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
}

// Epsilon is the tolerance used for all sum comparisons. It absorbs the
// rounding drift of 2-decimal monetary values.
var Epsilon = decimal.New(1, -2)

var hundred = decimal.New(100, 0)

// Recipient is a named target receiving a portion of an allocation.
//
// Percentage and FixedAmount are optional; a nil pointer means the user has
// not entered a value. Missing values are treated as zero during computation
// and flagged by Validate.
type Recipient struct {
	ID             string
	Name           string
	Category       string
	Percentage     *decimal.Decimal
	FixedAmount    *decimal.Decimal
	ComputedAmount decimal.Decimal
}

// Request is a transient allocation computation request.
type Request struct {
	TotalAmount decimal.Decimal
	Strategy    Strategy
	Recipients  []Recipient
}

// Summary reports how completely the computed shares account for the total.
// It is advisory: an incomplete allocation is still computed so that callers
// can display live progress while the user enters data.
type Summary struct {
	Complete            bool
	PercentageAssigned  decimal.Decimal
	PercentageRemaining decimal.Decimal
	AmountAssigned      decimal.Decimal
	AmountRemaining     decimal.Decimal
}

// Result is the outcome of a computation: the recipients with their computed
// amounts, plus the completeness summary.
type Result struct {
	Recipients []Recipient
	Summary    Summary
}

// Compute dispatches to the strategy-specific computation. It is the single
// recomputation entry point: computed amounts are always derived from the
// current total, strategy and recipient fields, never left stale.
func Compute(r Request) Result {
	switch r.Strategy {
	case StrategyEqual:
		return ComputeEqual(r.TotalAmount, r.Recipients)
	case StrategyProportional:
		return ComputeProportional(r.TotalAmount, r.Recipients)
	case StrategyFixed:
		return ComputeFixed(r.TotalAmount, r.Recipients)
	default:
		return ComputeMixed(r.TotalAmount, r.Recipients)
	}
}

// ComputeEqual divides the total evenly across all recipients. The base
// share is rounded down to 2 decimal places and the remaining cents are
// spread one per recipient from the front of the list, so the shares always
// sum to the exact total and differ by at most one cent. Percentage and
// FixedAmount are materialized on every recipient for display symmetry.
func ComputeEqual(total decimal.Decimal, recipients []Recipient) Result {
	out := clone(recipients)
	if len(out) == 0 {
		return Result{Recipients: out, Summary: summaryForAmounts(total, decimal.Zero)}
	}

	n := decimal.NewFromInt(int64(len(out)))
	base := total.Div(n).RoundDown(2)
	percentage := hundred.Div(n).Round(2)

	cent := decimal.New(1, -2)
	remainder := total.Sub(base.Mul(n))

	assigned := decimal.Zero
	for i := range out {
		amount := base
		if remainder.GreaterThanOrEqual(cent) {
			amount = amount.Add(cent)
			remainder = remainder.Sub(cent)
		}

		p := percentage
		f := amount
		out[i].Percentage = &p
		out[i].FixedAmount = &f
		out[i].ComputedAmount = amount
		assigned = assigned.Add(amount)
	}

	return Result{Recipients: out, Summary: summaryForAmounts(total, assigned)}
}

// RedistributeEqually recomputes an equal split over the recipients.
//
// It is the recovery operation offered after a strategy switch to EQUAL
// mid-edit: one call discards the per-recipient percentages and fixed
// amounts in favor of an even split.
func RedistributeEqually(total decimal.Decimal, recipients []Recipient) Result {
	return ComputeEqual(total, recipients)
}

// ComputeProportional computes each recipient's share from its percentage.
// Out-of-range sums are not rejected; the summary reports the remaining
// percentage points instead.
func ComputeProportional(total decimal.Decimal, recipients []Recipient) Result {
	out := clone(recipients)

	assignedPercentage := decimal.Zero
	assignedAmount := decimal.Zero
	for i := range out {
		p := valueOrZero(out[i].Percentage)
		out[i].ComputedAmount = p.Div(hundred).Mul(total).Round(2)
		assignedPercentage = assignedPercentage.Add(p)
		assignedAmount = assignedAmount.Add(out[i].ComputedAmount)
	}

	return Result{
		Recipients: out,
		Summary: Summary{
			Complete:            hundred.Sub(assignedPercentage).Abs().LessThanOrEqual(Epsilon),
			PercentageAssigned:  assignedPercentage,
			PercentageRemaining: hundred.Sub(assignedPercentage),
			AmountAssigned:      assignedAmount,
			AmountRemaining:     total.Sub(assignedAmount),
		},
	}
}

// ComputeFixed passes the entered fixed amounts through without derivation.
// The summary reports the delta to the total so that callers can display
// the missing amount.
func ComputeFixed(total decimal.Decimal, recipients []Recipient) Result {
	out := clone(recipients)

	assigned := decimal.Zero
	for i := range out {
		out[i].ComputedAmount = valueOrZero(out[i].FixedAmount)
		assigned = assigned.Add(out[i].ComputedAmount)
	}

	return Result{Recipients: out, Summary: summaryForAmounts(total, assigned)}
}

// ComputeMixed computes each recipient independently: the fixed amount wins
// if set, the percentage is used otherwise, and a recipient with neither
// gets zero. There is no global sum constraint; completeness is advisory
// only (best-effort mode).
func ComputeMixed(total decimal.Decimal, recipients []Recipient) Result {
	out := clone(recipients)

	assigned := decimal.Zero
	for i := range out {
		switch {
		case out[i].FixedAmount != nil:
			out[i].ComputedAmount = *out[i].FixedAmount
		case out[i].Percentage != nil:
			out[i].ComputedAmount = out[i].Percentage.Div(hundred).Mul(total).Round(2)
		default:
			out[i].ComputedAmount = decimal.Zero
		}
		assigned = assigned.Add(out[i].ComputedAmount)
	}

	return Result{Recipients: out, Summary: summaryForAmounts(total, assigned)}
}

// localID is the source for session-local recipient ids. Uniqueness within
// the process is the only requirement, not global uniqueness.
var localID atomic.Int64

// AddRecipient appends a recipient to the list. A recipient without an ID
// gets a session-locally generated one. Under EQUAL, the whole list is
// redistributed; under all other strategies the new recipient's amount is
// left for the next explicit recompute.
func AddRecipient(current []Recipient, newRecipient Recipient, strategy Strategy, total decimal.Decimal) []Recipient {
	if newRecipient.ID == "" {
		newRecipient.ID = fmt.Sprintf("r-%d", localID.Add(1))
	}

	out := append(clone(current), newRecipient)
	if strategy == StrategyEqual {
		return RedistributeEqually(total, out).Recipients
	}

	return out
}

// RemoveRecipient removes the recipient with the given id. Under EQUAL the
// remaining recipients are redistributed if any are left; under all other
// strategies the remaining amounts are kept as last computed.
func RemoveRecipient(current []Recipient, id string, strategy Strategy, total decimal.Decimal) []Recipient {
	out := make([]Recipient, 0, len(current))
	for _, r := range current {
		if r.ID != id {
			out = append(out, r)
		}
	}

	if strategy == StrategyEqual && len(out) > 0 {
		return RedistributeEqually(total, out).Recipients
	}

	return out
}

func summaryForAmounts(total, assigned decimal.Decimal) Summary {
	return Summary{
		Complete:        total.Sub(assigned).Abs().LessThanOrEqual(Epsilon),
		AmountAssigned:  assigned,
		AmountRemaining: total.Sub(assigned),
	}
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}

	return *d
}

func clone(recipients []Recipient) []Recipient {
	out := make([]Recipient, len(recipients))
	copy(out, recipients)
	return out
}
