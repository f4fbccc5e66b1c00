package allocation

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidStrategy = errors.New("the specified allocation strategy is invalid")

// ViolationKind identifies a recognized invariant breach.
type ViolationKind string

const (
	ViolationEmptyRecipients       ViolationKind = "EMPTY_RECIPIENTS"
	ViolationTotalAmountNegative   ViolationKind = "TOTAL_AMOUNT_NEGATIVE"
	ViolationPercentageSum         ViolationKind = "PERCENTAGE_SUM_MISMATCH"
	ViolationFixedAmountSum        ViolationKind = "FIXED_AMOUNT_SUM_MISMATCH"
	ViolationPercentageMissing     ViolationKind = "PERCENTAGE_MISSING"
	ViolationPercentageOutOfRange  ViolationKind = "PERCENTAGE_OUT_OF_RANGE"
	ViolationFixedAmountMissing    ViolationKind = "FIXED_AMOUNT_MISSING"
	ViolationFixedAmountNegative   ViolationKind = "FIXED_AMOUNT_NEGATIVE"
	ViolationRecipientNameEmpty    ViolationKind = "RECIPIENT_NAME_EMPTY"
	ViolationRecipientNoShareField ViolationKind = "RECIPIENT_NO_SHARE_FIELD"
)

// Violation is a single invariant breach. For the sum kinds, Delta carries
// the remaining percentage points or the missing amount so that callers can
// render messages like "missing R$ 50.00". For per-recipient kinds,
// RecipientID names the offending recipient.
type Violation struct {
	Kind        ViolationKind
	RecipientID string
	Delta       decimal.Decimal
}

// ValidationResult is the structured outcome of Validate. It is returned as
// data, never as an error: the caller decides whether to block submission.
type ValidationResult struct {
	Valid      bool
	Violations []Violation
}

// Validate runs the strategy-specific invariant checks against the request.
// It never panics and never returns an error; malformed input surfaces as
// violations.
func Validate(r Request) ValidationResult {
	var violations []Violation

	if len(r.Recipients) == 0 {
		violations = append(violations, Violation{Kind: ViolationEmptyRecipients})
	}

	if r.TotalAmount.IsNegative() {
		violations = append(violations, Violation{Kind: ViolationTotalAmountNegative, Delta: r.TotalAmount})
	}

	for _, recipient := range r.Recipients {
		if recipient.Name == "" {
			violations = append(violations, Violation{Kind: ViolationRecipientNameEmpty, RecipientID: recipient.ID})
		}

		violations = append(violations, validateShareFields(r.Strategy, recipient)...)
	}

	violations = append(violations, validateSums(r)...)

	return ValidationResult{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}

// validateShareFields checks the per-recipient field requirements of the
// strategy.
func validateShareFields(strategy Strategy, recipient Recipient) []Violation {
	var violations []Violation

	switch strategy {
	case StrategyProportional:
		if recipient.Percentage == nil {
			violations = append(violations, Violation{Kind: ViolationPercentageMissing, RecipientID: recipient.ID})
		} else if !recipient.Percentage.IsPositive() || recipient.Percentage.GreaterThan(hundred) {
			violations = append(violations, Violation{Kind: ViolationPercentageOutOfRange, RecipientID: recipient.ID, Delta: *recipient.Percentage})
		}

	case StrategyFixed:
		if recipient.FixedAmount == nil {
			violations = append(violations, Violation{Kind: ViolationFixedAmountMissing, RecipientID: recipient.ID})
		} else if recipient.FixedAmount.IsNegative() {
			violations = append(violations, Violation{Kind: ViolationFixedAmountNegative, RecipientID: recipient.ID, Delta: *recipient.FixedAmount})
		}

	case StrategyMixed:
		if recipient.Percentage == nil && recipient.FixedAmount == nil {
			violations = append(violations, Violation{Kind: ViolationRecipientNoShareField, RecipientID: recipient.ID})
			break
		}

		if recipient.Percentage != nil && (recipient.Percentage.IsNegative() || recipient.Percentage.GreaterThan(hundred)) {
			violations = append(violations, Violation{Kind: ViolationPercentageOutOfRange, RecipientID: recipient.ID, Delta: *recipient.Percentage})
		}

		if recipient.FixedAmount != nil && recipient.FixedAmount.IsNegative() {
			violations = append(violations, Violation{Kind: ViolationFixedAmountNegative, RecipientID: recipient.ID, Delta: *recipient.FixedAmount})
		}
	}

	return violations
}

// validateSums checks the global completeness invariants. There is no sum
// constraint under EQUAL (the split is complete by construction) or MIXED
// (best-effort mode).
func validateSums(r Request) []Violation {
	if len(r.Recipients) == 0 {
		return nil
	}

	switch r.Strategy {
	case StrategyProportional:
		sum := decimal.Zero
		for _, recipient := range r.Recipients {
			sum = sum.Add(valueOrZero(recipient.Percentage))
		}

		if remaining := hundred.Sub(sum); remaining.Abs().GreaterThan(Epsilon) {
			return []Violation{{Kind: ViolationPercentageSum, Delta: remaining}}
		}

	case StrategyFixed:
		sum := decimal.Zero
		for _, recipient := range r.Recipients {
			sum = sum.Add(valueOrZero(recipient.FixedAmount))
		}

		if remaining := r.TotalAmount.Sub(sum); remaining.Abs().GreaterThan(Epsilon) {
			return []Violation{{Kind: ViolationFixedAmountSum, Delta: remaining}}
		}
	}

	return nil
}
