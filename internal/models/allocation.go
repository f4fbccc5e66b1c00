package models

import (
	"encoding/json"
	"strings"

	"github.com/precifica/backend/internal/allocation"
	"github.com/precifica/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Allocation is a cost-allocation (rateio): a monetary total distributed
// across recipients according to a strategy for one accounting period.
type Allocation struct {
	DefaultModel
	TargetName      string // The entity the cost is allocated against
	ItemDescription string // The cost, expense or fee line item being distributed
	Note            string
	Month           types.Month
	Strategy        allocation.Strategy
	TotalAmount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Recipients      []Recipient     `json:"-"`
}

func (a *Allocation) BeforeSave(_ *gorm.DB) error {
	a.TargetName = strings.TrimSpace(a.TargetName)
	a.ItemDescription = strings.TrimSpace(a.ItemDescription)
	a.Note = strings.TrimSpace(a.Note)

	if a.Strategy == "" {
		a.Strategy = allocation.StrategyEqual
	}

	_, err := allocation.ParseStrategy(string(a.Strategy))
	if err != nil {
		return err
	}

	if a.TotalAmount.IsNegative() {
		return ErrTotalAmountNegative
	}

	return nil
}

// EngineRequest builds the computation request for the allocation engine
// from the allocation and its recipients.
func (a Allocation) EngineRequest(recipients []Recipient) allocation.Request {
	engineRecipients := make([]allocation.Recipient, 0, len(recipients))
	for _, recipient := range recipients {
		engineRecipients = append(engineRecipients, recipient.engine())
	}

	return allocation.Request{
		TotalAmount: a.TotalAmount,
		Strategy:    a.Strategy,
		Recipients:  engineRecipients,
	}
}

// RecomputeRecipients derives the computed amount of every recipient of the
// allocation from the current total, strategy and recipient fields, and
// persists the results. Computed amounts are never left stale: this runs
// after every change to the allocation or one of its recipients.
//
// Under EQUAL, the materialized percentage and fixed amount are persisted
// too, so that a strategy switch shows consistent values.
func (a Allocation) RecomputeRecipients(db *gorm.DB) ([]Recipient, error) {
	var recipients []Recipient
	err := db.Where(&Recipient{AllocationID: a.ID}).Order("created_at ASC, id ASC").Find(&recipients).Error
	if err != nil {
		return nil, err
	}

	result := allocation.Compute(a.EngineRequest(recipients))

	for i := range recipients {
		computed := result.Recipients[i]

		columns := map[string]any{"computed_amount": computed.ComputedAmount}
		if a.Strategy == allocation.StrategyEqual {
			columns["percentage"] = computed.Percentage
			columns["fixed_amount"] = computed.FixedAmount
		}

		err = db.Model(&recipients[i]).Updates(columns).Error
		if err != nil {
			return nil, err
		}

		recipients[i].ComputedAmount = computed.ComputedAmount
		if a.Strategy == allocation.StrategyEqual {
			recipients[i].Percentage = computed.Percentage
			recipients[i].FixedAmount = computed.FixedAmount
		}
	}

	return recipients, nil
}

// Returns all allocations on this instance for export
func (Allocation) Export() (json.RawMessage, error) {
	var allocations []Allocation
	err := DB.Unscoped().Where(&Allocation{}).Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&allocations)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
