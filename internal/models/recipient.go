package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/precifica/backend/internal/allocation"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Recipient is a named target (department, cost center, branch) receiving a
// portion of an allocation. Percentage and FixedAmount are nullable: a NULL
// value means the user has not entered one. ComputedAmount is always
// derived by the allocation engine, never edited directly.
type Recipient struct {
	DefaultModel
	AllocationID   uuid.UUID
	Allocation     Allocation `json:"-"`
	Name           string
	Category       string
	Percentage     *decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	FixedAmount    *decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ComputedAmount decimal.Decimal  `gorm:"type:DECIMAL(20,8)"`
}

func (r *Recipient) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Recipient)
	return r.checkIntegrity(tx, *toSave)
}

func (r *Recipient) BeforeUpdate(tx *gorm.DB) (err error) {
	if tx.Statement.Changed("AllocationID") {
		toSave := tx.Statement.Dest.(Recipient)
		err := r.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the allocation the recipient belongs to exists.
func (r *Recipient) checkIntegrity(tx *gorm.DB, toSave Recipient) error {
	return tx.First(&Allocation{}, toSave.AllocationID).Error
}

func (r *Recipient) BeforeSave(_ *gorm.DB) error {
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.TrimSpace(r.Category)

	if r.Name == "" {
		return ErrRecipientNameEmpty
	}

	if r.Percentage != nil && (r.Percentage.IsNegative() || r.Percentage.GreaterThan(decimal.New(100, 0))) {
		return ErrRecipientPercentageOutOfRange
	}

	if r.FixedAmount != nil && r.FixedAmount.IsNegative() {
		return ErrRecipientFixedAmountNegative
	}

	return nil
}

// engine returns the allocation engine's representation of the recipient.
func (r Recipient) engine() allocation.Recipient {
	return allocation.Recipient{
		ID:             r.ID.String(),
		Name:           r.Name,
		Category:       r.Category,
		Percentage:     r.Percentage,
		FixedAmount:    r.FixedAmount,
		ComputedAmount: r.ComputedAmount,
	}
}

// Returns all recipients on this instance for export
func (Recipient) Export() (json.RawMessage, error) {
	var recipients []Recipient
	err := DB.Unscoped().Where(&Recipient{}).Find(&recipients).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&recipients)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
