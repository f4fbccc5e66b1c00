package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/precifica/backend/internal/allocation"
	"github.com/precifica/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRecipientInvalidFields() {
	a := suite.createTestAllocation(models.Allocation{
		TargetName:  "Loja Centro",
		Strategy:    allocation.StrategyMixed,
		TotalAmount: decimal.NewFromInt(100),
	})

	tests := []struct {
		name      string
		recipient models.Recipient
		err       error
	}{
		{
			"empty name",
			models.Recipient{AllocationID: a.ID, Name: "   "},
			models.ErrRecipientNameEmpty,
		},
		{
			"negative percentage",
			models.Recipient{AllocationID: a.ID, Name: "A", Percentage: ptr(-1)},
			models.ErrRecipientPercentageOutOfRange,
		},
		{
			"percentage above 100",
			models.Recipient{AllocationID: a.ID, Name: "A", Percentage: ptr(100.01)},
			models.ErrRecipientPercentageOutOfRange,
		},
		{
			"negative fixed amount",
			models.Recipient{AllocationID: a.ID, Name: "A", FixedAmount: ptr(-0.01)},
			models.ErrRecipientFixedAmountNegative,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.recipient).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestRecipientRequiresAllocation() {
	err := models.DB.Create(&models.Recipient{
		AllocationID: uuid.New(),
		Name:         "Orphan",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestRecipientTrimWhitespace() {
	a := suite.createTestAllocation(models.Allocation{
		TargetName:  "Loja Centro",
		TotalAmount: decimal.NewFromInt(100),
	})

	r := suite.createTestRecipient(models.Recipient{
		AllocationID: a.ID,
		Name:         "  Marketing ",
		Category:     " Setor\t",
	})

	assert.Equal(suite.T(), "Marketing", r.Name)
	assert.Equal(suite.T(), "Setor", r.Category)
}
