package models_test

import (
	"encoding/json"
	"strings"

	"github.com/precifica/backend/internal/allocation"
	"github.com/precifica/backend/internal/models"
	"github.com/precifica/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func (suite *TestSuiteStandard) TestAllocationTrimWhitespace() {
	a := suite.createTestAllocation(models.Allocation{
		TargetName:      "  Loja Centro \t",
		ItemDescription: " Aluguel  ",
		Note:            " Rateio mensal ",
		Strategy:        allocation.StrategyEqual,
		TotalAmount:     decimal.NewFromInt(100),
	})

	assert.Equal(suite.T(), "Loja Centro", a.TargetName)
	assert.Equal(suite.T(), "Aluguel", a.ItemDescription)
	assert.Equal(suite.T(), strings.TrimSpace(" Rateio mensal "), a.Note)
}

func (suite *TestSuiteStandard) TestAllocationInvalidStrategy() {
	err := models.DB.Create(&models.Allocation{
		TargetName:  "Loja Centro",
		Strategy:    "HALVSIES",
		TotalAmount: decimal.NewFromInt(100),
	}).Error

	assert.ErrorIs(suite.T(), err, allocation.ErrInvalidStrategy)
}

func (suite *TestSuiteStandard) TestAllocationDefaultStrategy() {
	a := suite.createTestAllocation(models.Allocation{
		TargetName:  "Loja Centro",
		TotalAmount: decimal.NewFromInt(100),
	})

	assert.Equal(suite.T(), allocation.StrategyEqual, a.Strategy)
}

func (suite *TestSuiteStandard) TestAllocationNegativeTotal() {
	err := models.DB.Create(&models.Allocation{
		TargetName:  "Loja Centro",
		Strategy:    allocation.StrategyEqual,
		TotalAmount: decimal.NewFromInt(-10),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrTotalAmountNegative)
}

func (suite *TestSuiteStandard) TestAllocationMonth() {
	a := suite.createTestAllocation(models.Allocation{
		TargetName:  "Loja Centro",
		Month:       types.NewMonth(2026, 8),
		TotalAmount: decimal.NewFromInt(100),
	})

	var reloaded models.Allocation
	require.Nil(suite.T(), models.DB.First(&reloaded, a.ID).Error)
	assert.True(suite.T(), reloaded.Month.Equal(types.NewMonth(2026, 8)), "month is %s", reloaded.Month)
}

func (suite *TestSuiteStandard) TestRecomputeRecipientsEqual() {
	t := suite.T()

	a := suite.createTestAllocation(models.Allocation{
		TargetName:  "Loja Centro",
		Strategy:    allocation.StrategyEqual,
		TotalAmount: decimal.NewFromInt(900),
	})

	for _, name := range []string{"Marketing", "Vendas", "Administrativo"} {
		suite.createTestRecipient(models.Recipient{AllocationID: a.ID, Name: name, Category: "Setor"})
	}

	recipients, err := a.RecomputeRecipients(models.DB)
	require.Nil(t, err)
	require.Len(t, recipients, 3)

	for _, r := range recipients {
		assert.True(t, r.ComputedAmount.Equal(decimal.NewFromInt(300)), "amount is %s", r.ComputedAmount)
		require.NotNil(t, r.Percentage)
		assert.True(t, r.Percentage.Equal(decimal.NewFromFloat(33.33)))
	}

	// The computed amounts are persisted
	var reloaded models.Recipient
	require.Nil(t, models.DB.First(&reloaded, recipients[0].ID).Error)
	assert.True(t, reloaded.ComputedAmount.Equal(decimal.NewFromInt(300)))
}

func (suite *TestSuiteStandard) TestRecomputeRecipientsProportional() {
	t := suite.T()

	a := suite.createTestAllocation(models.Allocation{
		TargetName:  "Loja Centro",
		Strategy:    allocation.StrategyProportional,
		TotalAmount: decimal.NewFromInt(900),
	})

	suite.createTestRecipient(models.Recipient{AllocationID: a.ID, Name: "A", Percentage: ptr(50)})
	suite.createTestRecipient(models.Recipient{AllocationID: a.ID, Name: "B", Percentage: ptr(30)})
	suite.createTestRecipient(models.Recipient{AllocationID: a.ID, Name: "C", Percentage: ptr(20)})

	recipients, err := a.RecomputeRecipients(models.DB)
	require.Nil(t, err)
	require.Len(t, recipients, 3)

	sum := decimal.Zero
	for _, r := range recipients {
		sum = sum.Add(r.ComputedAmount)
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(900)), "sum is %s", sum)
}

func (suite *TestSuiteStandard) TestRecomputeAfterTotalChange() {
	t := suite.T()

	a := suite.createTestAllocation(models.Allocation{
		TargetName:  "Loja Centro",
		Strategy:    allocation.StrategyEqual,
		TotalAmount: decimal.NewFromInt(100),
	})
	suite.createTestRecipient(models.Recipient{AllocationID: a.ID, Name: "A", Category: "Setor"})
	suite.createTestRecipient(models.Recipient{AllocationID: a.ID, Name: "B", Category: "Setor"})

	_, err := a.RecomputeRecipients(models.DB)
	require.Nil(t, err)

	// Change the total, recompute, amounts follow
	require.Nil(t, models.DB.Model(&a).Update("TotalAmount", decimal.NewFromInt(500)).Error)
	a.TotalAmount = decimal.NewFromInt(500)

	recipients, err := a.RecomputeRecipients(models.DB)
	require.Nil(t, err)

	for _, r := range recipients {
		assert.True(t, r.ComputedAmount.Equal(decimal.NewFromInt(250)), "amount is %s", r.ComputedAmount)
	}
}

func (suite *TestSuiteStandard) TestAllocationExport() {
	t := suite.T()

	for i := range 2 {
		suite.createTestAllocation(models.Allocation{
			TargetName:  "Loja",
			TotalAmount: decimal.NewFromInt(int64(100 * (i + 1))),
		})
	}

	raw, err := models.Allocation{}.Export()
	require.Nil(t, err)

	var allocations []models.Allocation
	require.Nil(t, json.Unmarshal(raw, &allocations))
	assert.Len(t, allocations, 2)
}
