package models_test

import (
	"testing"

	"github.com/precifica/backend/internal/models"
	"github.com/precifica/backend/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestProductSalePriceFromMargin() {
	p := suite.createTestProduct(models.Product{
		Name:          "Consultoria",
		UnitCost:      decimal.NewFromInt(50),
		FixedCostShare: decimal.NewFromInt(10),
		MarginPercent: decimal.NewFromInt(40),
	})

	assert.True(suite.T(), p.SalePrice.Equal(decimal.NewFromInt(100)), "price is %s", p.SalePrice)
}

func (suite *TestSuiteStandard) TestProductSalePriceFromMarkup() {
	p := suite.createTestProduct(models.Product{
		Name:          "Camiseta",
		UnitCost:      decimal.NewFromInt(40),
		MarkupPercent: decimal.NewFromInt(50),
		MarginPercent: decimal.NewFromInt(10), // markup wins
	})

	assert.True(suite.T(), p.SalePrice.Equal(decimal.NewFromInt(60)), "price is %s", p.SalePrice)
}

func (suite *TestSuiteStandard) TestProductInvalid() {
	tests := []struct {
		name    string
		product models.Product
		err     error
	}{
		{
			"negative cost",
			models.Product{Name: "A", UnitCost: decimal.NewFromInt(-1)},
			models.ErrProductCostNegative,
		},
		{
			"margin of 100",
			models.Product{Name: "B", UnitCost: decimal.NewFromInt(10), MarginPercent: decimal.NewFromInt(100)},
			pricing.ErrMarginTooHigh,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.product).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestProductNameUnique() {
	suite.createTestProduct(models.Product{Name: "Camiseta", UnitCost: decimal.NewFromInt(10)})

	err := models.DB.Create(&models.Product{Name: "Camiseta", UnitCost: decimal.NewFromInt(20)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrProductNameNotUnique)
}
