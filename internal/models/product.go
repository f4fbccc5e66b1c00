package models

import (
	"encoding/json"
	"strings"

	"github.com/precifica/backend/internal/pricing"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a priced good or service. The sale price is derived by the
// pricing engine on every save: from the markup if one is set, from the
// margin otherwise.
type Product struct {
	DefaultModel
	Name           string `gorm:"uniqueIndex"`
	Note           string
	UnitCost       decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Direct cost per unit
	FixedCostShare decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Allocated share of fixed costs per unit
	MarginPercent  decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Margin on the sale price
	MarkupPercent  decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Markup on the cost, wins over the margin if set
	SalePrice      decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Derived, never set directly
}

func (p *Product) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Note = strings.TrimSpace(p.Note)

	if p.UnitCost.IsNegative() || p.FixedCostShare.IsNegative() {
		return ErrProductCostNegative
	}

	cost := p.UnitCost.Add(p.FixedCostShare)

	if p.MarkupPercent.IsPositive() {
		p.SalePrice = pricing.SalePriceMarkup(cost, p.MarkupPercent)
		return nil
	}

	price, err := pricing.SalePrice(cost, p.MarginPercent)
	if err != nil {
		return err
	}

	p.SalePrice = price
	return nil
}

// Returns all products on this instance for export
func (Product) Export() (json.RawMessage, error) {
	var products []Product
	err := DB.Unscoped().Where(&Product{}).Find(&products).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&products)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
