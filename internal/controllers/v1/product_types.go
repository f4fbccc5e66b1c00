package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/precifica/backend/internal/models"
	"github.com/shopspring/decimal"
)

// ProductEditable represents all user configurable parameters
type ProductEditable struct {
	Name           string          `json:"name" example:"Camiseta básica" default:""`          // Name of the product, must be unique
	Note           string          `json:"note" example:"Fornecedor novo desde março" default:""` // Notes about the product
	UnitCost       decimal.Decimal `json:"unitCost" example:"40.00" default:"0"`               // Direct cost per unit
	FixedCostShare decimal.Decimal `json:"fixedCostShare" example:"10.00" default:"0"`         // Allocated share of fixed costs per unit
	MarginPercent  decimal.Decimal `json:"marginPercent" example:"40" default:"0"`             // Margin on the sale price
	MarkupPercent  decimal.Decimal `json:"markupPercent" example:"50" default:"0"`             // Markup on the cost, wins over the margin if set
}

func (editable ProductEditable) model() models.Product {
	return models.Product{
		Name:           editable.Name,
		Note:           editable.Note,
		UnitCost:       editable.UnitCost,
		FixedCostShare: editable.FixedCostShare,
		MarginPercent:  editable.MarginPercent,
		MarkupPercent:  editable.MarkupPercent,
	}
}

type ProductLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/products/af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"` // The product itself
}

type Product struct {
	models.DefaultModel
	ProductEditable
	Links ProductLinks `json:"links"`

	// This field is derived by the pricing engine, never set directly
	SalePrice decimal.Decimal `json:"salePrice" example:"100.00"` // The derived sale price
}

func newProduct(c *gin.Context, model models.Product) Product {
	url := c.GetString(string(models.DBContextURL))

	return Product{
		DefaultModel: model.DefaultModel,
		ProductEditable: ProductEditable{
			Name:           model.Name,
			Note:           model.Note,
			UnitCost:       model.UnitCost,
			FixedCostShare: model.FixedCostShare,
			MarginPercent:  model.MarginPercent,
			MarkupPercent:  model.MarkupPercent,
		},
		SalePrice: model.SalePrice,
		Links: ProductLinks{
			Self: fmt.Sprintf("%s/v1/products/%s", url, model.ID),
		},
	}
}

type ProductListResponse struct {
	Data       []Product   `json:"data"`                                                          // List of products
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ProductCreateResponse struct {
	Data  []ProductResponse `json:"data"`                                                          // List of the created products or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (p *ProductCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, ProductResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ProductResponse struct {
	Data  *Product `json:"data"`                                                          // Data for the product
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ProductQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Note   string `form:"note" filterField:"false"`   // By note
	Search string `form:"search" filterField:"false"` // By string in name or note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first product returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of products to return. Defaults to 50.
}

func (f ProductQueryFilter) model() (models.Product, error) {
	return models.Product{}, nil
}
