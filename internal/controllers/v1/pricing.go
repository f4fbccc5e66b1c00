package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/precifica/backend/internal/httputil"
	"github.com/precifica/backend/internal/pricing"
	"github.com/shopspring/decimal"
)

// RegisterPricingRoutes registers the routes for pricing with
// the RouterGroup that is passed.
func RegisterPricingRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/quote", OptionsPricingQuote)
		r.POST("/quote", CreatePricingQuote)
	}
}

// PricingQuoteEditable represents the parameters for a pricing quote
type PricingQuoteEditable struct {
	UnitCost          decimal.Decimal `json:"unitCost" example:"40.00" default:"0"`          // Direct cost per unit
	FixedCostShare    decimal.Decimal `json:"fixedCostShare" example:"10.00" default:"0"`    // Allocated share of fixed costs per unit
	MarginPercent     decimal.Decimal `json:"marginPercent" example:"40" default:"0"`        // Margin on the sale price
	MarkupPercent     decimal.Decimal `json:"markupPercent" example:"50" default:"0"`        // Markup on the cost, wins over the margin if set
	PaymentFeePercent decimal.Decimal `json:"paymentFeePercent" example:"4.99" default:"0"`  // Percentage fee of the payment provider
	PaymentFeeFixed   decimal.Decimal `json:"paymentFeeFixed" example:"0.39" default:"0"`    // Fixed fee of the payment provider
	Installments      int             `json:"installments" example:"3" default:"1"`          // Number of installments to split the final price into
}

// PricingQuote is a computed quote. All derived values are rounded to 2
// decimal places.
type PricingQuote struct {
	SalePrice            decimal.Decimal   `json:"salePrice" example:"100.00"`            // Price derived from the costs and margin or markup
	FinalPrice           decimal.Decimal   `json:"finalPrice" example:"105.68"`           // Sale price with the payment fees passed on
	EffectiveMargin      decimal.Decimal   `json:"effectiveMargin" example:"43.01"`       // Margin of the final price over the costs
	EffectiveMarkup      decimal.Decimal   `json:"effectiveMarkup" example:"75.47"`       // Markup of the final price over the costs
	InstallmentAmounts   []decimal.Decimal `json:"installmentAmounts"`                    // The final price split into installments
}

type PricingQuoteResponse struct {
	Data  *PricingQuote `json:"data"`                                                   // The computed quote
	Error *string       `json:"error" example:"the cost for a quote must not be negative"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Pricing
// @Success		204
// @Router			/v1/pricing/quote [options]
func OptionsPricingQuote(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Compute pricing quote
// @Description	Computes a sale price quote from costs, margin or markup, payment fees and installments. Nothing is persisted.
// @Tags			Pricing
// @Accept			json
// @Produce		json
// @Success		200		{object}	PricingQuoteResponse
// @Failure		400		{object}	PricingQuoteResponse
// @Param			quote	body		PricingQuoteEditable	true	"Quote parameters"
// @Router			/v1/pricing/quote [post]
func CreatePricingQuote(c *gin.Context) {
	var editable PricingQuoteEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PricingQuoteResponse{
			Error: &s,
		})
		return
	}

	if editable.UnitCost.IsNegative() || editable.FixedCostShare.IsNegative() {
		s := errQuoteCostNegative.Error()
		c.JSON(http.StatusBadRequest, PricingQuoteResponse{
			Error: &s,
		})
		return
	}

	cost := editable.UnitCost.Add(editable.FixedCostShare)

	var salePrice decimal.Decimal
	if editable.MarkupPercent.IsPositive() {
		salePrice = pricing.SalePriceMarkup(cost, editable.MarkupPercent)
	} else {
		salePrice, err = pricing.SalePrice(cost, editable.MarginPercent)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, PricingQuoteResponse{
				Error: &s,
			})
			return
		}
	}

	finalPrice, err := pricing.WithPaymentFee(salePrice, editable.PaymentFeePercent, editable.PaymentFeeFixed)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PricingQuoteResponse{
			Error: &s,
		})
		return
	}

	installments := editable.Installments
	if installments == 0 {
		installments = 1
	}

	amounts, err := pricing.Installments(finalPrice, installments)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PricingQuoteResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, PricingQuoteResponse{
		Data: &PricingQuote{
			SalePrice:          salePrice,
			FinalPrice:         finalPrice,
			EffectiveMargin:    pricing.Margin(cost, finalPrice),
			EffectiveMarkup:    pricing.Markup(cost, finalPrice),
			InstallmentAmounts: amounts,
		},
	})
}
