package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/precifica/backend/internal/controllers/v1"
	"github.com/precifica/backend/internal/pricing"
	"github.com/precifica/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestPricingQuoteOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/pricing/quote", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestPricingQuote() {
	tests := []struct {
		name     string
		quote    v1.PricingQuoteEditable
		testFunc func(t *testing.T, q v1.PricingQuote)
	}{
		{
			"Margin without fees",
			v1.PricingQuoteEditable{
				UnitCost:       decimal.NewFromInt(90),
				FixedCostShare: decimal.NewFromInt(10),
				MarginPercent:  decimal.NewFromInt(50),
				Installments:   4,
			},
			func(t *testing.T, q v1.PricingQuote) {
				assert.True(t, q.SalePrice.Equal(decimal.NewFromInt(200)), q.SalePrice)
				assert.True(t, q.FinalPrice.Equal(decimal.NewFromInt(200)), q.FinalPrice)
				assert.True(t, q.EffectiveMargin.Equal(decimal.NewFromInt(50)), q.EffectiveMargin)
				assert.True(t, q.EffectiveMarkup.Equal(decimal.NewFromInt(100)), q.EffectiveMarkup)

				require.Len(t, q.InstallmentAmounts, 4)
				for _, amount := range q.InstallmentAmounts {
					assert.True(t, amount.Equal(decimal.NewFromInt(50)), amount)
				}
			},
		},
		{
			"Payment fee is passed on",
			v1.PricingQuoteEditable{
				UnitCost:          decimal.NewFromInt(50),
				MarginPercent:     decimal.NewFromInt(50),
				PaymentFeePercent: decimal.NewFromInt(20),
				Installments:      2,
			},
			func(t *testing.T, q v1.PricingQuote) {
				assert.True(t, q.SalePrice.Equal(decimal.NewFromInt(100)), q.SalePrice)
				assert.True(t, q.FinalPrice.Equal(decimal.NewFromInt(125)), q.FinalPrice)

				// The customer pays the fee, the margin over the costs grows
				assert.True(t, q.EffectiveMargin.Equal(decimal.NewFromInt(60)), q.EffectiveMargin)
				assert.True(t, q.EffectiveMarkup.Equal(decimal.NewFromInt(150)), q.EffectiveMarkup)

				require.Len(t, q.InstallmentAmounts, 2)
				assert.True(t, q.InstallmentAmounts[0].Equal(decimal.NewFromFloat(62.50)), q.InstallmentAmounts[0])
			},
		},
		{
			"Markup wins over margin",
			v1.PricingQuoteEditable{
				UnitCost:      decimal.NewFromInt(100),
				MarginPercent: decimal.NewFromInt(50),
				MarkupPercent: decimal.NewFromInt(10),
			},
			func(t *testing.T, q v1.PricingQuote) {
				assert.True(t, q.SalePrice.Equal(decimal.NewFromInt(110)), q.SalePrice)
			},
		},
		{
			"Installments default to one",
			v1.PricingQuoteEditable{
				UnitCost: decimal.NewFromInt(100),
			},
			func(t *testing.T, q v1.PricingQuote) {
				require.Len(t, q.InstallmentAmounts, 1)
				assert.True(t, q.InstallmentAmounts[0].Equal(decimal.NewFromInt(100)), q.InstallmentAmounts[0])
			},
		},
		{
			"First installment absorbs the rounding remainder",
			v1.PricingQuoteEditable{
				UnitCost:     decimal.NewFromInt(100),
				Installments: 3,
			},
			func(t *testing.T, q v1.PricingQuote) {
				require.Len(t, q.InstallmentAmounts, 3)
				assert.True(t, q.InstallmentAmounts[0].Equal(decimal.NewFromFloat(33.34)), q.InstallmentAmounts[0])
				assert.True(t, q.InstallmentAmounts[1].Equal(decimal.NewFromFloat(33.33)), q.InstallmentAmounts[1])
				assert.True(t, q.InstallmentAmounts[2].Equal(decimal.NewFromFloat(33.33)), q.InstallmentAmounts[2])
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/pricing/quote", tt.quote)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.PricingQuoteResponse
			test.DecodeResponse(t, &r, &response)

			require.NotNil(t, response.Data)
			tt.testFunc(t, *response.Data)
		})
	}
}

func (suite *TestSuiteStandard) TestPricingQuoteFails() {
	tests := []struct {
		name  string
		body  any
		error string
	}{
		{
			"Broken body",
			`{ "unitCost": "NaN" }`,
			"the body of your request contains invalid or un-parseable data",
		},
		{
			"No body",
			"",
			"the request body must not be empty",
		},
		{
			"Negative cost",
			v1.PricingQuoteEditable{UnitCost: decimal.NewFromInt(-1)},
			"the cost for a quote must not be negative",
		},
		{
			"Margin of 100%",
			v1.PricingQuoteEditable{UnitCost: decimal.NewFromInt(10), MarginPercent: decimal.NewFromInt(100)},
			pricing.ErrMarginTooHigh.Error(),
		},
		{
			"Fee of 100%",
			v1.PricingQuoteEditable{UnitCost: decimal.NewFromInt(10), PaymentFeePercent: decimal.NewFromInt(100)},
			pricing.ErrFeeTooHigh.Error(),
		},
		{
			"Negative installments",
			v1.PricingQuoteEditable{UnitCost: decimal.NewFromInt(10), Installments: -2},
			pricing.ErrInstallmentsInvalid.Error(),
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/pricing/quote", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.PricingQuoteResponse
			test.DecodeResponse(t, &r, &response)

			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.error)
		})
	}
}
