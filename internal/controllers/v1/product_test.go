package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/precifica/backend/internal/controllers/v1"
	"github.com/precifica/backend/internal/models"
	"github.com/precifica/backend/internal/pricing"
	"github.com/precifica/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestProduct(t *testing.T, p v1.ProductEditable, expectedStatus ...int) v1.ProductResponse {
	if p.Name == "" {
		p.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.ProductEditable{p}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/products", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.ProductCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.ProductResponse{}
}

// TestProductsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestProductsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestProduct(t, v1.ProductEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/products", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.ProductListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestProductsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestProductsOptions() {
	tests := []struct {
		name   string
		id     string // path at the products endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Product with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Product exists", createTestProduct(suite.T(), v1.ProductEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/products", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestProductsSalePrice verifies the sale price derivation on creation.
func (suite *TestSuiteStandard) TestProductsSalePrice() {
	tests := []struct {
		name      string
		product   v1.ProductEditable
		salePrice decimal.Decimal
	}{
		{
			"Margin",
			v1.ProductEditable{
				UnitCost:       decimal.NewFromInt(40),
				FixedCostShare: decimal.NewFromInt(10),
				MarginPercent:  decimal.NewFromInt(50),
			},
			decimal.NewFromInt(100),
		},
		{
			"Markup",
			v1.ProductEditable{
				UnitCost:      decimal.NewFromInt(50),
				MarkupPercent: decimal.NewFromInt(50),
			},
			decimal.NewFromInt(75),
		},
		{
			"Markup wins over margin",
			v1.ProductEditable{
				UnitCost:      decimal.NewFromInt(100),
				MarginPercent: decimal.NewFromInt(50),
				MarkupPercent: decimal.NewFromInt(10),
			},
			decimal.NewFromInt(110),
		},
		{
			"No margin, no markup",
			v1.ProductEditable{
				UnitCost: decimal.NewFromInt(25),
			},
			decimal.NewFromInt(25),
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			product := createTestProduct(t, tt.product)
			assert.True(t, product.Data.SalePrice.Equal(tt.salePrice), product.Data.SalePrice)
		})
	}
}

func (suite *TestSuiteStandard) TestProductsCreateFails() {
	// Test product for uniqueness
	p := createTestProduct(suite.T(), v1.ProductEditable{
		Name: "Unique Product Name",
	})

	tests := []struct {
		name     string
		body     any
		status   int                                            // expected HTTP status
		testFunc func(t *testing.T, p v1.ProductCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "name": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, p v1.ProductCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field ProductEditable.name of type string", *p.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, p v1.ProductCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *p.Error)
			},
		},
		{
			"Negative cost",
			[]v1.ProductEditable{{Name: "Camiseta", UnitCost: decimal.NewFromInt(-1)}},
			http.StatusBadRequest,
			func(t *testing.T, p v1.ProductCreateResponse) {
				assert.Equal(t, models.ErrProductCostNegative.Error(), *p.Data[0].Error)
			},
		},
		{
			"Margin of 100%",
			[]v1.ProductEditable{{Name: "Camiseta", UnitCost: decimal.NewFromInt(10), MarginPercent: decimal.NewFromInt(100)}},
			http.StatusBadRequest,
			func(t *testing.T, p v1.ProductCreateResponse) {
				assert.Equal(t, pricing.ErrMarginTooHigh.Error(), *p.Data[0].Error)
			},
		},
		{
			"Duplicate name",
			[]v1.ProductEditable{{Name: p.Data.Name}},
			http.StatusBadRequest,
			func(t *testing.T, p v1.ProductCreateResponse) {
				assert.Equal(t, models.ErrProductNameNotUnique.Error(), *p.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/products", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ProductCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.testFunc != nil {
				tt.testFunc(t, response)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestProductsGetFilter() {
	_ = createTestProduct(suite.T(), v1.ProductEditable{
		Name: "Camiseta básica",
		Note: "Fornecedor novo",
	})

	_ = createTestProduct(suite.T(), v1.ProductEditable{
		Name: "Camiseta estampada",
	})

	_ = createTestProduct(suite.T(), v1.ProductEditable{
		Name: "Caneca",
		Note: "Produção própria",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Name", "name=Caneca", 1},
		{"Fuzzy name", "name=Camiseta", 2},
		{"Empty note", "note=", 1},
		{"Fuzzy note", "note=Fornecedor", 1},
		{"Search for 'camiseta'", "search=camiseta", 2},
		{"Search for 'própria'", "search=própria", 1},
		{"Offset 2", "offset=2", 1},
		{"Limit 2", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var response v1.ProductListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/products?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, tt.len, len(response.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

// TestProductsUpdate verifies that the sale price is rederived when the
// costs of a product change.
func (suite *TestSuiteStandard) TestProductsUpdate() {
	product := createTestProduct(suite.T(), v1.ProductEditable{
		Name:          "Camiseta básica",
		UnitCost:      decimal.NewFromInt(50),
		MarginPercent: decimal.NewFromInt(50),
	})
	assert.True(suite.T(), product.Data.SalePrice.Equal(decimal.NewFromInt(100)), product.Data.SalePrice)

	r := test.Request(suite.T(), http.MethodPatch, product.Data.Links.Self, map[string]any{
		"unitCost": "60",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.ProductResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.True(suite.T(), updated.Data.SalePrice.Equal(decimal.NewFromInt(120)), updated.Data.SalePrice)
}

func (suite *TestSuiteStandard) TestProductsUpdateFails() {
	product := createTestProduct(suite.T(), v1.ProductEditable{})
	other := createTestProduct(suite.T(), v1.ProductEditable{Name: "Caneca"})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Negative cost", map[string]any{"unitCost": "-1"}, http.StatusBadRequest},
		{"Margin too high", map[string]any{"marginPercent": "100"}, http.StatusBadRequest},
		{"Duplicate name", map[string]any{"name": other.Data.Name}, http.StatusBadRequest},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, product.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestProductsDelete() {
	product := createTestProduct(suite.T(), v1.ProductEditable{})

	r := test.Request(suite.T(), http.MethodDelete, product.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, product.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
