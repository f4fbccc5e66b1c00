package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/precifica/backend/internal/allocation"
	v1 "github.com/precifica/backend/internal/controllers/v1"
	"github.com/precifica/backend/internal/models"
	"github.com/precifica/backend/internal/types"
	"github.com/precifica/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAllocation(t *testing.T, a v1.AllocationEditable, expectedStatus ...int) v1.AllocationResponse {
	if a.TargetName == "" {
		a.TargetName = uuid.NewString()
	}

	if a.Month.IsZero() {
		a.Month = types.NewMonth(2026, 8)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.AllocationEditable{a}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/allocations", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.AllocationCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.AllocationResponse{}
}

// TestAllocationsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestAllocationsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestAllocation(t, v1.AllocationEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/allocations", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.AllocationListResponse
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

// TestAllocationsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestAllocationsOptions() {
	tests := []struct {
		name   string
		id     string // path at the allocations endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Allocation with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Allocation exists", createTestAllocation(suite.T(), v1.AllocationEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/allocations", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestAllocationsGetSingle verifies that requests for the resource endpoints
// are handled correctly.
func (suite *TestSuiteStandard) TestAllocationsGetSingle() {
	a := createTestAllocation(suite.T(), v1.AllocationEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Allocation", a.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Allocation with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/allocations/%s", tt.id), "")

			var response v1.AllocationResponse
			test.DecodeResponse(t, &r, &response)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsCreateFails() {
	tests := []struct {
		name     string
		body     any
		status   int                                               // expected HTTP status
		testFunc func(t *testing.T, a v1.AllocationCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "note": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, a v1.AllocationCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field AllocationEditable.note of type string", *a.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, a v1.AllocationCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *a.Error)
			},
		},
		{
			"Negative total amount",
			[]v1.AllocationEditable{
				{
					TargetName:  "Loja Centro",
					Month:       types.NewMonth(2026, 8),
					TotalAmount: decimal.NewFromFloat(-100),
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, a v1.AllocationCreateResponse) {
				assert.Equal(t, models.ErrTotalAmountNegative.Error(), *a.Data[0].Error)
			},
		},
		{
			"Invalid strategy",
			`[{ "targetName": "Loja Centro", "strategy": "GUESSWORK" }]`,
			http.StatusBadRequest,
			func(t *testing.T, a v1.AllocationCreateResponse) {
				assert.Equal(t, allocation.ErrInvalidStrategy.Error(), *a.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/allocations", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.AllocationCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.testFunc != nil {
				tt.testFunc(t, response)
			}
		})
	}
}

// TestAllocationsCreateDefaults verifies that an allocation without an
// explicit strategy uses the equal split.
func (suite *TestSuiteStandard) TestAllocationsCreateDefaults() {
	a := createTestAllocation(suite.T(), v1.AllocationEditable{
		TargetName:  "Loja Centro",
		TotalAmount: decimal.NewFromInt(900),
	})

	assert.Equal(suite.T(), allocation.StrategyEqual, a.Data.Strategy)
	assert.True(suite.T(), a.Data.TotalAmount.Equal(decimal.NewFromInt(900)), a.Data.TotalAmount)

	// No recipients yet, so nothing is assigned
	assert.False(suite.T(), a.Data.Summary.Complete)
	assert.True(suite.T(), a.Data.Summary.AmountRemaining.Equal(decimal.NewFromInt(900)), a.Data.Summary.AmountRemaining)
	assert.False(suite.T(), a.Data.Validation.Valid)
}

func (suite *TestSuiteStandard) TestAllocationsGetFilter() {
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{
		TargetName:      "Loja Centro",
		ItemDescription: "Aluguel",
		Note:            "Rateio mensal",
		Month:           types.NewMonth(2026, 7),
		Strategy:        allocation.StrategyEqual,
		TotalAmount:     decimal.NewFromInt(900),
	})

	_ = createTestAllocation(suite.T(), v1.AllocationEditable{
		TargetName:      "Loja Norte",
		ItemDescription: "Energia",
		Month:           types.NewMonth(2026, 8),
		Strategy:        allocation.StrategyProportional,
		TotalAmount:     decimal.NewFromInt(450),
	})

	_ = createTestAllocation(suite.T(), v1.AllocationEditable{
		TargetName:      "Escritório",
		ItemDescription: "Aluguel",
		Note:            "Contrato antigo",
		Month:           types.NewMonth(2026, 8),
		Strategy:        allocation.StrategyFixed,
		TotalAmount:     decimal.NewFromInt(1200),
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Target name", "targetName=Loja Centro", 1},
		{"Fuzzy target name", "targetName=Loja", 2},
		{"Item description", "itemDescription=Aluguel", 2},
		{"Empty note", "note=", 1},
		{"Fuzzy note", "note=Rateio", 1},
		{"Month", "month=2026-08", 2},
		{"Month without allocations", "month=2025-01", 0},
		{"Strategy", "strategy=PROPORTIONAL", 1},
		{"Search for 'aluguel'", "search=aluguel", 2},
		{"Search for 'LOJA'", "search=LOJA", 2},
		{"Offset 2", "offset=2", 1},
		{"Offset 0, limit 2", "offset=0&limit=2", 2},
		{"Limit 4", "limit=4", 3},
		{"Limit 0", "limit=0", 0},
		{"Limit -1", "limit=-1", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var response v1.AllocationListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/allocations?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, tt.len, len(response.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsGetFilterInvalid() {
	tests := []struct {
		name  string
		query string
	}{
		{"Invalid month", "month=2026-13"},
		{"Invalid strategy", "strategy=NOPE"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/allocations?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestAllocationsUpdate verifies that updating an allocation recomputes the
// amounts of its recipients.
func (suite *TestSuiteStandard) TestAllocationsUpdate() {
	a := createTestAllocation(suite.T(), v1.AllocationEditable{
		TargetName:  "Loja Centro",
		TotalAmount: decimal.NewFromInt(90),
	})

	for _, name := range []string{"Marketing", "Vendas", "Administrativo"} {
		_ = createTestRecipient(suite.T(), v1.RecipientEditable{
			AllocationID: a.Data.ID,
			Name:         name,
		})
	}

	r := test.Request(suite.T(), http.MethodPatch, a.Data.Links.Self, map[string]any{
		"totalAmount": "120",
		"note":        "Reajuste do aluguel",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "Reajuste do aluguel", updated.Data.Note)
	require.Len(suite.T(), updated.Data.Recipients, 3)

	for _, recipient := range updated.Data.Recipients {
		assert.True(suite.T(), recipient.ComputedAmount.Equal(decimal.NewFromInt(40)), recipient.ComputedAmount)
	}

	assert.True(suite.T(), updated.Data.Summary.Complete)
	assert.True(suite.T(), updated.Data.Validation.Valid)
}

func (suite *TestSuiteStandard) TestAllocationsUpdateFails() {
	a := createTestAllocation(suite.T(), v1.AllocationEditable{})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Negative total amount", map[string]any{"totalAmount": "-10"}, http.StatusBadRequest},
		{"Invalid strategy", map[string]any{"strategy": "GUESSWORK"}, http.StatusBadRequest},
		{"Broken body", `{ "note": 2 }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, a.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestAllocationsDelete verifies that the recipients of an allocation are
// deleted together with it.
func (suite *TestSuiteStandard) TestAllocationsDelete() {
	a := createTestAllocation(suite.T(), v1.AllocationEditable{TotalAmount: decimal.NewFromInt(100)})
	_ = createTestRecipient(suite.T(), v1.RecipientEditable{AllocationID: a.Data.ID, Name: "Marketing"})

	r := test.Request(suite.T(), http.MethodDelete, a.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, a.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var recipients v1.RecipientListResponse
	r = test.Request(suite.T(), http.MethodGet, a.Data.Links.Recipients, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &recipients)
	assert.Len(suite.T(), recipients.Data, 0)
}

// TestAllocationsRecompute verifies the recompute endpoint rederives all
// recipient amounts.
func (suite *TestSuiteStandard) TestAllocationsRecompute() {
	a := createTestAllocation(suite.T(), v1.AllocationEditable{
		Strategy:    allocation.StrategyProportional,
		TotalAmount: decimal.NewFromInt(200),
	})

	percentage := decimal.NewFromInt(25)
	_ = createTestRecipient(suite.T(), v1.RecipientEditable{
		AllocationID: a.Data.ID,
		Name:         "Marketing",
		Percentage:   &percentage,
	})

	r := test.Request(suite.T(), http.MethodPost, a.Data.Links.Recompute, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data.Recipients, 1)
	assert.True(suite.T(), response.Data.Recipients[0].ComputedAmount.Equal(decimal.NewFromInt(50)), response.Data.Recipients[0].ComputedAmount)

	// 75 percentage points are still unassigned
	assert.False(suite.T(), response.Data.Summary.Complete)
	assert.False(suite.T(), response.Data.Validation.Valid)
	require.Len(suite.T(), response.Data.Validation.Violations, 1)
	assert.Equal(suite.T(), "PERCENTAGE_SUM_MISMATCH", response.Data.Validation.Violations[0].Kind)
}

func (suite *TestSuiteStandard) TestAllocationsRecomputeInvalidID() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Not a UUID", "notaUUID", http.StatusBadRequest},
		{"No allocation with this ID", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, fmt.Sprintf("http://example.com/v1/allocations/%s/recompute", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
