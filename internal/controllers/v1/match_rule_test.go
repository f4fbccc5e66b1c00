package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/precifica/backend/internal/controllers/v1"
	"github.com/precifica/backend/internal/models"
	"github.com/precifica/backend/test"
	"github.com/stretchr/testify/assert"
)

func createTestMatchRule(t *testing.T, m v1.MatchRuleEditable, expectedStatus ...int) v1.MatchRuleResponse {
	if m.Match == "" {
		m.Match = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.MatchRuleEditable{m}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/match-rules", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.MatchRuleCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.MatchRuleResponse{}
}

// TestMatchRulesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestMatchRulesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestMatchRule(t, v1.MatchRuleEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/match-rules", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.MatchRuleListResponse
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

// TestMatchRulesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestMatchRulesOptions() {
	tests := []struct {
		name   string
		id     string // path at the match rules endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No MatchRule with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"MatchRule exists", createTestMatchRule(suite.T(), v1.MatchRuleEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/match-rules", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRulesCreateFails() {
	tests := []struct {
		name     string
		body     any
		status   int                                              // expected HTTP status
		testFunc func(t *testing.T, m v1.MatchRuleCreateResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `[{ "match": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, m v1.MatchRuleCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field MatchRuleEditable.match of type string", *m.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, m v1.MatchRuleCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *m.Error)
			},
		},
		{
			"Empty match",
			[]v1.MatchRuleEditable{{Category: "Ocupação"}},
			http.StatusBadRequest,
			func(t *testing.T, m v1.MatchRuleCreateResponse) {
				assert.Equal(t, models.ErrMatchRuleMatchEmpty.Error(), *m.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/match-rules", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.MatchRuleCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.testFunc != nil {
				tt.testFunc(t, response)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRulesGetFilter() {
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		Priority: 1,
		Match:    "Aluguel*",
		Category: "Ocupação",
	})

	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		Priority: 2,
		Match:    "Energia*",
		Category: "Ocupação",
	})

	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		Priority: 3,
		Match:    "*Marketing*",
		Category: "Comercial",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Priority", "priority=2", 1},
		{"Fuzzy match", "match=Aluguel", 1},
		{"Category", "category=Ocupação", 2},
		{"Empty category", "category=", 0},
		{"Offset 2", "offset=2", 1},
		{"Limit 2", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var response v1.MatchRuleListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/match-rules?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, tt.len, len(response.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

// TestMatchRulesOrder verifies that match rules are returned in priority
// order.
func (suite *TestSuiteStandard) TestMatchRulesOrder() {
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 3, Match: "Frete*"})
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "Aluguel*"})
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 2, Match: "Energia*"})

	var response v1.MatchRuleListResponse
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/match-rules", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data, 3) {
		assert.Equal(suite.T(), "Aluguel*", response.Data[0].Match)
		assert.Equal(suite.T(), "Energia*", response.Data[1].Match)
		assert.Equal(suite.T(), "Frete*", response.Data[2].Match)
	}
}

func (suite *TestSuiteStandard) TestMatchRulesUpdate() {
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		Match:    "Aluguel*",
		Category: "Ocupação",
	})

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{
		"category": "Estrutura",
		"priority": 5,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "Estrutura", updated.Data.Category)
	assert.Equal(suite.T(), uint(5), updated.Data.Priority)
}

func (suite *TestSuiteStandard) TestMatchRulesUpdateFails() {
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty match", map[string]any{"match": ""}, http.StatusBadRequest},
		{"Broken body", `{ "match": 2 }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, rule.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRulesDelete() {
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{})

	r := test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
