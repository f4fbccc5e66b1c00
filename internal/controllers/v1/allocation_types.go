package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/precifica/backend/internal/allocation"
	"github.com/precifica/backend/internal/models"
	"github.com/precifica/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AllocationEditable represents all user configurable parameters
type AllocationEditable struct {
	TargetName      string              `json:"targetName" example:"Loja Centro" default:""`                     // Name of the entity the cost is allocated against
	ItemDescription string              `json:"itemDescription" example:"Aluguel" default:""`                    // The cost line item being distributed
	Note            string              `json:"note" example:"Rateio mensal do aluguel" default:""`              // Notes about the allocation
	Month           types.Month         `json:"month" example:"2026-08" swaggertype:"primitive,string"`          // The accounting period the allocation belongs to
	Strategy        allocation.Strategy `json:"strategy" example:"PROPORTIONAL" default:"EQUAL" enums:"EQUAL,PROPORTIONAL,FIXED,MIXED"` // How the total is distributed across the recipients
	TotalAmount     decimal.Decimal     `json:"totalAmount" example:"900.00" default:"0"`                        // The total to distribute
}

func (editable AllocationEditable) model() models.Allocation {
	return models.Allocation{
		TargetName:      editable.TargetName,
		ItemDescription: editable.ItemDescription,
		Note:            editable.Note,
		Month:           editable.Month,
		Strategy:        editable.Strategy,
		TotalAmount:     editable.TotalAmount,
	}
}

type AllocationLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/allocations/3b1ea324-d438-4419-882a-2fc91d71772f"`                        // The allocation itself
	Recipients string `json:"recipients" example:"https://example.com/api/v1/recipients?allocation=3b1ea324-d438-4419-882a-2fc91d71772f"`        // Recipients for this allocation
	Recompute  string `json:"recompute" example:"https://example.com/api/v1/allocations/3b1ea324-d438-4419-882a-2fc91d71772f/recompute"`         // Endpoint recomputing all recipient amounts
	Import     string `json:"import" example:"https://example.com/api/v1/allocations/3b1ea324-d438-4419-882a-2fc91d71772f/recipients/import"`    // Endpoint for importing a recipient list
}

// AllocationSummary reports how completely the computed shares account for
// the total. It is advisory, an incomplete allocation is still returned.
type AllocationSummary struct {
	Complete            bool            `json:"complete" example:"true"`               // Does the allocation fully account for the total?
	PercentageAssigned  decimal.Decimal `json:"percentageAssigned" example:"100"`      // Sum of all recipient percentages
	PercentageRemaining decimal.Decimal `json:"percentageRemaining" example:"0"`       // Percentage points still unassigned
	AmountAssigned      decimal.Decimal `json:"amountAssigned" example:"900.00"`       // Sum of all computed amounts
	AmountRemaining     decimal.Decimal `json:"amountRemaining" example:"0.00"`        // Amount still unassigned
}

func newAllocationSummary(summary allocation.Summary) AllocationSummary {
	return AllocationSummary{
		Complete:            summary.Complete,
		PercentageAssigned:  summary.PercentageAssigned,
		PercentageRemaining: summary.PercentageRemaining,
		AmountAssigned:      summary.AmountAssigned,
		AmountRemaining:     summary.AmountRemaining,
	}
}

// AllocationViolation is a single invariant breach in the allocation
// configuration. For the sum kinds, delta carries the remaining percentage
// points or the missing amount.
type AllocationViolation struct {
	Kind        string          `json:"kind" example:"PERCENTAGE_SUM_MISMATCH"`                               // Which invariant is breached
	RecipientID string          `json:"recipientId,omitempty" example:"95018a69-758b-46c6-8bab-db70d9614f9d"` // ID of the offending recipient, if any
	Delta       decimal.Decimal `json:"delta" example:"50.00"`                                                // The remaining percentage points or missing amount
}

// AllocationValidation is the validation result for the current allocation
// configuration. It is returned as data so that clients can decide whether
// to block submission.
type AllocationValidation struct {
	Valid      bool                  `json:"valid" example:"false"`
	Violations []AllocationViolation `json:"violations"`
}

func newAllocationValidation(result allocation.ValidationResult) AllocationValidation {
	violations := make([]AllocationViolation, 0, len(result.Violations))
	for _, violation := range result.Violations {
		violations = append(violations, AllocationViolation{
			Kind:        string(violation.Kind),
			RecipientID: violation.RecipientID,
			Delta:       violation.Delta,
		})
	}

	return AllocationValidation{
		Valid:      result.Valid,
		Violations: violations,
	}
}

type Allocation struct {
	models.DefaultModel
	AllocationEditable
	Links AllocationLinks `json:"links"`

	// These fields are computed
	Recipients []Recipient          `json:"recipients"` // Recipients of the allocation with their computed amounts
	Summary    AllocationSummary    `json:"summary"`    // Completeness summary for the allocation
	Validation AllocationValidation `json:"validation"` // Validation result for the current configuration
}

func newAllocation(c *gin.Context, db *gorm.DB, model models.Allocation) (Allocation, error) {
	url := c.GetString(string(models.DBContextURL))

	apiAllocation := Allocation{
		DefaultModel: model.DefaultModel,
		AllocationEditable: AllocationEditable{
			TargetName:      model.TargetName,
			ItemDescription: model.ItemDescription,
			Note:            model.Note,
			Month:           model.Month,
			Strategy:        model.Strategy,
			TotalAmount:     model.TotalAmount,
		},
		Links: AllocationLinks{
			Self:       fmt.Sprintf("%s/v1/allocations/%s", url, model.ID),
			Recipients: fmt.Sprintf("%s/v1/recipients?allocation=%s", url, model.ID),
			Recompute:  fmt.Sprintf("%s/v1/allocations/%s/recompute", url, model.ID),
			Import:     fmt.Sprintf("%s/v1/allocations/%s/recipients/import", url, model.ID),
		},
	}

	var recipients []models.Recipient
	err := db.Where(&models.Recipient{AllocationID: model.ID}).Order("created_at ASC, id ASC").Find(&recipients).Error
	if err != nil {
		return Allocation{}, err
	}

	apiAllocation.Recipients = make([]Recipient, 0, len(recipients))
	for _, recipient := range recipients {
		apiAllocation.Recipients = append(apiAllocation.Recipients, newRecipient(c, recipient))
	}

	request := model.EngineRequest(recipients)
	apiAllocation.Summary = newAllocationSummary(allocation.Compute(request).Summary)
	apiAllocation.Validation = newAllocationValidation(allocation.Validate(request))

	return apiAllocation, nil
}

type AllocationListResponse struct {
	Data       []Allocation `json:"data"`                                                          // List of allocations
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type AllocationCreateResponse struct {
	Data  []AllocationResponse `json:"data"`                                                          // List of the created allocations or their respective error
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (a *AllocationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AllocationResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AllocationResponse struct {
	Data  *Allocation `json:"data"`                                                          // Data for the allocation
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AllocationQueryFilter struct {
	TargetName      string `form:"targetName" filterField:"false"`      // By target name
	ItemDescription string `form:"itemDescription" filterField:"false"` // By item description
	Note            string `form:"note" filterField:"false"`            // By note
	Month           string `form:"month" filterField:"false"`           // By month in YYYY-MM format
	Strategy        string `form:"strategy"`                            // By strategy
	Search          string `form:"search" filterField:"false"`          // By string in target name, item description or note
	Offset          uint   `form:"offset" filterField:"false"`          // The offset of the first allocation returned. Defaults to 0.
	Limit           int    `form:"limit" filterField:"false"`           // Maximum number of allocations to return. Defaults to 50.
}

func (f AllocationQueryFilter) model() (models.Allocation, error) {
	var strategy allocation.Strategy
	if f.Strategy != "" {
		parsed, err := allocation.ParseStrategy(f.Strategy)
		if err != nil {
			return models.Allocation{}, err
		}
		strategy = parsed
	}

	return models.Allocation{
		Strategy: strategy,
	}, nil
}
