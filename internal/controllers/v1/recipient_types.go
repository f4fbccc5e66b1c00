package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/precifica/backend/internal/models"
	pf_uuid "github.com/precifica/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// RecipientEditable represents all user configurable parameters
type RecipientEditable struct {
	AllocationID uuid.UUID        `json:"allocationId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the allocation the recipient belongs to
	Name         string           `json:"name" example:"Marketing" default:""`                         // Name of the recipient
	Category     string           `json:"category" example:"Comercial" default:""`                     // Category used for grouping and reporting
	Percentage   *decimal.Decimal `json:"percentage" example:"33.5"`                                   // Percentage of the total, null if not entered
	FixedAmount  *decimal.Decimal `json:"fixedAmount" example:"150.00"`                                // Fixed amount, null if not entered
}

func (editable RecipientEditable) model() models.Recipient {
	return models.Recipient{
		AllocationID: editable.AllocationID,
		Name:         editable.Name,
		Category:     editable.Category,
		Percentage:   editable.Percentage,
		FixedAmount:  editable.FixedAmount,
	}
}

type RecipientLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/recipients/d1b4ad87-fcb9-4a29-b0da-d0b28537a142"`       // The recipient itself
	Allocation string `json:"allocation" example:"https://example.com/api/v1/allocations/3b1ea324-d438-4419-882a-2fc91d71772f"` // The allocation the recipient belongs to
}

type Recipient struct {
	models.DefaultModel
	RecipientEditable
	Links RecipientLinks `json:"links"`

	// This field is derived by the allocation engine, never set directly
	ComputedAmount decimal.Decimal `json:"computedAmount" example:"300.00"` // The amount allocated to this recipient
}

func newRecipient(c *gin.Context, model models.Recipient) Recipient {
	url := c.GetString(string(models.DBContextURL))

	return Recipient{
		DefaultModel: model.DefaultModel,
		RecipientEditable: RecipientEditable{
			AllocationID: model.AllocationID,
			Name:         model.Name,
			Category:     model.Category,
			Percentage:   model.Percentage,
			FixedAmount:  model.FixedAmount,
		},
		ComputedAmount: model.ComputedAmount,
		Links: RecipientLinks{
			Self:       fmt.Sprintf("%s/v1/recipients/%s", url, model.ID),
			Allocation: fmt.Sprintf("%s/v1/allocations/%s", url, model.AllocationID),
		},
	}
}

type RecipientListResponse struct {
	Data       []Recipient `json:"data"`                                                          // List of recipients
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type RecipientCreateResponse struct {
	Data  []RecipientResponse `json:"data"`                                                          // List of the created recipients or their respective error
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *RecipientCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, RecipientResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type RecipientResponse struct {
	Data  *Recipient `json:"data"`                                                          // Data for the recipient
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RecipientQueryFilter struct {
	AllocationID pf_uuid.UUID `form:"allocation"`                 // By ID of the allocation
	Name         string       `form:"name" filterField:"false"`   // By name
	Category     string       `form:"category" filterField:"false"` // By category
	Search       string       `form:"search" filterField:"false"` // By string in name or category
	Offset       uint         `form:"offset" filterField:"false"` // The offset of the first recipient returned. Defaults to 0.
	Limit        int          `form:"limit" filterField:"false"`  // Maximum number of recipients to return. Defaults to 50.
}

func (f RecipientQueryFilter) model() (models.Recipient, error) {
	return models.Recipient{
		AllocationID: f.AllocationID.UUID,
	}, nil
}
