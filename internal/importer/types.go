package importer

import (
	"github.com/google/uuid"
	"github.com/precifica/backend/internal/models"
)

// RecipientPreview is used to preview recipients that will be imported to allow for editing.
type RecipientPreview struct {
	Recipient          models.Recipient `json:"recipient"`
	MatchRuleID        uuid.UUID        `json:"matchRuleId" example:"042d101d-f1de-4403-9295-59dc0ea58677"` // ID of the match rule that assigned the category for this recipient
	CategorySuggestion string           `json:"categorySuggestion" example:"Marketing"`                     // Category of the most similar existing recipient, set when no match rule applies
}
