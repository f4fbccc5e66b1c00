package models

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// MatchRule assigns a category to imported cost lines and recipients whose
// name matches a glob pattern. Rules are applied in priority order; the
// first match wins.
type MatchRule struct {
	DefaultModel
	Priority uint
	Match    string
	Category string
}

func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	r.Category = strings.TrimSpace(r.Category)

	if r.Match == "" {
		return ErrMatchRuleMatchEmpty
	}

	return nil
}

// Returns all match rules on this instance for export
func (MatchRule) Export() (json.RawMessage, error) {
	var matchRules []MatchRule
	err := DB.Unscoped().Where(&MatchRule{}).Find(&matchRules).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&matchRules)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
