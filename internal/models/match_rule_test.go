package models_test

import (
	"github.com/precifica/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMatchRuleEmptyMatch() {
	err := models.DB.Create(&models.MatchRule{Category: "Despesas"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrMatchRuleMatchEmpty)
}

func (suite *TestSuiteStandard) TestMatchRuleTrimWhitespace() {
	r := suite.createTestMatchRule(models.MatchRule{
		Priority: 1,
		Match:    " Aluguel* ",
		Category: " Ocupação ",
	})

	assert.Equal(suite.T(), "Aluguel*", r.Match)
	assert.Equal(suite.T(), "Ocupação", r.Category)
}
