package v1

import (
	"fmt"
	"mime/multipart"
	"strings"

	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/precifica/backend/internal/httputil"
	"github.com/precifica/backend/internal/importer"
	"github.com/precifica/backend/internal/importer/parser/recipients"
	"github.com/precifica/backend/internal/models"
	"github.com/precifica/backend/internal/similarity"
	"github.com/ryanuber/go-glob"
)

// suggestionMinRatio is the minimum name similarity for a category
// suggestion. Below it, suggestions are more noise than help.
const suggestionMinRatio = 0.7

type ImportPreviewList struct {
	Data  []importer.RecipientPreview `json:"data"`                                                          // List of recipient previews
	Error *string                     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// match assigns a category to the preview by applying the match rules to the
// recipient name.
func match(preview *importer.RecipientPreview, rules []models.MatchRule) {
	// Rules are loaded from the database in priority order, the first
	// match wins
	for _, rule := range rules {
		if glob.Glob(rule.Match, preview.Recipient.Name) {
			preview.Recipient.Category = rule.Category
			preview.MatchRuleID = rule.ID
			return
		}
	}
}

// suggestCategory sets the category of the most similar already categorized
// recipient as a suggestion. It is only a suggestion since name similarity
// is a heuristic, the user confirms it on import.
func suggestCategory(preview *importer.RecipientPreview, categoriesByName map[string]string, names []string) {
	closest, ratio := similarity.Closest(preview.Recipient.Name, names)
	if ratio < suggestionMinRatio {
		return
	}

	preview.CategorySuggestion = categoriesByName[closest]
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/allocations/{id}/recipients/import [options]
func OptionsRecipientsImport(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Allocation{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Recipient import preview
// @Description	Returns a preview of recipients to be imported for the allocation after parsing a recipient list CSV file. Match rules assign categories, recipients without a match get the category of the most similar existing recipient as a suggestion. Nothing is persisted.
// @Tags			Allocations
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ImportPreviewList
// @Failure		400		{object}	ImportPreviewList
// @Failure		404		{object}	ImportPreviewList
// @Failure		500		{object}	ImportPreviewList
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/allocations/{id}/recipients/import [post]
func ImportRecipients(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewList{
			Error: &s,
		})
		return
	}

	var alloc models.Allocation
	err = models.DB.First(&alloc, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewList{
			Error: &s,
		})
		return
	}

	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewList{
			Error: &s,
		})
		return
	}

	previews, err := recipients.Parse(f, alloc)
	if err != nil {
		// recipients.Parse returns a usable error already, no parsing necessary
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportPreviewList{
			Error: &s,
		})
		return
	}

	var matchRules []models.MatchRule
	err = models.DB.Order("priority ASC").Find(&matchRules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewList{
			Error: &s,
		})
		return
	}

	// All already categorized recipients, for category suggestions by
	// name similarity
	var categorized []models.Recipient
	err = models.DB.Where("category != ''").Find(&categorized).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewList{
			Error: &s,
		})
		return
	}

	categoriesByName := make(map[string]string, len(categorized))
	names := make([]string, 0, len(categorized))
	for _, recipient := range categorized {
		if _, ok := categoriesByName[recipient.Name]; ok {
			continue
		}

		categoriesByName[recipient.Name] = recipient.Category
		names = append(names, recipient.Name)
	}

	for i, preview := range previews {
		if preview.Recipient.Category == "" && len(matchRules) > 0 {
			match(&preview, matchRules)
		}

		if preview.Recipient.Category == "" && len(names) > 0 {
			suggestCategory(&preview, categoriesByName, names)
		}

		previews[i] = preview
	}

	// When there are no parsed recipients, return an empty list, not null
	if previews == nil {
		previews = make([]importer.RecipientPreview, 0)
	}

	c.JSON(http.StatusOK, ImportPreviewList{
		Data: previews,
	})
}
