package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/precifica/backend/internal/httputil"
	"github.com/precifica/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterRecipientRoutes registers the routes for recipients with
// the RouterGroup that is passed.
func RegisterRecipientRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRecipientList)
		r.GET("", GetRecipients)
		r.POST("", CreateRecipients)
	}

	// Recipient with ID
	{
		r.OPTIONS("/:id", OptionsRecipientDetail)
		r.GET("/:id", GetRecipient)
		r.PATCH("/:id", UpdateRecipient)
		r.DELETE("/:id", DeleteRecipient)
	}
}

// recomputeAllocation reruns the allocation engine for the allocation with
// the passed ID and persists the recipient amounts. It is called after every
// recipient change so that computed amounts are never stale.
func recomputeAllocation(id uuid.UUID) error {
	var alloc models.Allocation
	err := models.DB.First(&alloc, id).Error
	if err != nil {
		return err
	}

	_, err = alloc.RecomputeRecipients(models.DB)
	return err
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recipients
// @Success		204
// @Router			/v1/recipients [options]
func OptionsRecipientList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recipients
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recipients/{id} [options]
func OptionsRecipientDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Recipient{})
}

// @Summary		Create recipients
// @Description	Creates new recipients. The amounts of all recipients of the affected allocations are recomputed.
// @Tags			Recipients
// @Produce		json
// @Success		201			{object}	RecipientCreateResponse
// @Failure		400			{object}	RecipientCreateResponse
// @Failure		404			{object}	RecipientCreateResponse
// @Failure		500			{object}	RecipientCreateResponse
// @Param			recipients	body		[]RecipientEditable	true	"Recipients"
// @Router			/v1/recipients [post]
func CreateRecipients(c *gin.Context) {
	var editables []RecipientEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecipientCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := RecipientCreateResponse{}

	for _, editable := range editables {
		recipient := editable.model()

		err = models.DB.Create(&recipient).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = recomputeAllocation(recipient.AllocationID)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Reload so that the response carries the computed amount
		err = models.DB.First(&recipient, recipient.ID).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newRecipient(c, recipient)
		r.Data = append(r.Data, RecipientResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get recipients
// @Description	Returns a list of recipients
// @Tags			Recipients
// @Produce		json
// @Success		200	{object}	RecipientListResponse
// @Failure		400	{object}	RecipientListResponse
// @Failure		500	{object}	RecipientListResponse
// @Router			/v1/recipients [get]
// @Param			allocation	query	string	false	"Filter by allocation ID"
// @Param			name		query	string	false	"Filter by name"
// @Param			category	query	string	false	"Filter by category"
// @Param			search		query	string	false	"Search for this text in name and category"
// @Param			offset		query	uint	false	"The offset of the first recipient returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of recipients to return. Defaults to 50."
func GetRecipients(c *gin.Context) {
	var filter RecipientQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecipientListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("created_at ASC, id ASC").
		Where(&filterModel, queryFields...)

	q = recipientStringFilters(models.DB, q, setFields, filter)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 recipients and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var recipients []models.Recipient
	err = q.Find(&recipients).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecipientListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecipientListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Recipient, 0, len(recipients))
	for _, recipient := range recipients {
		data = append(data, newRecipient(c, recipient))
	}

	c.JSON(http.StatusOK, RecipientListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get recipient
// @Description	Returns a specific recipient
// @Tags			Recipients
// @Produce		json
// @Success		200	{object}	RecipientResponse
// @Failure		400	{object}	RecipientResponse
// @Failure		404	{object}	RecipientResponse
// @Failure		500	{object}	RecipientResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recipients/{id} [get]
func GetRecipient(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecipientResponse{
			Error: &s,
		})
		return
	}

	var recipient models.Recipient
	err = models.DB.First(&recipient, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecipientResponse{
			Error: &s,
		})
		return
	}

	data := newRecipient(c, recipient)
	c.JSON(http.StatusOK, RecipientResponse{Data: &data})
}

// @Summary		Update recipient
// @Description	Update an existing recipient. Only values to be updated need to be specified. The amounts of all recipients of the allocation are recomputed.
// @Tags			Recipients
// @Accept			json
// @Produce		json
// @Success		200			{object}	RecipientResponse
// @Failure		400			{object}	RecipientResponse
// @Failure		404			{object}	RecipientResponse
// @Failure		500			{object}	RecipientResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			recipient	body		RecipientEditable	true	"Recipient"
// @Router			/v1/recipients/{id} [patch]
func UpdateRecipient(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecipientResponse{
			Error: &s,
		})
		return
	}

	var recipient models.Recipient
	err = models.DB.First(&recipient, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecipientResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RecipientEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecipientResponse{
			Error: &s,
		})
		return
	}

	var data RecipientEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecipientResponse{
			Error: &s,
		})
		return
	}

	// Update hooks only see the stored values, so the full record is saved
	// again in the same transaction to validate the updated fields
	tx := models.DB.Begin()

	err = tx.Model(&recipient).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		tx.Rollback()
		s := err.Error()
		c.JSON(status(err), RecipientResponse{
			Error: &s,
		})
		return
	}

	err = tx.Save(&recipient).Error
	if err != nil {
		tx.Rollback()
		s := err.Error()
		c.JSON(status(err), RecipientResponse{
			Error: &s,
		})
		return
	}

	tx.Commit()

	err = recomputeAllocation(recipient.AllocationID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecipientResponse{
			Error: &s,
		})
		return
	}

	// Reload so that the response carries the computed amount
	err = models.DB.First(&recipient, recipient.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecipientResponse{
			Error: &s,
		})
		return
	}

	r := newRecipient(c, recipient)
	c.JSON(http.StatusOK, RecipientResponse{Data: &r})
}

// @Summary		Delete recipient
// @Description	Deletes a recipient. The amounts of the remaining recipients of the allocation are recomputed.
// @Tags			Recipients
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recipients/{id} [delete]
func DeleteRecipient(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var recipient models.Recipient
	err = models.DB.First(&recipient, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&recipient).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// The remaining recipients share the freed amount under EQUAL
	err = recomputeAllocation(recipient.AllocationID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// recipientStringFilters applies the LIKE filters for the name and category
// columns and the search over both of them.
func recipientStringFilters(db, query *gorm.DB, setFields []string, filter RecipientQueryFilter) *gorm.DB {
	if filter.Name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if filter.Category != "" {
		query = query.Where("category LIKE ?", fmt.Sprintf("%%%s%%", filter.Category))
	} else if slices.Contains(setFields, "Category") {
		query = query.Where("category = ''")
	}

	if filter.Search != "" {
		like := fmt.Sprintf("%%%s%%", filter.Search)
		query = query.Where(
			db.Where("name LIKE ?", like).Or(db.Where("category LIKE ?", like)),
		)
	}

	return query
}
