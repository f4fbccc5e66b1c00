package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/precifica/backend/internal/httputil"
	"github.com/precifica/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterProductRoutes registers the routes for products with
// the RouterGroup that is passed.
func RegisterProductRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsProductList)
		r.GET("", GetProducts)
		r.POST("", CreateProducts)
	}

	// Product with ID
	{
		r.OPTIONS("/:id", OptionsProductDetail)
		r.GET("/:id", GetProduct)
		r.PATCH("/:id", UpdateProduct)
		r.DELETE("/:id", DeleteProduct)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Products
// @Success		204
// @Router			/v1/products [options]
func OptionsProductList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Products
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/products/{id} [options]
func OptionsProductDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Product{})
}

// @Summary		Create products
// @Description	Creates new products. The sale price of every product is derived from its costs and margin or markup.
// @Tags			Products
// @Produce		json
// @Success		201			{object}	ProductCreateResponse
// @Failure		400			{object}	ProductCreateResponse
// @Failure		500			{object}	ProductCreateResponse
// @Param			products	body		[]ProductEditable	true	"Products"
// @Router			/v1/products [post]
func CreateProducts(c *gin.Context) {
	var editables []ProductEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProductCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ProductCreateResponse{}

	for _, editable := range editables {
		product := editable.model()

		err = models.DB.Create(&product).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newProduct(c, product)
		r.Data = append(r.Data, ProductResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get products
// @Description	Returns a list of products
// @Tags			Products
// @Produce		json
// @Success		200	{object}	ProductListResponse
// @Failure		400	{object}	ProductListResponse
// @Failure		500	{object}	ProductListResponse
// @Router			/v1/products [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			note	query	string	false	"Filter by note"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			offset	query	uint	false	"The offset of the first product returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of products to return. Defaults to 50."
func GetProducts(c *gin.Context) {
	var filter ProductQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProductListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 products and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var products []models.Product
	err = q.Find(&products).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProductListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProductListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Product, 0, len(products))
	for _, product := range products {
		data = append(data, newProduct(c, product))
	}

	c.JSON(http.StatusOK, ProductListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get product
// @Description	Returns a specific product
// @Tags			Products
// @Produce		json
// @Success		200	{object}	ProductResponse
// @Failure		400	{object}	ProductResponse
// @Failure		404	{object}	ProductResponse
// @Failure		500	{object}	ProductResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/products/{id} [get]
func GetProduct(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProductResponse{
			Error: &s,
		})
		return
	}

	var product models.Product
	err = models.DB.First(&product, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProductResponse{
			Error: &s,
		})
		return
	}

	data := newProduct(c, product)
	c.JSON(http.StatusOK, ProductResponse{Data: &data})
}

// @Summary		Update product
// @Description	Update an existing product. Only values to be updated need to be specified. The sale price is derived again.
// @Tags			Products
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProductResponse
// @Failure		400		{object}	ProductResponse
// @Failure		404		{object}	ProductResponse
// @Failure		500		{object}	ProductResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			product	body		ProductEditable	true	"Product"
// @Router			/v1/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProductResponse{
			Error: &s,
		})
		return
	}

	var product models.Product
	err = models.DB.First(&product, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProductResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ProductEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProductResponse{
			Error: &s,
		})
		return
	}

	var data ProductEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProductResponse{
			Error: &s,
		})
		return
	}

	// Update hooks only see the stored values, so the full record is saved
	// again in the same transaction to validate the updated fields and to
	// derive the sale price from the updated costs
	tx := models.DB.Begin()

	err = tx.Model(&product).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		tx.Rollback()
		s := err.Error()
		c.JSON(status(err), ProductResponse{
			Error: &s,
		})
		return
	}

	err = tx.Save(&product).Error
	if err != nil {
		tx.Rollback()
		s := err.Error()
		c.JSON(status(err), ProductResponse{
			Error: &s,
		})
		return
	}

	tx.Commit()

	r := newProduct(c, product)
	c.JSON(http.StatusOK, ProductResponse{Data: &r})
}

// @Summary		Delete product
// @Description	Deletes a product
// @Tags			Products
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var product models.Product
	err = models.DB.First(&product, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&product).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
