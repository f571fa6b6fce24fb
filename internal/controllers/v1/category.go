package v1

import (
	"net/http"
	"time"

	"github.com/control-finanzas/backend/internal/dispatch"
	"github.com/control-finanzas/backend/internal/httputil"
	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/report"
	"github.com/control-finanzas/backend/internal/session"
	"github.com/control-finanzas/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

func RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCategories)
		r.GET("", GetCategories)
		r.POST("", CreateCategories)
	}
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.PATCH("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}
	{
		r.OPTIONS("/:id/toggle", httputil.OptionsPost)
		r.POST("/:id/toggle", ToggleCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Category{})
}

// @Summary		Create categories
// @Description	Creates new categories
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryCreateResponse
// @Failure		400			{object}	CategoryCreateResponse
// @Failure		500			{object}	CategoryCreateResponse
// @Param			categories	body		[]CategoryEditable	true	"Categories"
// @Router			/v1/categories [post]
func CreateCategories(c *gin.Context) {
	var editables []CategoryEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	s := http.StatusCreated
	r := CategoryCreateResponse{}

	for _, editable := range editables {
		category := editable.model()

		err = dispatch.Default().Apply(&dispatch.SubmitCategory{Category: &category})
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		r.Data = append(r.Data, CategoryResponse{Data: &category})
	}

	c.JSON(s, r)
}

// @Summary		Get categories
// @Description	Returns a list of categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		400	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			type	query	string	false	"Filter by type (fixed or variable)"
// @Param			offset	query	uint	false	"The offset of the first category returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of categories to return. Defaults to 50."
func GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := models.DB.
		Order("sort_order ASC, name ASC").
		Where(&where, queryFields...)

	if slices.Contains(setFields, "Name") {
		q = q.Where("name LIKE ?", "%"+filter.Name+"%")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 categories and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var categories []models.Category
	err := q.Find(&categories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data: categories,
		Pagination: &Pagination{
			Count:  len(categories),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get category
// @Description	Returns a specific category with its progress and expenses for a month
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryDetailResponse
// @Failure		400		{object}	CategoryDetailResponse
// @Failure		404		{object}	CategoryDetailResponse
// @Failure		500		{object}	CategoryDetailResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	query		string	false	"The month in YYYY-MM format. Defaults to the selected month."
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryDetailResponse{
			Error: &e,
		})
		return
	}

	var category models.Category
	err = models.DB.First(&category, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryDetailResponse{
			Error: &e,
		})
		return
	}

	month, err := queryMonth(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CategoryDetailResponse{
			Error: &e,
		})
		return
	}

	snapshot := session.Default().Snapshot(c.Request.Context(), month)
	summary := report.Summarize(snapshot)

	detail := CategoryDetail{Expenses: []models.Expense{}}
	for _, card := range summary.Categories {
		if card.ID == category.ID {
			detail.CategoryCard = card
			break
		}
	}

	// The category can be missing from the snapshot when it was created
	// after the snapshot was loaded
	if detail.CategoryCard.ID != category.ID {
		detail.CategoryCard = report.CategoryCard{Category: category}
	}

	for _, expense := range snapshot.Expenses {
		if expense.CategoryID == category.ID {
			detail.Expenses = append(detail.Expenses, expense)
		}
	}

	c.JSON(http.StatusOK, CategoryDetailResponse{Data: &detail})
}

// @Summary		Update category
// @Description	Updates an existing category. Only values to be updated need to be specified.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	var category models.Category
	err = models.DB.First(&category, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, CategoryEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch on top of the existing values
	data := newCategoryEditable(category)
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	update := data.model()
	update.DefaultModel = category.DefaultModel

	err = dispatch.Default().Apply(&dispatch.SubmitCategory{Category: &update, Fields: updateFields})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.First(&category, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &category})
}

// @Summary		Delete category
// @Description	Deletes a category together with its payments and expenses
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var category models.Category
	err = models.DB.First(&category, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = dispatch.Default().Apply(&dispatch.DeleteCategory{Category: category})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Toggle payment
// @Description	Marks a fixed category as paid or unpaid for a month
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200		{object}	ToggleResponse
// @Failure		400		{object}	ToggleResponse
// @Failure		404		{object}	ToggleResponse
// @Failure		500		{object}	ToggleResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			toggle	body		ToggleEditable	true	"Toggle"
// @Router			/v1/categories/{id}/toggle [post]
func ToggleCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ToggleResponse{
			Error: &e,
		})
		return
	}

	var data ToggleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ToggleResponse{
			Error: &e,
		})
		return
	}

	month := data.Month
	if month.IsZero() {
		month = dispatch.Default().Month()
	}

	cmd := &dispatch.ToggleCategoryPaid{
		CategoryID: uri.ID.UUID,
		Month:      month,
		Paid:       data.IsPaid,
		Today:      types.DateOf(time.Now()),
	}

	err = dispatch.Default().Apply(cmd)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ToggleResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ToggleResponse{Data: &cmd.Payment})
}

// queryMonth returns the month from the query string, falling back to the
// currently selected month.
func queryMonth(c *gin.Context) (types.Month, error) {
	var query QueryMonth
	if err := c.BindQuery(&query); err != nil {
		return types.Month{}, err
	}

	if query.Month.IsZero() {
		return dispatch.Default().Month(), nil
	}

	return types.MonthOf(query.Month), nil
}
