package v1

import (
	"net/http"

	"github.com/control-finanzas/backend/internal/dispatch"
	"github.com/control-finanzas/backend/internal/httputil"
	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

func RegisterExtraExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsExtraExpenses)
		r.GET("", GetExtraExpenses)
		r.POST("", CreateExtraExpenses)
	}
	{
		r.OPTIONS("/:id", OptionsExtraExpenseDetail)
		r.GET("/:id", GetExtraExpense)
		r.PATCH("/:id", UpdateExtraExpense)
		r.DELETE("/:id", DeleteExtraExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ExtraExpenses
// @Success		204
// @Router			/v1/extra-expenses [options]
func OptionsExtraExpenses(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ExtraExpenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/extra-expenses/{id} [options]
func OptionsExtraExpenseDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.ExtraExpense{})
}

// @Summary		Create extra expenses
// @Description	Creates new extra expenses outside of all categories
// @Tags			ExtraExpenses
// @Produce		json
// @Success		201				{object}	ExtraExpenseCreateResponse
// @Failure		400				{object}	ExtraExpenseCreateResponse
// @Failure		500				{object}	ExtraExpenseCreateResponse
// @Param			extraExpenses	body		[]ExtraExpenseEditable	true	"ExtraExpenses"
// @Router			/v1/extra-expenses [post]
func CreateExtraExpenses(c *gin.Context) {
	var editables []ExtraExpenseEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExtraExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	s := http.StatusCreated
	r := ExtraExpenseCreateResponse{}

	for _, editable := range editables {
		extraExpense := editable.model()

		err = dispatch.Default().Apply(&dispatch.SubmitExtraExpense{ExtraExpense: &extraExpense})
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		r.Data = append(r.Data, ExtraExpenseResponse{Data: &extraExpense})
	}

	c.JSON(s, r)
}

// @Summary		Get extra expenses
// @Description	Returns a list of extra expenses
// @Tags			ExtraExpenses
// @Produce		json
// @Success		200	{object}	ExtraExpenseListResponse
// @Failure		400	{object}	ExtraExpenseListResponse
// @Failure		500	{object}	ExtraExpenseListResponse
// @Router			/v1/extra-expenses [get]
// @Param			month	query	string	false	"Only extra expenses of this month, YYYY-MM"
// @Param			offset	query	uint	false	"The offset of the first extra expense returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of extra expenses to return. Defaults to 50."
func GetExtraExpenses(c *gin.Context) {
	var filter ExtraExpenseQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExtraExpenseListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("date(date) DESC, created_at DESC")

	if filter.Month != "" {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, ExtraExpenseListResponse{
				Error: &s,
			})
			return
		}

		q = q.Where("date(date) >= date(?)", month).Where("date(date) < date(?)", month.AddDate(0, 1))
	}

	// Get the total count before offset and limit
	var total int64
	err := q.Model(&models.ExtraExpense{}).Count(&total).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExtraExpenseListResponse{
			Error: &s,
		})
		return
	}

	q = q.Offset(int(filter.Offset))

	// Default to 50 extra expenses and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var extraExpenses []models.ExtraExpense
	err = q.Find(&extraExpenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExtraExpenseListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ExtraExpenseListResponse{
		Data: extraExpenses,
		Pagination: &Pagination{
			Count:  len(extraExpenses),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get extra expense
// @Description	Returns a specific extra expense
// @Tags			ExtraExpenses
// @Produce		json
// @Success		200	{object}	ExtraExpenseResponse
// @Failure		400	{object}	ExtraExpenseResponse
// @Failure		404	{object}	ExtraExpenseResponse
// @Failure		500	{object}	ExtraExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/extra-expenses/{id} [get]
func GetExtraExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExtraExpenseResponse{
			Error: &e,
		})
		return
	}

	var extraExpense models.ExtraExpense
	err = models.DB.First(&extraExpense, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExtraExpenseResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ExtraExpenseResponse{Data: &extraExpense})
}

// @Summary		Update extra expense
// @Description	Updates an existing extra expense. Only values to be updated need to be specified.
// @Tags			ExtraExpenses
// @Accept			json
// @Produce		json
// @Success		200				{object}	ExtraExpenseResponse
// @Failure		400				{object}	ExtraExpenseResponse
// @Failure		404				{object}	ExtraExpenseResponse
// @Failure		500				{object}	ExtraExpenseResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			extraExpense	body		ExtraExpenseEditable	true	"ExtraExpense"
// @Router			/v1/extra-expenses/{id} [patch]
func UpdateExtraExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExtraExpenseResponse{
			Error: &e,
		})
		return
	}

	var extraExpense models.ExtraExpense
	err = models.DB.First(&extraExpense, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExtraExpenseResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExtraExpenseEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExtraExpenseResponse{
			Error: &e,
		})
		return
	}

	data := newExtraExpenseEditable(extraExpense)
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExtraExpenseResponse{
			Error: &e,
		})
		return
	}

	update := data.model()
	update.DefaultModel = extraExpense.DefaultModel

	err = dispatch.Default().Apply(&dispatch.SubmitExtraExpense{ExtraExpense: &update, Fields: updateFields})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExtraExpenseResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.First(&extraExpense, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExtraExpenseResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ExtraExpenseResponse{Data: &extraExpense})
}

// @Summary		Delete extra expense
// @Description	Deletes an extra expense
// @Tags			ExtraExpenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/extra-expenses/{id} [delete]
func DeleteExtraExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var extraExpense models.ExtraExpense
	err = models.DB.First(&extraExpense, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = dispatch.Default().Apply(&dispatch.DeleteResource{Resource: &extraExpense})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
