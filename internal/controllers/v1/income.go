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

func RegisterIncomeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsIncomes)
		r.GET("", GetIncomes)
		r.POST("", CreateIncomes)
	}
	{
		r.OPTIONS("/:id", OptionsIncomeDetail)
		r.GET("/:id", GetIncome)
		r.PATCH("/:id", UpdateIncome)
		r.DELETE("/:id", DeleteIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes [options]
func OptionsIncomes(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [options]
func OptionsIncomeDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Income{})
}

// @Summary		Create incomes
// @Description	Creates new one-off incomes
// @Tags			Incomes
// @Produce		json
// @Success		201		{object}	IncomeCreateResponse
// @Failure		400		{object}	IncomeCreateResponse
// @Failure		500		{object}	IncomeCreateResponse
// @Param			incomes	body		[]IncomeEditable	true	"Incomes"
// @Router			/v1/incomes [post]
func CreateIncomes(c *gin.Context) {
	var editables []IncomeEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	s := http.StatusCreated
	r := IncomeCreateResponse{}

	for _, editable := range editables {
		income := editable.model()

		err = dispatch.Default().Apply(&dispatch.SubmitIncome{Income: &income})
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		r.Data = append(r.Data, IncomeResponse{Data: &income})
	}

	c.JSON(s, r)
}

// @Summary		Get incomes
// @Description	Returns a list of one-off incomes
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeListResponse
// @Failure		400	{object}	IncomeListResponse
// @Failure		500	{object}	IncomeListResponse
// @Router			/v1/incomes [get]
// @Param			month	query	string	false	"Only incomes of this month, YYYY-MM"
// @Param			offset	query	uint	false	"The offset of the first income returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of incomes to return. Defaults to 50."
func GetIncomes(c *gin.Context) {
	var filter IncomeQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, IncomeListResponse{
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
			c.JSON(http.StatusBadRequest, IncomeListResponse{
				Error: &s,
			})
			return
		}

		q = q.Where("date(date) >= date(?)", month).Where("date(date) < date(?)", month.AddDate(0, 1))
	}

	// Get the total count before offset and limit
	var total int64
	err := q.Model(&models.Income{}).Count(&total).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &s,
		})
		return
	}

	q = q.Offset(int(filter.Offset))

	// Default to 50 incomes and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var incomes []models.Income
	err = q.Find(&incomes).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, IncomeListResponse{
		Data: incomes,
		Pagination: &Pagination{
			Count:  len(incomes),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get income
// @Description	Returns a specific one-off income
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		400	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Failure		500	{object}	IncomeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [get]
func GetIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	var income models.Income
	err = models.DB.First(&income, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, IncomeResponse{Data: &income})
}

// @Summary		Update income
// @Description	Updates an existing one-off income. Only values to be updated need to be specified.
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		404		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/incomes/{id} [patch]
func UpdateIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	var income models.Income
	err = models.DB.First(&income, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, IncomeEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	data := newIncomeEditable(income)
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	update := data.model()
	update.DefaultModel = income.DefaultModel

	err = dispatch.Default().Apply(&dispatch.SubmitIncome{Income: &update, Fields: updateFields})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.First(&income, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, IncomeResponse{Data: &income})
}

// @Summary		Delete income
// @Description	Deletes a one-off income
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [delete]
func DeleteIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var income models.Income
	err = models.DB.First(&income, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = dispatch.Default().Apply(&dispatch.DeleteResource{Resource: &income})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
