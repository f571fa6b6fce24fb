package v1

import (
	"net/http"

	"github.com/control-finanzas/backend/internal/dispatch"
	"github.com/control-finanzas/backend/internal/httputil"
	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

func RegisterExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsExpenses)
		r.GET("", GetExpenses)
		r.POST("", CreateExpenses)
	}
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenses(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Expense{})
}

// @Summary		Create expenses
// @Description	Creates new expenses
// @Tags			Expenses
// @Produce		json
// @Success		201			{object}	ExpenseCreateResponse
// @Failure		400			{object}	ExpenseCreateResponse
// @Failure		404			{object}	ExpenseCreateResponse
// @Failure		500			{object}	ExpenseCreateResponse
// @Param			expenses	body		[]ExpenseEditable	true	"Expenses"
// @Router			/v1/expenses [post]
func CreateExpenses(c *gin.Context) {
	var editables []ExpenseEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	s := http.StatusCreated
	r := ExpenseCreateResponse{}

	for _, editable := range editables {
		expense := editable.model()

		err = dispatch.Default().Apply(&dispatch.SubmitExpense{Expense: &expense})
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		r.Data = append(r.Data, ExpenseResponse{Data: &expense})
	}

	c.JSON(s, r)
}

// @Summary		Get expenses
// @Description	Returns a list of expenses
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Router			/v1/expenses [get]
// @Param			category	query	string	false	"Filter by category ID"
// @Param			month		query	string	false	"Only expenses of this month, YYYY-MM"
// @Param			description	query	string	false	"Glob match on the description, e.g. Super*"
// @Param			offset		query	uint	false	"The offset of the first expense returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of expenses to return. Defaults to 50."
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := models.DB.
		Order("date(date) DESC, created_at DESC").
		Where(&where, queryFields...)

	if filter.Month != "" {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, ExpenseListResponse{
				Error: &s,
			})
			return
		}

		q = q.Where("date(date) >= date(?)", month).Where("date(date) < date(?)", month.AddDate(0, 1))
	}

	var expenses []models.Expense
	err := q.Find(&expenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	// The description matching supports globs, which SQLite does not.
	// Filtering and pagination therefore happen here.
	if slices.Contains(setFields, "Description") {
		matching := make([]models.Expense, 0, len(expenses))
		for _, expense := range expenses {
			if glob.Glob(filter.Description, expense.Description) {
				matching = append(matching, expense)
			}
		}
		expenses = matching
	}

	total := int64(len(expenses))

	if filter.Offset < uint(len(expenses)) {
		expenses = expenses[filter.Offset:]
	} else {
		expenses = []models.Expense{}
	}

	// Default to 50 expenses and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	if limit >= 0 && len(expenses) > limit {
		expenses = expenses[:limit]
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: expenses,
		Pagination: &Pagination{
			Count:  len(expenses),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// @Summary		Update expense
// @Description	Updates an existing expense. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	data := newExpenseEditable(expense)
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	update := data.model()
	update.DefaultModel = expense.DefaultModel

	err = dispatch.Default().Apply(&dispatch.SubmitExpense{Expense: &update, Fields: updateFields})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.First(&expense, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = dispatch.Default().Apply(&dispatch.DeleteResource{Resource: &expense})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
