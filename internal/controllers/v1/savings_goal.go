package v1

import (
	"net/http"

	"github.com/control-finanzas/backend/internal/dispatch"
	"github.com/control-finanzas/backend/internal/httputil"
	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/report"
	"github.com/control-finanzas/backend/internal/session"
	"github.com/gin-gonic/gin"
)

func RegisterSavingsGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSavingsGoals)
		r.GET("", GetSavingsGoals)
		r.POST("", CreateSavingsGoals)
	}
	{
		r.OPTIONS("/:id", OptionsSavingsGoalDetail)
		r.GET("/:id", GetSavingsGoal)
		r.PATCH("/:id", UpdateSavingsGoal)
		r.DELETE("/:id", DeleteSavingsGoal)
	}
	{
		r.OPTIONS("/:id/contributions", OptionsContributions)
		r.POST("/:id/contributions", CreateContribution)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SavingsGoals
// @Success		204
// @Router			/v1/savings-goals [options]
func OptionsSavingsGoals(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SavingsGoals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-goals/{id} [options]
func OptionsSavingsGoalDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.SavingsGoal{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SavingsGoals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-goals/{id}/contributions [options]
func OptionsContributions(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var goal models.SavingsGoal
	err = models.DB.First(&goal, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create savings goals
// @Description	Creates new savings goals
// @Tags			SavingsGoals
// @Produce		json
// @Success		201		{object}	SavingsGoalCreateResponse
// @Failure		400		{object}	SavingsGoalCreateResponse
// @Failure		500		{object}	SavingsGoalCreateResponse
// @Param			goals	body		[]SavingsGoalEditable	true	"SavingsGoals"
// @Router			/v1/savings-goals [post]
func CreateSavingsGoals(c *gin.Context) {
	var editables []SavingsGoalEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	s := http.StatusCreated
	r := SavingsGoalCreateResponse{}

	for _, editable := range editables {
		goal := editable.model()

		err = dispatch.Default().Apply(&dispatch.SubmitSavingsGoal{Goal: &goal})
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		r.Data = append(r.Data, SavingsGoalResponse{Data: &goal})
	}

	c.JSON(s, r)
}

// @Summary		Get savings goals
// @Description	Returns all savings goals with their progress and the total saved
// @Tags			SavingsGoals
// @Produce		json
// @Success		200	{object}	SavingsGoalListResponse
// @Failure		500	{object}	SavingsGoalListResponse
// @Router			/v1/savings-goals [get]
func GetSavingsGoals(c *gin.Context) {
	snapshot := session.Default().Snapshot(c.Request.Context(), dispatch.Default().Month())

	overview := report.Savings(snapshot.Goals)
	c.JSON(http.StatusOK, SavingsGoalListResponse{Data: &overview})
}

// @Summary		Get savings goal
// @Description	Returns a specific savings goal
// @Tags			SavingsGoals
// @Produce		json
// @Success		200	{object}	SavingsGoalResponse
// @Failure		400	{object}	SavingsGoalResponse
// @Failure		404	{object}	SavingsGoalResponse
// @Failure		500	{object}	SavingsGoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-goals/{id} [get]
func GetSavingsGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	var goal models.SavingsGoal
	err = models.DB.First(&goal, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SavingsGoalResponse{Data: &goal})
}

// @Summary		Update savings goal
// @Description	Updates an existing savings goal. Only values to be updated need to be specified.
// @Tags			SavingsGoals
// @Accept			json
// @Produce		json
// @Success		200		{object}	SavingsGoalResponse
// @Failure		400		{object}	SavingsGoalResponse
// @Failure		404		{object}	SavingsGoalResponse
// @Failure		500		{object}	SavingsGoalResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		SavingsGoalEditable	true	"SavingsGoal"
// @Router			/v1/savings-goals/{id} [patch]
func UpdateSavingsGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	var goal models.SavingsGoal
	err = models.DB.First(&goal, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SavingsGoalEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	data := newSavingsGoalEditable(goal)
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	update := data.model()
	update.DefaultModel = goal.DefaultModel

	err = dispatch.Default().Apply(&dispatch.SubmitSavingsGoal{Goal: &update, Fields: updateFields})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.First(&goal, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SavingsGoalResponse{Data: &goal})
}

// @Summary		Delete savings goal
// @Description	Deletes a savings goal
// @Tags			SavingsGoals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings-goals/{id} [delete]
func DeleteSavingsGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var goal models.SavingsGoal
	err = models.DB.First(&goal, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = dispatch.Default().Apply(&dispatch.DeleteResource{Resource: &goal})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Add a contribution
// @Description	Adds an amount to the saved amount of a savings goal
// @Tags			SavingsGoals
// @Accept			json
// @Produce		json
// @Success		201				{object}	SavingsGoalResponse
// @Failure		400				{object}	SavingsGoalResponse
// @Failure		404				{object}	SavingsGoalResponse
// @Failure		500				{object}	SavingsGoalResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			contribution	body		ContributionEditable	true	"Contribution"
// @Router			/v1/savings-goals/{id}/contributions [post]
func CreateContribution(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	var data ContributionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	contribute := dispatch.Contribute{GoalID: uri.ID.UUID, Amount: data.Amount}
	err = dispatch.Default().Apply(&contribute)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, SavingsGoalResponse{Data: &contribute.Goal})
}
