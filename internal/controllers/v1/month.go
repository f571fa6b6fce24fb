package v1

import (
	"net/http"

	"github.com/control-finanzas/backend/internal/dispatch"
	"github.com/control-finanzas/backend/internal/httputil"
	"github.com/control-finanzas/backend/internal/report"
	"github.com/control-finanzas/backend/internal/session"
	"github.com/gin-gonic/gin"
)

func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMonths)
	r.GET("", GetMonth)
	r.POST("", SelectMonth)

	r.OPTIONS("/profile", OptionsMonthProfile)
	r.GET("/profile", GetMonthProfile)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonths(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months/profile [options]
func OptionsMonthProfile(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get month
// @Description	Returns the dashboard for a month with the budget, spending and per-category progress
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthResponse
// @Failure		400	{object}	MonthResponse
// @Failure		500	{object}	MonthResponse
// @Param			month	query	string	false	"The month in YYYY-MM format. Defaults to the selected month."
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	month, err := queryMonth(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &e,
		})
		return
	}

	snapshot := session.Default().Snapshot(c.Request.Context(), month)
	summary := report.Summarize(snapshot)

	c.JSON(http.StatusOK, MonthResponse{Data: &summary})
}

// @Summary		Select month
// @Description	Selects the month that month-scoped endpoints default to
// @Tags			Months
// @Accept			json
// @Produce		json
// @Success		200		{object}	MonthSelectResponse
// @Failure		400		{object}	MonthSelectResponse
// @Param			month	body		MonthSelectEditable	true	"Month"
// @Router			/v1/months [post]
func SelectMonth(c *gin.Context) {
	var data MonthSelectEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthSelectResponse{
			Error: &e,
		})
		return
	}

	err = dispatch.Default().Apply(&dispatch.ChangeMonth{Month: data.Month})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthSelectResponse{
			Error: &e,
		})
		return
	}

	month := dispatch.Default().Month()
	c.JSON(http.StatusOK, MonthSelectResponse{Data: &month})
}

// @Summary		Get month profile
// @Description	Returns the income and expense balance for a month
// @Tags			Months
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		400	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Param			month	query	string	false	"The month in YYYY-MM format. Defaults to the selected month."
// @Router			/v1/months/profile [get]
func GetMonthProfile(c *gin.Context) {
	month, err := queryMonth(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProfileResponse{
			Error: &e,
		})
		return
	}

	snapshot := session.Default().Snapshot(c.Request.Context(), month)
	profile := report.ProfileFor(snapshot)

	c.JSON(http.StatusOK, ProfileResponse{Data: &profile})
}
