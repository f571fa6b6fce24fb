package v1

import (
	"net/http"
	"time"

	"github.com/control-finanzas/backend/internal/httputil"
	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/report"
	"github.com/control-finanzas/backend/internal/session"
	"github.com/control-finanzas/backend/internal/types"
	"github.com/gin-gonic/gin"
)

func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/weekly", OptionsStatsWeekly)
	r.GET("/weekly", GetWeeklyStats)

	r.OPTIONS("/categories", OptionsStatsCategories)
	r.GET("/categories", GetCategoryStats)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Stats
// @Success		204
// @Router			/v1/stats/weekly [options]
func OptionsStatsWeekly(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Stats
// @Success		204
// @Router			/v1/stats/categories [options]
func OptionsStatsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get weekly stats
// @Description	Returns the variable spending of the week a day falls into, bucketed per weekday
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	WeeklyStatsResponse
// @Failure		400	{object}	WeeklyStatsResponse
// @Failure		500	{object}	WeeklyStatsResponse
// @Param			date	query	string	false	"The reference day in YYYY-MM-DD format. Defaults to today."
// @Router			/v1/stats/weekly [get]
func GetWeeklyStats(c *gin.Context) {
	var query QueryDate
	if err := c.BindQuery(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, WeeklyStatsResponse{
			Error: &e,
		})
		return
	}

	day := query.Date
	if day.IsZero() {
		day = time.Now()
	}
	today := types.DateOf(day)

	snapshot := session.Default().Snapshot(c.Request.Context(), types.MonthOf(day))
	stats := report.Weekly(snapshot, today)

	c.JSON(http.StatusOK, WeeklyStatsResponse{Data: &stats})
}

// @Summary		Get category stats
// @Description	Returns the lifetime spending per variable category, largest total first
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	CategoryStatsResponse
// @Failure		500	{object}	CategoryStatsResponse
// @Router			/v1/stats/categories [get]
func GetCategoryStats(c *gin.Context) {
	var categories []models.Category
	err := models.DB.Order("sort_order ASC, name ASC").Find(&categories).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryStatsResponse{
			Error: &e,
		})
		return
	}

	var expenses []models.Expense
	err = models.DB.Find(&expenses).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryStatsResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryStatsResponse{Data: report.CategoryStatistics(categories, expenses)})
}
