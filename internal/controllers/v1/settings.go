package v1

import (
	"net/http"

	"github.com/control-finanzas/backend/internal/dispatch"
	"github.com/control-finanzas/backend/internal/httputil"
	"github.com/control-finanzas/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSettings)
	r.GET("", GetSettings)
	r.PATCH("", UpdateSettings)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get settings
// @Description	Returns the settings. When the monthly income was never set, it is zero.
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	SettingsResponse
// @Router			/v1/settings [get]
func GetSettings(c *gin.Context) {
	settings, err := models.LoadSettings(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: &settings})
}

// @Summary		Update settings
// @Description	Updates the monthly income
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Failure		500			{object}	SettingsResponse
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/v1/settings [patch]
func UpdateSettings(c *gin.Context) {
	var data SettingsEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	cmd := &dispatch.SetMonthlyIncome{Income: data.MonthlyIncome}
	err = dispatch.Default().Apply(cmd)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: &cmd.Settings})
}
