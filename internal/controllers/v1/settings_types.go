package v1

import (
	"github.com/control-finanzas/backend/internal/models"
	"github.com/shopspring/decimal"
)

type SettingsEditable struct {
	MonthlyIncome decimal.Decimal `json:"monthlyIncome" example:"2000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Regular income per month
}

type SettingsResponse struct {
	Error *string          `json:"error" example:"the monthly income must not be negative"` // The error, if any occurred
	Data  *models.Settings `json:"data"`                                                    // The resource
}
