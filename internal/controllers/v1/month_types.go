package v1

import (
	"github.com/control-finanzas/backend/internal/report"
	"github.com/control-finanzas/backend/internal/types"
)

type MonthResponse struct {
	Error *string                  `json:"error" example:"parsing time \"2026-13\" as \"2006-01\": month out of range"` // The error, if any occurred
	Data  *report.DashboardSummary `json:"data"`                                                                       // The dashboard for the month
}

type ProfileResponse struct {
	Error *string         `json:"error" example:"parsing time \"2026-13\" as \"2006-01\": month out of range"` // The error, if any occurred
	Data  *report.Profile `json:"data"`                                                                       // The income and expense balance for the month
}

// MonthSelectEditable is the request body for selecting a month.
type MonthSelectEditable struct {
	Month types.Month `json:"month" example:"2026-08-01T00:00:00.000000Z"` // The month to select
}

type MonthSelectResponse struct {
	Error *string      `json:"error" example:"the month must be set"` // The error, if any occurred
	Data  *types.Month `json:"data"`                                  // The now selected month
}
