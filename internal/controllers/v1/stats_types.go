package v1

import (
	"time"

	"github.com/control-finanzas/backend/internal/report"
)

// QueryDate is the reference day for day-scoped statistics.
type QueryDate struct {
	Date time.Time `form:"date" time_format:"2006-01-02" time_utc:"1"`
}

type WeeklyStatsResponse struct {
	Error *string             `json:"error" example:"parsing time \"2026-08-32\" as \"2006-01-02\": day out of range"` // The error, if any occurred
	Data  *report.WeeklyStats `json:"data"`                                                                            // Spending per weekday for the week
}

type CategoryStatsResponse struct {
	Error *string               `json:"error" example:"there is no database connection"` // The error, if any occurred
	Data  []report.CategoryStat `json:"data"`                                            // Lifetime spending per variable category, largest first
}
