package v1

import (
	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/types"
	"github.com/shopspring/decimal"
)

type IncomeEditable struct {
	Description string          `json:"description" example:"Devolución hacienda" default:"Ingreso extra"`                                  // Where the money came from
	Amount      decimal.Decimal `json:"amount" example:"150" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount received
	Date        types.Date      `json:"date" example:"2026-08-02"`                                                                          // Day the income was received
}

// newIncomeEditable returns the editable fields of an existing income so
// that a PATCH body can be bound on top of them.
func newIncomeEditable(income models.Income) IncomeEditable {
	return IncomeEditable{
		Description: income.Description,
		Amount:      income.Amount,
		Date:        income.Date,
	}
}

// model returns the database resource for the API representation of the editable fields
func (editable IncomeEditable) model() models.Income {
	return models.Income{
		IncomeCreate: models.IncomeCreate{
			Description: editable.Description,
			Amount:      editable.Amount,
			Date:        editable.Date,
		},
	}
}

type IncomeListResponse struct {
	Data       []models.Income `json:"data"`                                                          // List of resources
	Error      *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination     `json:"pagination"`                                                    // Pagination information
}

type IncomeCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []IncomeResponse `json:"data"`                                                          // List of created resources
}

func (t *IncomeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, IncomeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *models.Income `json:"data"`                                                          // The resource
}

type IncomeQueryFilter struct {
	Month  string `form:"month" filterField:"false"`  // Only incomes of this month, YYYY-MM
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first income returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of incomes to return. Defaults to 50.
}
