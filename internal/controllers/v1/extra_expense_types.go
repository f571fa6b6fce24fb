package v1

import (
	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/types"
	"github.com/shopspring/decimal"
)

type ExtraExpenseEditable struct {
	Description string          `json:"description" example:"Taller del coche" default:"Gasto extra"`                                       // What the money was spent on
	Amount      decimal.Decimal `json:"amount" example:"320" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount spent
	Date        types.Date      `json:"date" example:"2026-08-19"`                                                                          // Day the expense was made
}

// newExtraExpenseEditable returns the editable fields of an existing extra
// expense so that a PATCH body can be bound on top of them.
func newExtraExpenseEditable(extraExpense models.ExtraExpense) ExtraExpenseEditable {
	return ExtraExpenseEditable{
		Description: extraExpense.Description,
		Amount:      extraExpense.Amount,
		Date:        extraExpense.Date,
	}
}

// model returns the database resource for the API representation of the editable fields
func (editable ExtraExpenseEditable) model() models.ExtraExpense {
	return models.ExtraExpense{
		ExtraExpenseCreate: models.ExtraExpenseCreate{
			Description: editable.Description,
			Amount:      editable.Amount,
			Date:        editable.Date,
		},
	}
}

type ExtraExpenseListResponse struct {
	Data       []models.ExtraExpense `json:"data"`                                                          // List of resources
	Error      *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination           `json:"pagination"`                                                    // Pagination information
}

type ExtraExpenseCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ExtraExpenseResponse `json:"data"`                                                          // List of created resources
}

func (t *ExtraExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, ExtraExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExtraExpenseResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *models.ExtraExpense `json:"data"`                                                          // The resource
}

type ExtraExpenseQueryFilter struct {
	Month  string `form:"month" filterField:"false"`  // Only extra expenses of this month, YYYY-MM
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first extra expense returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of extra expenses to return. Defaults to 50.
}
