package v1

import (
	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/types"
	cf_uuid "github.com/control-finanzas/backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseEditable struct {
	CategoryID  uuid.UUID       `json:"categoryId" example:"8a9d6157-6d52-4a33-b7ee-49b95d119bcf"`                                            // ID of the variable category the expense belongs to
	Description string          `json:"description" example:"Supermercado" default:"Sin descripción"`                                        // What the money was spent on
	Amount      decimal.Decimal `json:"amount" example:"23.5" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`  // Amount spent
	Date        types.Date      `json:"date" example:"2026-08-14"`                                                                           // Day the expense was made
}

// newExpenseEditable returns the editable fields of an existing expense so
// that a PATCH body can be bound on top of them.
func newExpenseEditable(expense models.Expense) ExpenseEditable {
	return ExpenseEditable{
		CategoryID:  expense.CategoryID,
		Description: expense.Description,
		Amount:      expense.Amount,
		Date:        expense.Date,
	}
}

// model returns the database resource for the API representation of the editable fields
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		ExpenseCreate: models.ExpenseCreate{
			CategoryID:  editable.CategoryID,
			Description: editable.Description,
			Amount:      editable.Amount,
			Date:        editable.Date,
		},
	}
}

type ExpenseListResponse struct {
	Data       []models.Expense `json:"data"`                                                          // List of resources
	Error      *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination      `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ExpenseResponse `json:"data"`                                                          // List of created resources
}

func (t *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *models.Expense `json:"data"`                                                          // The resource
}

type ExpenseQueryFilter struct {
	CategoryID  cf_uuid.UUID `form:"category"`                        // By category ID
	Month       string       `form:"month" filterField:"false"`       // Only expenses of this month, YYYY-MM
	Description string       `form:"description" filterField:"false"` // Glob match on the description, e.g. "Super*"
	Offset      uint         `form:"offset" filterField:"false"`      // The offset of the first expense returned. Defaults to 0.
	Limit       int          `form:"limit" filterField:"false"`       // Maximum number of expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		ExpenseCreate: models.ExpenseCreate{
			CategoryID: f.CategoryID.UUID,
		},
	}
}
