package v1

import (
	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/report"
	"github.com/control-finanzas/backend/internal/types"
	"github.com/shopspring/decimal"
)

type CategoryEditable struct {
	Name   string              `json:"name" example:"Alquiler" default:""`                                                                  // Name of the category
	Type   models.CategoryType `json:"type" example:"fixed" default:"variable"`                                                             // Whether the category is a fixed obligation or variable spending
	Amount decimal.Decimal     `json:"amount" example:"850" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"`   // Budgeted amount per month
	Icon   string              `json:"icon" example:"🏠" default:""`                                                                         // Icon shown for the category
	Color  string              `json:"color" example:"#4f46e5" default:""`                                                                  // Display color for the category
	Order  int                 `json:"order" example:"1" default:"0"`                                                                       // Position of the category in lists
}

// newCategoryEditable returns the editable fields of an existing category.
// Binding a PATCH body on top of it leaves everything the body does not
// mention unchanged, so the model hooks always see a complete resource.
func newCategoryEditable(category models.Category) CategoryEditable {
	return CategoryEditable{
		Name:   category.Name,
		Type:   category.Type,
		Amount: category.Amount,
		Icon:   category.Icon,
		Color:  category.Color,
		Order:  category.Order,
	}
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		CategoryCreate: models.CategoryCreate{
			Name:   editable.Name,
			Type:   editable.Type,
			Amount: editable.Amount,
			Icon:   editable.Icon,
			Color:  editable.Color,
			Order:  editable.Order,
		},
	}
}

type CategoryListResponse struct {
	Data       []models.Category `json:"data"`                                                          // List of resources
	Error      *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination       `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryResponse `json:"data"`                                                          // List of created resources
}

func (t *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *models.Category `json:"data"`                                                          // The resource
}

// CategoryDetail is a category with its progress and expenses for one month.
type CategoryDetail struct {
	report.CategoryCard
	Expenses []models.Expense `json:"expenses"` // The category's expenses in the month, newest first
}

type CategoryDetailResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *CategoryDetail `json:"data"`                                                          // The resource
}

type CategoryQueryFilter struct {
	Name   string              `form:"name" filterField:"false"` // By name
	Type   models.CategoryType `form:"type"`                     // Fixed or variable categories
	Offset uint                `form:"offset" filterField:"false"` // The offset of the first category returned. Defaults to 0.
	Limit  int                 `form:"limit" filterField:"false"`  // Maximum number of categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	// This does not set the name since partial matching
	// is handled in the controller function
	return models.Category{
		CategoryCreate: models.CategoryCreate{
			Type: f.Type,
		},
	}
}

// ToggleEditable is the request body for toggling a payment.
type ToggleEditable struct {
	Month  types.Month `json:"month" example:"2026-08-01T00:00:00.000000Z"` // The month to toggle the payment for. Defaults to the selected month.
	IsPaid bool        `json:"isPaid" example:"true"`                       // The new paid state
}

type ToggleResponse struct {
	Error *string         `json:"error" example:"payments can only be toggled for fixed categories"` // The error, if any occurred
	Data  *models.Payment `json:"data"`                                                              // The resulting payment
}
