package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/control-finanzas/backend/internal/controllers/v1"
	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/types"
	"github.com/control-finanzas/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) expenseTestCategory() v1.CategoryResponse {
	return suite.createTestCategory(v1.CategoryEditable{
		Name:   "Comida",
		Type:   models.CategoryTypeVariable,
		Amount: decimal.NewFromFloat(400),
	})
}

func (suite *TestSuiteStandard) TestExpenseCreate() {
	category := suite.expenseTestCategory()

	expense := suite.createTestExpense(v1.ExpenseEditable{
		CategoryID:  category.Data.ID,
		Description: "Supermercado",
		Amount:      decimal.NewFromFloat(23.5),
		Date:        types.NewDate(2026, 8, 14),
	})

	assert.Equal(suite.T(), "Supermercado", expense.Data.Description)
	assert.Equal(suite.T(), category.Data.ID, expense.Data.CategoryID)
}

func (suite *TestSuiteStandard) TestExpenseCreateInvalid() {
	category := suite.expenseTestCategory()

	fixed := suite.createTestCategory(v1.CategoryEditable{
		Name:   "Alquiler",
		Type:   models.CategoryTypeFixed,
		Amount: decimal.NewFromFloat(850),
	})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken body", `{ broken: }`, http.StatusBadRequest},
		{"No amount", []v1.ExpenseEditable{{CategoryID: category.Data.ID, Date: types.NewDate(2026, 8, 14)}}, http.StatusBadRequest},
		{"No date", []v1.ExpenseEditable{{CategoryID: category.Data.ID, Amount: decimal.NewFromFloat(10)}}, http.StatusBadRequest},
		{"Fixed category", []v1.ExpenseEditable{{CategoryID: fixed.Data.ID, Amount: decimal.NewFromFloat(10), Date: types.NewDate(2026, 8, 14)}}, http.StatusBadRequest},
		{"Unknown category", []v1.ExpenseEditable{{CategoryID: uuid.New(), Amount: decimal.NewFromFloat(10), Date: types.NewDate(2026, 8, 14)}}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesList() {
	category := suite.expenseTestCategory()

	_ = suite.createTestExpense(v1.ExpenseEditable{CategoryID: category.Data.ID, Description: "Supermercado", Amount: decimal.NewFromFloat(40), Date: types.NewDate(2026, 8, 3)})
	_ = suite.createTestExpense(v1.ExpenseEditable{CategoryID: category.Data.ID, Description: "Cafetería", Amount: decimal.NewFromFloat(4.50), Date: types.NewDate(2026, 8, 20)})
	_ = suite.createTestExpense(v1.ExpenseEditable{CategoryID: category.Data.ID, Description: "Supermercado", Amount: decimal.NewFromFloat(55), Date: types.NewDate(2026, 7, 28)})

	tests := []struct {
		name  string
		url   string
		count int
	}{
		{"All", "http://example.com/v1/expenses", 3},
		{"August", "http://example.com/v1/expenses?month=2026-08", 2},
		{"July", "http://example.com/v1/expenses?month=2026-07", 1},
		{"By category", fmt.Sprintf("http://example.com/v1/expenses?category=%s", category.Data.ID), 3},
		{"Unknown category", fmt.Sprintf("http://example.com/v1/expenses?category=%s", uuid.New()), 0},
		{"Glob match", "http://example.com/v1/expenses?description=Super*", 2},
		{"Glob no match", "http://example.com/v1/expenses?description=Restaurante*", 0},
		{"Limit", "http://example.com/v1/expenses?limit=2", 2},
		{"Offset", "http://example.com/v1/expenses?offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesListNewestFirst() {
	category := suite.expenseTestCategory()

	_ = suite.createTestExpense(v1.ExpenseEditable{CategoryID: category.Data.ID, Amount: decimal.NewFromFloat(40), Date: types.NewDate(2026, 8, 3)})
	_ = suite.createTestExpense(v1.ExpenseEditable{CategoryID: category.Data.ID, Amount: decimal.NewFromFloat(4.50), Date: types.NewDate(2026, 8, 20)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data[0].Amount.Equal(decimal.NewFromFloat(4.50)), "First expense is %s", response.Data[0].Amount)
}

func (suite *TestSuiteStandard) TestExpensesListInvalidMonth() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?month=not-a-month", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpenseUpdate() {
	category := suite.expenseTestCategory()

	expense := suite.createTestExpense(v1.ExpenseEditable{
		CategoryID:  category.Data.ID,
		Description: "Supermercado",
		Amount:      decimal.NewFromFloat(23.5),
		Date:        types.NewDate(2026, 8, 14),
	})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/expenses/%s", expense.Data.ID), `{"amount": 42}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(42)), "Amount is %s", response.Data.Amount)
	assert.Equal(suite.T(), "Supermercado", response.Data.Description)
}

func (suite *TestSuiteStandard) TestExpenseDelete() {
	category := suite.expenseTestCategory()

	expense := suite.createTestExpense(v1.ExpenseEditable{
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(23.5),
		Date:       types.NewDate(2026, 8, 14),
	})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses/%s", expense.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses/%s", expense.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
