package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/control-finanzas/backend/internal/controllers/v1"
	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/types"
	"github.com/control-finanzas/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// seedAugust sets up a full month of data for dashboard and profile tests:
// 2000 monthly income, a paid fixed category, a variable category with one
// expense, a one-off income and a one-off expense.
func (suite *TestSuiteStandard) seedAugust() {
	suite.setMonthlyIncome(2000)

	fixed := suite.createTestCategory(v1.CategoryEditable{Name: "Alquiler", Type: models.CategoryTypeFixed, Amount: decimal.NewFromFloat(850)})
	variable := suite.createTestCategory(v1.CategoryEditable{Name: "Comida", Type: models.CategoryTypeVariable, Amount: decimal.NewFromFloat(400)})

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/categories/%s/toggle", fixed.Data.ID), `{"month": "2026-08-01", "isPaid": true}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	_ = suite.createTestExpense(v1.ExpenseEditable{CategoryID: variable.Data.ID, Amount: decimal.NewFromFloat(100), Date: types.NewDate(2026, 8, 14)})
	_ = suite.createTestIncome(v1.IncomeEditable{Amount: decimal.NewFromFloat(150), Date: types.NewDate(2026, 8, 2)})
	_ = suite.createTestExtraExpense(v1.ExtraExpenseEditable{Amount: decimal.NewFromFloat(50), Date: types.NewDate(2026, 8, 19)})
}

func (suite *TestSuiteStandard) TestMonthDashboard() {
	suite.seedAugust()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months?month=2026-08", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	data := response.Data
	assert.Equal(suite.T(), "Agosto 2026", data.Name)
	assert.True(suite.T(), data.TotalBudget.Equal(decimal.NewFromFloat(2150)), "Total budget is %s", data.TotalBudget)
	assert.True(suite.T(), data.TotalSpent.Equal(decimal.NewFromFloat(1000)), "Total spent is %s", data.TotalSpent)
	assert.True(suite.T(), data.Remaining.Equal(decimal.NewFromFloat(1150)), "Remaining is %s", data.Remaining)
	assert.Equal(suite.T(), int64(47), data.Percent)
	assert.Equal(suite.T(), 2, data.PaidCount)
	assert.Equal(suite.T(), 0, data.PendingCount)
	assert.Equal(suite.T(), 2, data.CategoryCount)
	assert.Len(suite.T(), data.Categories, 2)
}

func (suite *TestSuiteStandard) TestMonthDashboardEmptyMonth() {
	suite.seedAugust()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months?month=2026-09", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Categories and the monthly income carry over, spending does not
	assert.True(suite.T(), response.Data.TotalBudget.Equal(decimal.NewFromFloat(2000)), "Total budget is %s", response.Data.TotalBudget)
	assert.True(suite.T(), response.Data.TotalSpent.IsZero(), "Total spent is %s", response.Data.TotalSpent)
	assert.Equal(suite.T(), 0, response.Data.PaidCount)
	assert.Equal(suite.T(), 2, response.Data.PendingCount)
}

func (suite *TestSuiteStandard) TestMonthDashboardInvalidMonth() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months?month=2026-13", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestMonthProfile() {
	suite.seedAugust()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months/profile?month=2026-08", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &response)

	data := response.Data
	assert.True(suite.T(), data.MonthlyIncome.Equal(decimal.NewFromFloat(2000)), "Monthly income is %s", data.MonthlyIncome)
	assert.True(suite.T(), data.ExtraIncome.Equal(decimal.NewFromFloat(150)), "Extra income is %s", data.ExtraIncome)
	assert.True(suite.T(), data.ExtraExpenses.Equal(decimal.NewFromFloat(50)), "Extra expenses are %s", data.ExtraExpenses)
	assert.True(suite.T(), data.TotalIncome.Equal(decimal.NewFromFloat(2150)), "Total income is %s", data.TotalIncome)
	assert.True(suite.T(), data.TotalExpenses.Equal(decimal.NewFromFloat(1000)), "Total expenses are %s", data.TotalExpenses)
	assert.True(suite.T(), data.Balance.Equal(decimal.NewFromFloat(1150)), "Balance is %s", data.Balance)
}

func (suite *TestSuiteStandard) TestMonthSelect() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/months", `{"month": "2026-05-01"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthSelectResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Equal(types.NewMonth(2026, time.May)), "Selected month is %s", response.Data)

	// Month-scoped endpoints now default to the selected month
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var month v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &month)
	assert.True(suite.T(), month.Data.Month.Equal(types.NewMonth(2026, time.May)), "Month is %s", month.Data.Month)
}

func (suite *TestSuiteStandard) TestMonthSelectInvalid() {
	tests := []struct {
		name string
		body string
	}{
		{"Broken body", `{ broken: }`},
		{"No body", ""},
		{"Zero month", `{}`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/months", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}
