package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/control-finanzas/backend/internal/controllers/v1"
	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/report"
	"github.com/control-finanzas/backend/internal/types"
	"github.com/control-finanzas/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryCreate() {
	category := suite.createTestCategory(v1.CategoryEditable{
		Name:   "Alquiler",
		Type:   models.CategoryTypeFixed,
		Amount: decimal.NewFromFloat(850),
		Icon:   "🏠",
	})

	assert.Equal(suite.T(), "Alquiler", category.Data.Name)
	assert.Equal(suite.T(), models.CategoryTypeFixed, category.Data.Type)
}

func (suite *TestSuiteStandard) TestCategoryCreateInvalid() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken body", `{ broken: }`, http.StatusBadRequest},
		{"No body", "", http.StatusBadRequest},
		{"Amount zero", []v1.CategoryEditable{{Name: "Comida"}}, http.StatusBadRequest},
		{"Name missing", []v1.CategoryEditable{{Amount: decimal.NewFromFloat(10)}}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesList() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Alquiler", Type: models.CategoryTypeFixed, Amount: decimal.NewFromFloat(850), Order: 1})
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Comida", Type: models.CategoryTypeVariable, Amount: decimal.NewFromFloat(400), Order: 2})
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Ocio", Type: models.CategoryTypeVariable, Amount: decimal.NewFromFloat(150), Order: 3})

	tests := []struct {
		name  string
		url   string
		count int
	}{
		{"All", "http://example.com/v1/categories", 3},
		{"Fixed only", "http://example.com/v1/categories?type=fixed", 1},
		{"Variable only", "http://example.com/v1/categories?type=variable", 2},
		{"By name", "http://example.com/v1/categories?name=omid", 1},
		{"Limit", "http://example.com/v1/categories?limit=2", 2},
		{"Offset", "http://example.com/v1/categories?offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CategoryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesListOrder() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Ocio", Type: models.CategoryTypeVariable, Amount: decimal.NewFromFloat(150), Order: 3})
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Alquiler", Type: models.CategoryTypeFixed, Amount: decimal.NewFromFloat(850), Order: 1})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "Alquiler", response.Data[0].Name)
	assert.Equal(suite.T(), "Ocio", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestCategoryGetDetail() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Comida", Type: models.CategoryTypeVariable, Amount: decimal.NewFromFloat(400)})

	_ = suite.createTestExpense(v1.ExpenseEditable{
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(100),
		Date:       types.NewDate(2026, 8, 14),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/%s?month=2026-08", category.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryDetailResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Spent.Equal(decimal.NewFromFloat(100)), "Spent is %s", response.Data.Spent)
	assert.True(suite.T(), response.Data.Remaining.Equal(decimal.NewFromFloat(300)), "Remaining is %s", response.Data.Remaining)
	assert.Equal(suite.T(), int64(25), response.Data.Percent)
	assert.Equal(suite.T(), report.TierLow, response.Data.Tier)
	assert.True(suite.T(), response.Data.Paid)
	assert.Len(suite.T(), response.Data.Expenses, 1)
}

func (suite *TestSuiteStandard) TestCategoryGetDetailOtherMonthEmpty() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Comida", Type: models.CategoryTypeVariable, Amount: decimal.NewFromFloat(400)})

	_ = suite.createTestExpense(v1.ExpenseEditable{
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(100),
		Date:       types.NewDate(2026, 8, 14),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/%s?month=2026-09", category.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryDetailResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Spent.IsZero())
	assert.False(suite.T(), response.Data.Paid)
	assert.Len(suite.T(), response.Data.Expenses, 0)
}

func (suite *TestSuiteStandard) TestCategoryGetNonexistent() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories/4a99c31b-5f2f-4bb7-bb3a-b021d0f611dd", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryGetInvalidID() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryUpdate() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Comida", Type: models.CategoryTypeVariable, Amount: decimal.NewFromFloat(400)})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/categories/%s", category.Data.ID), `{"amount": 450}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(450)), "Amount is %s", response.Data.Amount)

	// Fields that were not part of the body are unchanged
	assert.Equal(suite.T(), "Comida", response.Data.Name)
}

func (suite *TestSuiteStandard) TestCategoryDelete() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Comida", Type: models.CategoryTypeVariable, Amount: decimal.NewFromFloat(400)})

	_ = suite.createTestExpense(v1.ExpenseEditable{
		CategoryID: category.Data.ID,
		Amount:     decimal.NewFromFloat(100),
		Date:       types.NewDate(2026, 8, 14),
	})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/categories/%s", category.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The category's expenses are deleted with it
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestCategoryToggle() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Alquiler", Type: models.CategoryTypeFixed, Amount: decimal.NewFromFloat(850)})

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/categories/%s/toggle", category.Data.ID), `{"month": "2026-08-01", "isPaid": true}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ToggleResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.IsPaid)
	assert.NotNil(suite.T(), response.Data.PaidDate)

	// Toggling off clears the paid date
	r = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/categories/%s/toggle", category.Data.ID), `{"month": "2026-08-01", "isPaid": false}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.False(suite.T(), response.Data.IsPaid)
	assert.Nil(suite.T(), response.Data.PaidDate)
}

func (suite *TestSuiteStandard) TestCategoryToggleVariable() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Comida", Type: models.CategoryTypeVariable, Amount: decimal.NewFromFloat(400)})

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/categories/%s/toggle", category.Data.ID), `{"month": "2026-08-01", "isPaid": true}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ToggleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrPaymentCategoryNotFixed.Error(), *response.Error)
}
