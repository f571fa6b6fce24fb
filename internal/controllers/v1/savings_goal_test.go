package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/control-finanzas/backend/internal/controllers/v1"
	"github.com/control-finanzas/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSavingsGoalCreate() {
	goal := suite.createTestSavingsGoal(v1.SavingsGoalEditable{
		Name:    "Vacaciones",
		Target:  decimal.NewFromFloat(2000),
		Current: decimal.NewFromFloat(450),
	})

	assert.Equal(suite.T(), "Vacaciones", goal.Data.Name)
	assert.True(suite.T(), goal.Data.Current.Equal(decimal.NewFromFloat(450)))
}

func (suite *TestSuiteStandard) TestSavingsGoalCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"Broken body", `{ broken: }`},
		{"No body", ""},
		{"No name", []v1.SavingsGoalEditable{{Target: decimal.NewFromFloat(2000)}}},
		{"No target", []v1.SavingsGoalEditable{{Name: "Vacaciones"}}},
		{"Negative current", []v1.SavingsGoalEditable{{Name: "Vacaciones", Target: decimal.NewFromFloat(2000), Current: decimal.NewFromFloat(-1)}}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/savings-goals", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestSavingsGoalsOverview() {
	_ = suite.createTestSavingsGoal(v1.SavingsGoalEditable{Name: "Vacaciones", Target: decimal.NewFromFloat(2000), Current: decimal.NewFromFloat(450)})
	_ = suite.createTestSavingsGoal(v1.SavingsGoalEditable{Name: "Ordenador", Target: decimal.NewFromFloat(1200), Current: decimal.NewFromFloat(1500)})
	_ = suite.createTestSavingsGoal(v1.SavingsGoalEditable{Name: "Coche nuevo", Target: decimal.NewFromFloat(8000)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/savings-goals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SavingsGoalListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.TotalSaved.Equal(decimal.NewFromFloat(1950)), "Total saved is %s", response.Data.TotalSaved)

	if !assert.Len(suite.T(), response.Data.Goals, 3) {
		return
	}

	// Sorted by name
	assert.Equal(suite.T(), "Coche nuevo", response.Data.Goals[0].Name)
	assert.Equal(suite.T(), "Ordenador", response.Data.Goals[1].Name)
	assert.Equal(suite.T(), "Vacaciones", response.Data.Goals[2].Name)

	assert.Equal(suite.T(), int64(0), response.Data.Goals[0].Percent)

	// Saving more than the target caps the progress
	assert.Equal(suite.T(), int64(100), response.Data.Goals[1].Percent)

	assert.Equal(suite.T(), int64(23), response.Data.Goals[2].Percent)
}

func (suite *TestSuiteStandard) TestSavingsGoalUpdate() {
	goal := suite.createTestSavingsGoal(v1.SavingsGoalEditable{Name: "Vacaciones", Target: decimal.NewFromFloat(2000), Current: decimal.NewFromFloat(450)})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/savings-goals/%s", goal.Data.ID), `{"current": 800}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SavingsGoalResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Current.Equal(decimal.NewFromFloat(800)), "Current is %s", response.Data.Current)
	assert.Equal(suite.T(), "Vacaciones", response.Data.Name)
}

func (suite *TestSuiteStandard) TestSavingsGoalDelete() {
	goal := suite.createTestSavingsGoal(v1.SavingsGoalEditable{Name: "Vacaciones", Target: decimal.NewFromFloat(2000)})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/savings-goals/%s", goal.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/savings-goals/%s", goal.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestContributionCreate() {
	goal := suite.createTestSavingsGoal(v1.SavingsGoalEditable{Name: "Vacaciones", Target: decimal.NewFromFloat(2000), Current: decimal.NewFromFloat(450)})

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/savings-goals/%s/contributions", goal.Data.ID), `{"amount": 50}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.SavingsGoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Current.Equal(decimal.NewFromFloat(500)), "Current is %s", response.Data.Current)

	// Contributions accumulate
	r = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/savings-goals/%s/contributions", goal.Data.ID), `{"amount": 100}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Current.Equal(decimal.NewFromFloat(600)), "Current is %s", response.Data.Current)
}

func (suite *TestSuiteStandard) TestContributionCreateInvalid() {
	goal := suite.createTestSavingsGoal(v1.SavingsGoalEditable{Name: "Vacaciones", Target: decimal.NewFromFloat(2000)})

	tests := []struct {
		name   string
		id     string
		body   string
		status int
	}{
		{"Broken body", goal.Data.ID.String(), `{ broken: }`, http.StatusBadRequest},
		{"Zero amount", goal.Data.ID.String(), `{"amount": 0}`, http.StatusBadRequest},
		{"Negative amount", goal.Data.ID.String(), `{"amount": -50}`, http.StatusBadRequest},
		{"Unknown goal", uuid.New().String(), `{"amount": 50}`, http.StatusNotFound},
		{"Invalid ID", "not-a-uuid", `{"amount": 50}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, fmt.Sprintf("http://example.com/v1/savings-goals/%s/contributions", tt.id), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
