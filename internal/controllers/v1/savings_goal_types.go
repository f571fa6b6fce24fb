package v1

import (
	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/report"
	"github.com/shopspring/decimal"
)

type SavingsGoalEditable struct {
	Name    string          `json:"name" example:"Vacaciones" default:""`                                                                // Name of the goal
	Target  decimal.Decimal `json:"target" example:"2000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount to save up to
	Current decimal.Decimal `json:"current" example:"450" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"`          // Amount saved so far
	Color   string          `json:"color" example:"#059669" default:""`                                                                  // Display color for the goal
}

// newSavingsGoalEditable returns the editable fields of an existing goal so
// that a PATCH body can be bound on top of them.
func newSavingsGoalEditable(goal models.SavingsGoal) SavingsGoalEditable {
	return SavingsGoalEditable{
		Name:    goal.Name,
		Target:  goal.Target,
		Current: goal.Current,
		Color:   goal.Color,
	}
}

// model returns the database resource for the API representation of the editable fields
func (editable SavingsGoalEditable) model() models.SavingsGoal {
	return models.SavingsGoal{
		SavingsGoalCreate: models.SavingsGoalCreate{
			Name:    editable.Name,
			Target:  editable.Target,
			Current: editable.Current,
			Color:   editable.Color,
		},
	}
}

type SavingsGoalListResponse struct {
	Data  *report.SavingsOverview `json:"data"`                                                          // All goals with the total saved
	Error *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SavingsGoalCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []SavingsGoalResponse `json:"data"`                                                          // List of created resources
}

func (t *SavingsGoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, SavingsGoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SavingsGoalResponse struct {
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *models.SavingsGoal `json:"data"`                                                          // The resource
}

// ContributionEditable is the request body for adding money to a goal.
type ContributionEditable struct {
	Amount decimal.Decimal `json:"amount" example:"50" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount to add to the saved amount
}
