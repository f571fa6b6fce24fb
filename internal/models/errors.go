package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors for the individual models. They are returned by the
// model hooks before anything is written, and translated from database
// constraint violations by the callbacks in database.go.
var (
	ErrCategoryNameEmpty        = errors.New("category names must be set")
	ErrCategoryTypeInvalid      = errors.New("category types must be either fixed or variable")
	ErrCategoryAmountNotPositive = errors.New("category amounts must be larger than zero")

	ErrPaymentCategoryNotFixed = errors.New("payments can only be toggled for fixed categories")
	ErrPaymentMonthNotUnique   = errors.New("there already is a payment for this category and month")
	ErrPaymentMonthNotSet      = errors.New("payments must specify the month they are for")

	ErrExpenseCategoryNotVariable = errors.New("expenses can only be added to variable categories")
	ErrExpenseAmountNotPositive   = errors.New("expense amounts must be larger than zero")
	ErrExpenseDateNotSet          = errors.New("expenses must have a date")

	ErrIncomeAmountNotPositive = errors.New("income amounts must be larger than zero")
	ErrIncomeDateNotSet        = errors.New("incomes must have a date")

	ErrGoalNameEmpty             = errors.New("savings goal names must be set")
	ErrGoalTargetNotPositive     = errors.New("savings goal targets must be larger than zero")
	ErrGoalCurrentNegative       = errors.New("the saved amount of a savings goal cannot be negative")
	ErrContributionNotPositive   = errors.New("contributions must be larger than zero")
	ErrMonthlyIncomeNegative     = errors.New("the monthly income cannot be negative")

	ErrMonthNotSet = errors.New("the month must be set")
)
