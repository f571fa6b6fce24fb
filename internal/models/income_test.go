package models_test

import (
	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestIncomeDefaultDescription() {
	income := suite.createTestIncome(models.Income{IncomeCreate: models.IncomeCreate{
		Amount: decimal.NewFromFloat(150),
		Date:   types.NewDate(2026, 8, 2),
	}})

	assert.Equal(suite.T(), "Ingreso extra", income.Description)
}

func (suite *TestSuiteStandard) TestIncomeDateRequired() {
	income := models.Income{IncomeCreate: models.IncomeCreate{
		Amount: decimal.NewFromFloat(150),
	}}

	err := models.DB.Create(&income).Error
	assert.ErrorIs(suite.T(), err, models.ErrIncomeDateNotSet)
}

func (suite *TestSuiteStandard) TestIncomeAmountMustBePositive() {
	income := models.Income{IncomeCreate: models.IncomeCreate{
		Amount: decimal.NewFromFloat(-150),
		Date:   types.NewDate(2026, 8, 2),
	}}

	err := models.DB.Create(&income).Error
	assert.ErrorIs(suite.T(), err, models.ErrIncomeAmountNotPositive)
}

func (suite *TestSuiteStandard) TestExtraExpenseDefaultDescription() {
	extraExpense := suite.createTestExtraExpense(models.ExtraExpense{ExtraExpenseCreate: models.ExtraExpenseCreate{
		Amount: decimal.NewFromFloat(320),
		Date:   types.NewDate(2026, 8, 19),
	}})

	assert.Equal(suite.T(), "Gasto extra", extraExpense.Description)
}

func (suite *TestSuiteStandard) TestExtraExpenseDateRequired() {
	extraExpense := models.ExtraExpense{ExtraExpenseCreate: models.ExtraExpenseCreate{
		Amount: decimal.NewFromFloat(320),
	}}

	err := models.DB.Create(&extraExpense).Error
	assert.ErrorIs(suite.T(), err, models.ErrExpenseDateNotSet)
}

func (suite *TestSuiteStandard) TestExtraExpenseAmountMustBePositive() {
	extraExpense := models.ExtraExpense{ExtraExpenseCreate: models.ExtraExpenseCreate{
		Amount: decimal.Zero,
		Date:   types.NewDate(2026, 8, 19),
	}}

	err := models.DB.Create(&extraExpense).Error
	assert.ErrorIs(suite.T(), err, models.ErrExpenseAmountNotPositive)
}
