package models_test

import (
	"github.com/control-finanzas/backend/internal/models"
	"github.com/control-finanzas/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTogglePaymentCreates() {
	category := suite.createTestCategory(models.Category{CategoryCreate: models.CategoryCreate{
		Name:   "Internet",
		Type:   models.CategoryTypeFixed,
		Amount: decimal.NewFromFloat(40),
	}})

	today := types.NewDate(2026, 8, 5)
	payment, err := models.TogglePayment(models.DB, category.ID, types.NewMonth(2026, 8), true, today)
	require.Nil(suite.T(), err)

	assert.True(suite.T(), payment.IsPaid)
	require.NotNil(suite.T(), payment.PaidDate)
	assert.Equal(suite.T(), today, *payment.PaidDate)
	assert.Equal(suite.T(), types.NewMonth(2026, 8), payment.Month)
}

func (suite *TestSuiteStandard) TestTogglePaymentTwiceUpdatesSingleRow() {
	category := suite.createTestCategory(models.Category{CategoryCreate: models.CategoryCreate{
		Name:   "Alquiler",
		Type:   models.CategoryTypeFixed,
		Amount: decimal.NewFromFloat(850),
	}})

	month := types.NewMonth(2026, 8)

	first, err := models.TogglePayment(models.DB, category.ID, month, true, types.NewDate(2026, 8, 5))
	require.Nil(suite.T(), err)

	second, err := models.TogglePayment(models.DB, category.ID, month, false, types.NewDate(2026, 8, 6))
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), first.ID, second.ID)
	assert.False(suite.T(), second.IsPaid)
	assert.Nil(suite.T(), second.PaidDate)

	var payments []models.Payment
	require.Nil(suite.T(), models.DB.Find(&payments).Error)
	assert.Len(suite.T(), payments, 1)
}

func (suite *TestSuiteStandard) TestTogglePaymentMonthsIndependent() {
	category := suite.createTestCategory(models.Category{CategoryCreate: models.CategoryCreate{
		Name:   "Gimnasio",
		Type:   models.CategoryTypeFixed,
		Amount: decimal.NewFromFloat(35),
	}})

	_, err := models.TogglePayment(models.DB, category.ID, types.NewMonth(2026, 7), true, types.NewDate(2026, 7, 3))
	require.Nil(suite.T(), err)

	payment, err := models.TogglePayment(models.DB, category.ID, types.NewMonth(2026, 8), false, types.NewDate(2026, 8, 3))
	require.Nil(suite.T(), err)
	assert.False(suite.T(), payment.IsPaid)

	var payments []models.Payment
	require.Nil(suite.T(), models.DB.Find(&payments).Error)
	assert.Len(suite.T(), payments, 2)
}

func (suite *TestSuiteStandard) TestTogglePaymentVariableCategory() {
	category := suite.createTestCategory(models.Category{CategoryCreate: models.CategoryCreate{
		Name:   "Comida",
		Type:   models.CategoryTypeVariable,
		Amount: decimal.NewFromFloat(400),
	}})

	_, err := models.TogglePayment(models.DB, category.ID, types.NewMonth(2026, 8), true, types.NewDate(2026, 8, 5))
	assert.ErrorIs(suite.T(), err, models.ErrPaymentCategoryNotFixed)
}

func (suite *TestSuiteStandard) TestTogglePaymentCategoryNotFound() {
	_, err := models.TogglePayment(models.DB, uuid.New(), types.NewMonth(2026, 8), true, types.NewDate(2026, 8, 5))
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestPaymentMonthUnique() {
	category := suite.createTestCategory(models.Category{CategoryCreate: models.CategoryCreate{
		Name:   "Luz",
		Type:   models.CategoryTypeFixed,
		Amount: decimal.NewFromFloat(90),
	}})

	payment := models.Payment{PaymentCreate: models.PaymentCreate{
		CategoryID: category.ID,
		Month:      types.NewMonth(2026, 8),
	}}
	require.Nil(suite.T(), models.DB.Create(&payment).Error)

	duplicate := models.Payment{PaymentCreate: models.PaymentCreate{
		CategoryID: category.ID,
		Month:      types.NewMonth(2026, 8),
	}}
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrPaymentMonthNotUnique)
}

func (suite *TestSuiteStandard) TestPaymentMonthRequired() {
	category := suite.createTestCategory(models.Category{CategoryCreate: models.CategoryCreate{
		Name:   "Agua",
		Type:   models.CategoryTypeFixed,
		Amount: decimal.NewFromFloat(30),
	}})

	payment := models.Payment{PaymentCreate: models.PaymentCreate{CategoryID: category.ID}}
	err := models.DB.Create(&payment).Error
	assert.ErrorIs(suite.T(), err, models.ErrPaymentMonthNotSet)
}
