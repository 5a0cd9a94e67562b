package energy_test

import (
	"github.com/energy-monitoring/backend/internal/energy"
	"github.com/energy-monitoring/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateRecord() {
	solar, subs := suite.createCategory("Solar", "PV")

	record := suite.createRecord(2024, "4500.505", subs["PV"])
	assert.Equal(suite.T(), 2024, record.Year)
	assert.Equal(suite.T(), solar.ID, record.CategoryID)
	assert.Equal(suite.T(), "Solar", record.Category.Name)
	assert.Equal(suite.T(), "PV", record.SubCategory.Name)
	suite.assertDecimal("4500.51", record.ValueKWh)
}

func (suite *TestSuiteStandard) TestCreateRecordFails() {
	solar, solarSubs := suite.createCategory("Solar", "PV")
	_, windSubs := suite.createCategory("Wind", "Onshore")

	tests := []struct {
		name  string
		input energy.RecordInput
		err   error
	}{
		{"Year too small", energy.RecordInput{Year: 1899, ValueKWh: decimal.NewFromInt(1), CategoryID: solar.ID, SubCategoryID: solarSubs["PV"].ID}, energy.ErrYearOutOfRange},
		{"Year too large", energy.RecordInput{Year: 2101, ValueKWh: decimal.NewFromInt(1), CategoryID: solar.ID, SubCategoryID: solarSubs["PV"].ID}, energy.ErrYearOutOfRange},
		{"Zero value", energy.RecordInput{Year: 2023, ValueKWh: decimal.Zero, CategoryID: solar.ID, SubCategoryID: solarSubs["PV"].ID}, energy.ErrValueNotPositive},
		{"Negative value", energy.RecordInput{Year: 2023, ValueKWh: decimal.NewFromInt(-5), CategoryID: solar.ID, SubCategoryID: solarSubs["PV"].ID}, energy.ErrValueNotPositive},
		{"Value rounds to zero", energy.RecordInput{Year: 2023, ValueKWh: decimal.RequireFromString("0.004"), CategoryID: solar.ID, SubCategoryID: solarSubs["PV"].ID}, energy.ErrValueNotPositive},
		{"Value too large", energy.RecordInput{Year: 2023, ValueKWh: decimal.New(1, 12), CategoryID: solar.ID, SubCategoryID: solarSubs["PV"].ID}, energy.ErrValueTooLarge},
		{"Category not found", energy.RecordInput{Year: 2023, ValueKWh: decimal.NewFromInt(1), CategoryID: uuid.New(), SubCategoryID: solarSubs["PV"].ID}, models.ErrResourceNotFound},
		{"Subcategory not found", energy.RecordInput{Year: 2023, ValueKWh: decimal.NewFromInt(1), CategoryID: solar.ID, SubCategoryID: uuid.New()}, models.ErrResourceNotFound},
		{"Subcategory of other category", energy.RecordInput{Year: 2023, ValueKWh: decimal.NewFromInt(1), CategoryID: solar.ID, SubCategoryID: windSubs["Onshore"].ID}, models.ErrSubCategoryMismatch},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateRecord(ctx(), tt.input)
			assert.ErrorIs(suite.T(), err, tt.err)
		})
	}

	records, err := suite.service.Records(ctx(), models.RecordFilter{})
	suite.Require().Nil(err)
	assert.Empty(suite.T(), records)
}

func (suite *TestSuiteStandard) TestCreateRecordLimits() {
	_, subs := suite.createCategory("Solar", "PV")

	for _, year := range []int{1900, 2100} {
		record := suite.createRecord(year, "999999999999.99", subs["PV"])
		suite.assertDecimal("999999999999.99", record.ValueKWh)
	}
}

func (suite *TestSuiteStandard) TestDeleteRecord() {
	_, subs := suite.createCategory("Solar", "PV")
	record := suite.createRecord(2023, "100", subs["PV"])

	deleted, err := suite.service.DeleteRecord(ctx(), uuid.New())
	suite.Require().Nil(err)
	assert.False(suite.T(), deleted)

	deleted, err = suite.service.DeleteRecord(ctx(), record.ID)
	suite.Require().Nil(err)
	assert.True(suite.T(), deleted)

	_, err = suite.service.Record(ctx(), record.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
