package models_test

import (
	"github.com/energy-monitoring/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestEnergyRecordRoundsValue() {
	category := suite.createTestCategory(models.Category{})
	subCategory := suite.createTestSubCategory(models.SubCategory{CategoryID: category.ID})

	record := suite.createTestRecord(2024, "1200.755", subCategory)
	assert.True(suite.T(), decimal.RequireFromString("1200.76").Equal(record.ValueKWh), "Value is %s", record.ValueKWh)

	stored, err := suite.store.Record(ctx(), record.ID)
	suite.Require().Nil(err)
	assert.True(suite.T(), decimal.RequireFromString("1200.76").Equal(stored.ValueKWh), "Stored value is %s", stored.ValueKWh)
}

func (suite *TestSuiteStandard) TestEnergyRecordIntegrity() {
	solar := suite.createTestCategory(models.Category{Name: "Solar"})
	wind := suite.createTestCategory(models.Category{Name: "Wind"})
	pv := suite.createTestSubCategory(models.SubCategory{Name: "PV", CategoryID: solar.ID})

	tests := []struct {
		name          string
		categoryID    uuid.UUID
		subCategoryID uuid.UUID
		err           error
	}{
		{"Matching category", solar.ID, pv.ID, nil},
		{"Subcategory of other category", wind.ID, pv.ID, models.ErrSubCategoryMismatch},
		{"Nonexistent subcategory", solar.ID, uuid.New(), models.ErrResourceNotFound},
		{"Nonexistent category", uuid.New(), pv.ID, models.ErrSubCategoryMismatch},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := models.DB.Create(&models.EnergyRecord{
				Year:          2023,
				ValueKWh:      decimal.NewFromInt(10),
				CategoryID:    tt.categoryID,
				SubCategoryID: tt.subCategoryID,
			}).Error

			if tt.err == nil {
				assert.Nil(suite.T(), err)
				return
			}
			assert.ErrorIs(suite.T(), err, tt.err)
		})
	}
}
