package energy_test

import (
	"sync"

	"github.com/energy-monitoring/backend/internal/energy"
	"github.com/energy-monitoring/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateCategoryConflict() {
	first, err := suite.service.CreateCategory(ctx(), "Solar", "")
	suite.Require().Nil(err)
	suite.Require().True(first.Created)

	tests := []string{
		" solar ",
		"SOLAR",
		"sOlAr",
		"\tSolar\n",
	}

	for _, name := range tests {
		suite.Run(name, func() {
			result, err := suite.service.CreateCategory(ctx(), name, "")
			suite.Require().Nil(err)
			assert.True(suite.T(), result.Conflict(), "Creating %q must conflict with Solar", name)
			assert.Equal(suite.T(), first.Resource.ID, result.Resource.ID)
		})
	}

	categories, err := suite.service.Categories(ctx())
	suite.Require().Nil(err)
	assert.Len(suite.T(), categories, 1)
}

func (suite *TestSuiteStandard) TestCreateCategoryWhitespaceVariants() {
	first, err := suite.service.CreateCategory(ctx(), "Autres EnR", "")
	suite.Require().Nil(err)
	assert.Equal(suite.T(), "Autres EnR", first.Resource.Name)

	second, err := suite.service.CreateCategory(ctx(), "  autres    enr ", "")
	suite.Require().Nil(err)
	assert.True(suite.T(), second.Conflict())
}

func (suite *TestSuiteStandard) TestCreateCategoryStoresNormalizedName() {
	result, err := suite.service.CreateCategory(ctx(), "  Biomasse   solide ", " Bois et bagasse ")
	suite.Require().Nil(err)
	suite.Require().True(result.Created)

	category, err := suite.service.Category(ctx(), result.Resource.ID)
	suite.Require().Nil(err)
	assert.Equal(suite.T(), "Biomasse solide", category.Name)
	assert.Equal(suite.T(), "Bois et bagasse", category.Description)
}

func (suite *TestSuiteStandard) TestCreateCategoryConcurrent() {
	const creators = 8

	var wg sync.WaitGroup
	results := make([]energy.CreateResult[models.Category], creators)
	errs := make([]error, creators)

	for i := 0; i < creators; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := "Wind"
			if i%2 == 1 {
				name = " wind "
			}
			results[i], errs[i] = suite.service.CreateCategory(ctx(), name, "")
		}(i)
	}
	wg.Wait()

	var created int
	for i := range results {
		suite.Require().Nil(errs[i])
		if results[i].Created {
			created++
		}
	}
	assert.Equal(suite.T(), 1, created, "Exactly one creator must succeed")

	categories, err := suite.service.Categories(ctx())
	suite.Require().Nil(err)
	suite.Require().Len(categories, 1)

	for _, r := range results {
		assert.Equal(suite.T(), categories[0].ID, r.Resource.ID)
	}
}

func (suite *TestSuiteStandard) TestCreateSubCategoryScopedToCategory() {
	solar, err := suite.service.CreateCategory(ctx(), "Solar", "")
	suite.Require().Nil(err)
	wind, err := suite.service.CreateCategory(ctx(), "Wind", "")
	suite.Require().Nil(err)

	first, err := suite.service.CreateSubCategory(ctx(), "Offshore", "", solar.Resource.ID)
	suite.Require().Nil(err)
	assert.True(suite.T(), first.Created)

	duplicate, err := suite.service.CreateSubCategory(ctx(), " OFFSHORE", "", solar.Resource.ID)
	suite.Require().Nil(err)
	assert.True(suite.T(), duplicate.Conflict())
	assert.Equal(suite.T(), first.Resource.ID, duplicate.Resource.ID)

	other, err := suite.service.CreateSubCategory(ctx(), "offshore", "", wind.Resource.ID)
	suite.Require().Nil(err)
	assert.True(suite.T(), other.Created, "The same name must be allowed in another category")
	assert.NotEqual(suite.T(), first.Resource.ID, other.Resource.ID)
}

func (suite *TestSuiteStandard) TestCreateSubCategoryCategoryNotFound() {
	_, err := suite.service.CreateSubCategory(ctx(), "PV", "", uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCreateCategoryWithSubCategories() {
	result, err := suite.service.CreateCategoryWithSubCategories(ctx(), "Solar", "Solar energy", []string{"PV", " pv ", "", "   ", "Thermal"})
	suite.Require().Nil(err)
	suite.Require().True(result.Category.Created)

	var got []string
	for _, s := range result.SubCategories {
		got = append(got, s.Name)
		assert.Equal(suite.T(), result.Category.Resource.ID, s.CategoryID)
	}
	assert.Equal(suite.T(), []string{"PV", "Thermal"}, got)

	stored, err := suite.service.SubCategories(ctx(), result.Category.Resource.ID)
	suite.Require().Nil(err)
	assert.Len(suite.T(), stored, 2)
}

func (suite *TestSuiteStandard) TestCreateCategoryWithSubCategoriesConflict() {
	_, _ = suite.createCategory("Solar", "PV")

	result, err := suite.service.CreateCategoryWithSubCategories(ctx(), "solar", "", []string{"Thermal"})
	suite.Require().Nil(err)
	assert.True(suite.T(), result.Category.Conflict())
	assert.Empty(suite.T(), result.SubCategories)

	stored, err := suite.service.SubCategories(ctx(), result.Category.Resource.ID)
	suite.Require().Nil(err)
	suite.Require().Len(stored, 1, "No subcategory must be added on conflict")
	assert.Equal(suite.T(), "PV", stored[0].Name)
}

func (suite *TestSuiteStandard) TestCreateCategoryWithSubCategoriesMissing() {
	tests := []struct {
		name     string
		subNames []string
	}{
		{"Nil", nil},
		{"Empty", []string{}},
		{"Only blank", []string{"", "  ", "\t"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateCategoryWithSubCategories(ctx(), "Solar", "", tt.subNames)
			assert.ErrorIs(suite.T(), err, energy.ErrSubCategoriesMissing)
			assert.ErrorIs(suite.T(), err, energy.ErrValidation)
		})
	}

	categories, err := suite.service.Categories(ctx())
	suite.Require().Nil(err)
	assert.Empty(suite.T(), categories, "No category must be created without subcategories")
}

func (suite *TestSuiteStandard) TestDeleteCategoryCascades() {
	solar, subs := suite.createCategory("Solar", "PV")
	record := suite.createRecord(2023, "100", subs["PV"])

	deleted, err := suite.service.DeleteCategory(ctx(), solar.ID)
	suite.Require().Nil(err)
	assert.True(suite.T(), deleted)

	_, err = suite.service.SubCategory(ctx(), subs["PV"].ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	_, err = suite.service.Record(ctx(), record.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	deleted, err = suite.service.DeleteCategory(ctx(), solar.ID)
	suite.Require().Nil(err)
	assert.False(suite.T(), deleted)
}
