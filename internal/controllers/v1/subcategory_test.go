package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/energy-monitoring/backend/internal/controllers/v1"
	"github.com/energy-monitoring/backend/internal/models"
	"github.com/energy-monitoring/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSubCategoriesCreate() {
	category := createTestCategory(suite.T(), v1.CategoryCreate{
		CategoryEditable: v1.CategoryEditable{Name: "Solaire"},
		SubCategories:    []string{"Photovoltaïque"},
	})

	r := createTestSubCategory(suite.T(), v1.SubCategoryEditable{
		Name:        "Solaire   thermique",
		Description: "Chauffe-eau solaires",
		CategoryID:  category.Data.ID,
	})

	suite.Assert().Nil(r.Error)
	suite.Assert().Equal("Solaire thermique", r.Data.Name)
	suite.Assert().Equal("Chauffe-eau solaires", r.Data.Description)
	suite.Assert().Equal(category.Data.ID, r.Data.CategoryID)
	suite.Assert().Equal(category.Data.Links.Self, r.Data.Links.Category)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/records?subcategory=%s", r.Data.ID), r.Data.Links.Records)
}

// TestSubCategoriesCreateConflict verifies that subcategory names are unique
// per category only.
func (suite *TestSuiteStandard) TestSubCategoriesCreateConflict() {
	solaire := createTestCategory(suite.T(), v1.CategoryCreate{
		CategoryEditable: v1.CategoryEditable{Name: "Solaire"},
		SubCategories:    []string{"Photovoltaïque"},
	})
	existing := subCategoryByName(suite.T(), solaire, "Photovoltaïque")

	r := createTestSubCategory(suite.T(), v1.SubCategoryEditable{
		Name:       " PHOTOVOLTAÏQUE ",
		CategoryID: solaire.Data.ID,
	}, http.StatusConflict)

	suite.Require().NotNil(r.Data)
	suite.Assert().Equal(existing.ID, r.Data.ID)
	suite.Assert().Equal(models.ErrSubCategoryNameNotUnique.Error(), *r.Error)

	autre := createTestCategory(suite.T(), v1.CategoryCreate{CategoryEditable: v1.CategoryEditable{Name: "Autre"}})
	r = createTestSubCategory(suite.T(), v1.SubCategoryEditable{
		Name:       "Photovoltaïque",
		CategoryID: autre.Data.ID,
	})
	suite.Assert().NotEqual(existing.ID, r.Data.ID)
}

func (suite *TestSuiteStandard) TestSubCategoriesCreateFails() {
	category := createTestCategory(suite.T(), v1.CategoryCreate{})

	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Missing category", v1.SubCategoryEditable{Name: "Bois"}, http.StatusBadRequest, "CategoryID is required"},
		{"Missing name", v1.SubCategoryEditable{CategoryID: category.Data.ID}, http.StatusBadRequest, "Name is required"},
		{"Invalid category ID", `{ "name": "Bois", "categoryId": "not-a-uuid" }`, http.StatusBadRequest, "the body of your request contains invalid"},
		{"Category does not exist", v1.SubCategoryEditable{Name: "Bois", CategoryID: uuid.New()}, http.StatusNotFound, "there is no category matching your query"},
		{"Blank name", v1.SubCategoryEditable{Name: "\t", CategoryID: category.Data.ID}, http.StatusBadRequest, "the name must not be empty"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/subcategories", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, test.DecodeError(t, &r), tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestSubCategoriesGet() {
	solaire := createTestCategory(suite.T(), v1.CategoryCreate{
		CategoryEditable: v1.CategoryEditable{Name: "Solaire"},
		SubCategories:    []string{"Thermique", "Photovoltaïque"},
	})
	createTestCategory(suite.T(), v1.CategoryCreate{
		CategoryEditable: v1.CategoryEditable{Name: "Éolien"},
		SubCategories:    []string{"Terrestre"},
	})

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"All", "", []string{"Photovoltaïque", "Terrestre", "Thermique"}},
		{"By category", fmt.Sprintf("category=%s", solaire.Data.ID), []string{"Photovoltaïque", "Thermique"}},
		{"Unknown category", fmt.Sprintf("category=%s", uuid.New()), []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/subcategories?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.SubCategoryListResponse
			test.DecodeResponse(t, &r, &response)

			names := make([]string, 0, len(response.Data))
			for _, s := range response.Data {
				names = append(names, s.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/subcategories?category=not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	sub := subCategoryByName(suite.T(), solaire, "Thermique")
	r = test.Request(suite.T(), http.MethodGet, sub.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SubCategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(sub.ID, response.Data.ID)
	suite.Assert().Equal("Thermique", response.Data.Name)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/subcategories/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
