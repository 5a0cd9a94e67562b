package v1_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	v1 "github.com/energy-monitoring/backend/internal/controllers/v1"
	"github.com/energy-monitoring/backend/internal/energy"
	"github.com/energy-monitoring/backend/internal/httputil"
	"github.com/energy-monitoring/backend/internal/models"
	"github.com/energy-monitoring/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TestCategoriesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				r := createTestCategory(t, v1.CategoryCreate{}, http.StatusInternalServerError)
				assert.Contains(t, *r.Error, models.ErrGeneral.Error())
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/categories", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.CategoryListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	r := createTestCategory(suite.T(), v1.CategoryCreate{
		CategoryEditable: v1.CategoryEditable{Name: "  Solaire ", Description: "Énergie solaire"},
		SubCategories:    []string{"Photovoltaïque", "Solaire thermique"},
	})

	suite.Assert().Nil(r.Error)
	suite.Assert().Equal("Solaire", r.Data.Name, "Name is not normalized")
	suite.Assert().Equal("Énergie solaire", r.Data.Description)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/categories/%s", r.Data.ID), r.Data.Links.Self)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/subcategories?category=%s", r.Data.ID), r.Data.Links.SubCategories)

	suite.Require().Len(r.SubCategories, 2)
	for _, s := range r.SubCategories {
		suite.Assert().Equal(r.Data.ID, s.CategoryID)
	}
}

func (suite *TestSuiteStandard) TestCategoriesCreateDuplicateSubCategories() {
	r := createTestCategory(suite.T(), v1.CategoryCreate{
		CategoryEditable: v1.CategoryEditable{Name: "Éolien"},
		SubCategories:    []string{"Terrestre", " terrestre ", "", "Offshore", "TERRESTRE"},
	})

	suite.Require().Len(r.SubCategories, 2)
	subCategoryByName(suite.T(), r, "Terrestre")
	subCategoryByName(suite.T(), r, "Offshore")
}

// TestCategoriesCreateConflict verifies that a category whose name only differs
// in case and whitespace is not created again.
func (suite *TestSuiteStandard) TestCategoriesCreateConflict() {
	original := createTestCategory(suite.T(), v1.CategoryCreate{
		CategoryEditable: v1.CategoryEditable{Name: "Biomasse"},
		SubCategories:    []string{"Bois"},
	})

	r := createTestCategory(suite.T(), v1.CategoryCreate{
		CategoryEditable: v1.CategoryEditable{Name: " BIOMASSE  "},
		SubCategories:    []string{"Biogaz"},
	}, http.StatusConflict)

	suite.Require().NotNil(r.Data)
	suite.Assert().Equal(original.Data.ID, r.Data.ID, "The existing category must be returned")
	suite.Assert().Equal(models.ErrCategoryNameNotUnique.Error(), *r.Error)
	suite.Assert().Empty(r.SubCategories, "No subcategories must be created on conflict")

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/subcategories?category=%s", original.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var subCategories v1.SubCategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &subCategories)
	suite.Require().Len(subCategories.Data, 1)
	suite.Assert().Equal("Bois", subCategories.Data[0].Name)
}

func (suite *TestSuiteStandard) TestCategoriesCreateFails() {
	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Empty body", nil, http.StatusBadRequest, httputil.ErrRequestBodyEmpty.Error()},
		{"Broken JSON", `{ "name": 2 }`, http.StatusBadRequest, "json: cannot unmarshal number"},
		{"Missing name", v1.CategoryCreate{SubCategories: []string{"Bois"}}, http.StatusBadRequest, "Name is required"},
		{"Missing subcategories", v1.CategoryEditable{Name: "Hydraulique"}, http.StatusBadRequest, "SubCategories is required"},
		{"Empty subcategories", v1.CategoryCreate{CategoryEditable: v1.CategoryEditable{Name: "Hydraulique"}, SubCategories: []string{}}, http.StatusBadRequest, "SubCategories must have at least 1 elements"},
		{"Blank subcategories", v1.CategoryCreate{CategoryEditable: v1.CategoryEditable{Name: "Hydraulique"}, SubCategories: []string{" ", ""}}, http.StatusBadRequest, energy.ErrSubCategoriesMissing.Error()},
		{"Blank name", v1.CategoryCreate{CategoryEditable: v1.CategoryEditable{Name: "   "}, SubCategories: []string{"Bois"}}, http.StatusBadRequest, energy.ErrNameEmpty.Error()},
		{"Name too long", v1.CategoryCreate{CategoryEditable: v1.CategoryEditable{Name: strings.Repeat("é", 101)}, SubCategories: []string{"Bois"}}, http.StatusBadRequest, energy.ErrNameTooLong.Error()},
		{"Description too long", v1.CategoryCreate{CategoryEditable: v1.CategoryEditable{Name: "Hydraulique", Description: strings.Repeat("a", 256)}, SubCategories: []string{"Bois"}}, http.StatusBadRequest, energy.ErrDescriptionTooLong.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, test.DecodeError(t, &r), tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGet() {
	solaire := createTestCategory(suite.T(), v1.CategoryCreate{CategoryEditable: v1.CategoryEditable{Name: "Solaire"}})
	createTestCategory(suite.T(), v1.CategoryCreate{CategoryEditable: v1.CategoryEditable{Name: "Biomasse"}})
	createTestCategory(suite.T(), v1.CategoryCreate{CategoryEditable: v1.CategoryEditable{Name: "Géothermie"}})

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"All", "", []string{"Biomasse", "Géothermie", "Solaire"}},
		{"Exact name", "name=Solaire", []string{"Solaire"}},
		{"Case is ignored", "name=SOLAIRE", []string{"Solaire"}},
		{"Glob prefix", "name=g*", []string{"Géothermie"}},
		{"Glob infix", "name=*o*", []string{"Biomasse", "Géothermie", "Solaire"}},
		{"No match", "name=Nucléaire", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CategoryListResponse
			test.DecodeResponse(t, &r, &response)

			names := make([]string, 0, len(response.Data))
			for _, c := range response.Data {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, solaire.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(solaire.Data.ID, response.Data.ID)
	suite.Assert().Equal("Solaire", response.Data.Name)
}

func (suite *TestSuiteStandard) TestCategoriesGetSingleFails() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Not a UUID", "not-a-uuid", http.StatusBadRequest},
		{"Does not exist", uuid.NewString(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestCategoriesDelete verifies that deleting a category also deletes its
// subcategories and records.
func (suite *TestSuiteStandard) TestCategoriesDelete() {
	category := createTestCategory(suite.T(), v1.CategoryCreate{
		CategoryEditable: v1.CategoryEditable{Name: "Solaire"},
		SubCategories:    []string{"Photovoltaïque"},
	})
	sub := subCategoryByName(suite.T(), category, "Photovoltaïque")
	record := createTestRecord(suite.T(), 2024, "100", sub)

	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	for _, url := range []string{category.Data.Links.Self, sub.Links.Self, record.Data.Links.Self} {
		r = test.Request(suite.T(), http.MethodGet, url, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}

	r = test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no category matching your query", test.DecodeError(suite.T(), &r))

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/categories/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal(httputil.ErrInvalidUUID.Error(), test.DecodeError(suite.T(), &r))
}
