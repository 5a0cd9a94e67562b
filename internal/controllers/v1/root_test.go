package v1_test

import (
	"net/http"

	v1 "github.com/energy-monitoring/backend/internal/controllers/v1"
	"github.com/energy-monitoring/backend/test"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(v1.Links{
		Categories:    "http://example.com/v1/categories",
		SubCategories: "http://example.com/v1/subcategories",
		Records:       "http://example.com/v1/records",
		Years:         "http://example.com/v1/records/years",
		Dashboard:     "http://example.com/v1/dashboard",
		Breakdown:     "http://example.com/v1/dashboard/breakdown",
	}, response.Links)
}

// TestMetricsLabels verifies that IDs in paths are replaced by their parameter
// name in the metric labels.
func (suite *TestSuiteStandard) TestMetricsLabels() {
	category := createTestCategory(suite.T(), v1.CategoryCreate{})

	r := test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/metrics", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().Contains(r.Body.String(), `url="/v1/categories/:id"`)
	suite.Assert().NotContains(r.Body.String(), category.Data.ID.String())
}
