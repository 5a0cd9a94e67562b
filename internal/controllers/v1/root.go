package v1

import (
	"net/http"

	"github.com/energy-monitoring/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Categories    string `json:"categories" example:"https://example.com/api/v1/categories"`         // URL of Category collection endpoint
	SubCategories string `json:"subCategories" example:"https://example.com/api/v1/subcategories"`   // URL of SubCategory collection endpoint
	Records       string `json:"records" example:"https://example.com/api/v1/records"`               // URL of EnergyRecord collection endpoint
	Years         string `json:"years" example:"https://example.com/api/v1/records/years"`           // URL of the endpoint listing years with records
	Dashboard     string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`           // URL of the dashboard endpoint
	Breakdown     string `json:"breakdown" example:"https://example.com/api/v1/dashboard/breakdown"` // URL of the breakdown endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := baseURL(c)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Categories:    url + "/v1/categories",
			SubCategories: url + "/v1/subcategories",
			Records:       url + "/v1/records",
			Years:         url + "/v1/records/years",
			Dashboard:     url + "/v1/dashboard",
			Breakdown:     url + "/v1/dashboard/breakdown",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
