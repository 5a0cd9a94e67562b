package v1

import (
	"net/http"

	"github.com/energy-monitoring/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)

	r.OPTIONS("/breakdown", OptionsBreakdown)
	r.GET("/breakdown", GetBreakdown)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard/breakdown [options]
func OptionsBreakdown(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the statistics, the yearly series and the stacked series per category
// @Tags			Dashboard
// @Produce		json
// @Success		200			{object}	DashboardResponse
// @Failure		400			{object}	DashboardResponse
// @Failure		500			{object}	DashboardResponse
// @Param			category	query		string	false	"Limit statistics and yearly series to a category ID"
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	var filter DashboardQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	categoryID, err := httputil.UUIDFromString(filter.CategoryID)
	if err != nil {
		c.JSON(status(err), DashboardResponse{
			Error: errorString(err),
		})
		return
	}

	s := service()

	stats, err := s.DashboardStats(c, categoryID)
	if err != nil {
		c.JSON(status(err), DashboardResponse{
			Error: errorString(err),
		})
		return
	}

	yearly, err := s.YearlySeries(c, categoryID)
	if err != nil {
		c.JSON(status(err), DashboardResponse{
			Error: errorString(err),
		})
		return
	}

	stacked, err := s.StackedYearlySeries(c)
	if err != nil {
		c.JSON(status(err), DashboardResponse{
			Error: errorString(err),
		})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Data: &Dashboard{
			Stats:   stats,
			Yearly:  yearly,
			Stacked: stacked,
		},
	})
}

// @Summary		Get breakdown
// @Description	Returns the sum of all records per year, category and subcategory.
// @Description	Only combinations with at least one record are included.
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	BreakdownResponse
// @Failure		500	{object}	BreakdownResponse
// @Router			/v1/dashboard/breakdown [get]
func GetBreakdown(c *gin.Context) {
	breakdown, err := service().Breakdown(c)
	if err != nil {
		c.JSON(status(err), BreakdownResponse{
			Error: errorString(err),
		})
		return
	}

	c.JSON(http.StatusOK, BreakdownResponse{
		Data: breakdown,
	})
}
