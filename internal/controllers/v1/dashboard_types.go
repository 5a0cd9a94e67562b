package v1

import "github.com/energy-monitoring/backend/internal/energy"

type DashboardQueryFilter struct {
	CategoryID string `form:"category"` // By ID of the Category
}

// Dashboard is all data needed to render the dashboard.
//
// Stats and Yearly respect the category filter. Stacked always covers all categories.
type Dashboard struct {
	Stats   energy.Stats         `json:"stats"`   // Total, average and count of the records
	Yearly  []energy.YearValue   `json:"yearly"`  // Total per year
	Stacked energy.StackedSeries `json:"stacked"` // Total per year for each category
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                          // Data for the dashboard
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BreakdownResponse struct {
	Data  energy.Breakdown `json:"data"`                                                                // Sum per year, category name and subcategory name
	Error *string          `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}
