package v1

import (
	"fmt"

	"github.com/energy-monitoring/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name        string `json:"name" binding:"required" example:"Solaire"`        // Name of the category
	Description string `json:"description" example:"Énergie solaire" default:""` // Description of the category
}

// CategoryCreate is the body of a category creation request
type CategoryCreate struct {
	CategoryEditable
	SubCategories []string `json:"subcategories" binding:"required,min=1" example:"Photovoltaïque,Solaire thermique"` // Names of the subcategories to create with the category
}

type CategoryLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                      // The category itself
	SubCategories string `json:"subCategories" example:"https://example.com/api/v1/subcategories?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Subcategories of this category
	Records       string `json:"records" example:"https://example.com/api/v1/records?category=3b1ea324-d438-4419-882a-2fc91d71772f"`             // Records of this category
	Dashboard     string `json:"dashboard" example:"https://example.com/api/v1/dashboard?category=3b1ea324-d438-4419-882a-2fc91d71772f"`         // Dashboard for this category
}

type Category struct {
	models.DefaultModel
	Name        string        `json:"name" example:"Solaire"`                // Name of the category
	Description string        `json:"description" example:"Énergie solaire"` // Description of the category
	Links       CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := baseURL(c)

	return Category{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Description:  model.Description,
		Links: CategoryLinks{
			Self:          fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			SubCategories: fmt.Sprintf("%s/v1/subcategories?category=%s", url, model.ID),
			Records:       fmt.Sprintf("%s/v1/records?category=%s", url, model.ID),
			Dashboard:     fmt.Sprintf("%s/v1/dashboard?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of Categories
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryCreateResponse struct {
	Data          *Category     `json:"data"`                                             // The created Category. On conflict, the existing Category
	SubCategories []SubCategory `json:"subcategories"`                                    // The created SubCategories
	Error         *string       `json:"error" example:"the category name must be unique"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Name string `form:"name"` // By name, supports glob patterns like "Sol*"
}
