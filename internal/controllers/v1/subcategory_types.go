package v1

import (
	"fmt"

	"github.com/energy-monitoring/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubCategoryEditable represents all user configurable parameters
type SubCategoryEditable struct {
	Name        string    `json:"name" binding:"required" example:"Photovoltaïque"`                             // Name of the subcategory
	Description string    `json:"description" example:"Panneaux solaires" default:""`                           // Description of the subcategory
	CategoryID  uuid.UUID `json:"categoryId" binding:"required" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category the subcategory belongs to
}

type SubCategoryLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/subcategories/c5e893b4-2169-4d28-a1f5-5c9b7a8ba17a"`          // The subcategory itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`         // The category of the subcategory
	Records  string `json:"records" example:"https://example.com/api/v1/records?subcategory=c5e893b4-2169-4d28-a1f5-5c9b7a8ba17a"` // Records of this subcategory
}

type SubCategory struct {
	models.DefaultModel
	SubCategoryEditable
	Links SubCategoryLinks `json:"links"`
}

func newSubCategory(c *gin.Context, model models.SubCategory) SubCategory {
	url := baseURL(c)

	return SubCategory{
		DefaultModel: model.DefaultModel,
		SubCategoryEditable: SubCategoryEditable{
			Name:        model.Name,
			Description: model.Description,
			CategoryID:  model.CategoryID,
		},
		Links: SubCategoryLinks{
			Self:     fmt.Sprintf("%s/v1/subcategories/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
			Records:  fmt.Sprintf("%s/v1/records?subcategory=%s", url, model.ID),
		},
	}
}

type SubCategoryListResponse struct {
	Data  []SubCategory `json:"data"`                                                          // List of SubCategories
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SubCategoryResponse struct {
	Data  *SubCategory `json:"data"`                                                                 // Data for the SubCategory. On conflict, the existing SubCategory
	Error *string      `json:"error" example:"the subcategory name must be unique for its category"` // The error, if any occurred
}

type SubCategoryQueryFilter struct {
	CategoryID string `form:"category"` // By ID of the Category
}
