package v1

import (
	"fmt"

	"github.com/energy-monitoring/backend/internal/energy"
	"github.com/energy-monitoring/backend/internal/httputil"
	"github.com/energy-monitoring/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordEditable represents all user configurable parameters
type RecordEditable struct {
	Year          int             `json:"year" binding:"required" example:"2024"`                                          // Year of the measurement
	ValueKWh      decimal.Decimal `json:"valueKwh" swaggertype:"string" example:"4500.50"`                                 // Energy produced in kWh. Stored with two decimal places
	CategoryID    uuid.UUID       `json:"categoryId" binding:"required" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`    // ID of the category
	SubCategoryID uuid.UUID       `json:"subCategoryId" binding:"required" example:"c5e893b4-2169-4d28-a1f5-5c9b7a8ba17a"` // ID of the subcategory. Must belong to the category
}

func (editable RecordEditable) input() energy.RecordInput {
	return energy.RecordInput{
		Year:          editable.Year,
		ValueKWh:      editable.ValueKWh,
		CategoryID:    editable.CategoryID,
		SubCategoryID: editable.SubCategoryID,
	}
}

type RecordLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/records/e5b0d0b2-d2c4-4f2f-9d1b-3a0c9c8e6c1a"`              // The record itself
	Category    string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`       // The category of the record
	SubCategory string `json:"subCategory" example:"https://example.com/api/v1/subcategories/c5e893b4-2169-4d28-a1f5-5c9b7a8ba17a"` // The subcategory of the record
}

type Record struct {
	models.DefaultModel
	RecordEditable
	Category    string      `json:"category" example:"Solaire"`           // Name of the category
	SubCategory string      `json:"subCategory" example:"Photovoltaïque"` // Name of the subcategory
	Links       RecordLinks `json:"links"`
}

func newRecord(c *gin.Context, model models.EnergyRecord) Record {
	url := baseURL(c)

	return Record{
		DefaultModel: model.DefaultModel,
		RecordEditable: RecordEditable{
			Year:          model.Year,
			ValueKWh:      model.ValueKWh,
			CategoryID:    model.CategoryID,
			SubCategoryID: model.SubCategoryID,
		},
		Category:    model.Category.Name,
		SubCategory: model.SubCategory.Name,
		Links: RecordLinks{
			Self:        fmt.Sprintf("%s/v1/records/%s", url, model.ID),
			Category:    fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
			SubCategory: fmt.Sprintf("%s/v1/subcategories/%s", url, model.SubCategoryID),
		},
	}
}

type RecordListResponse struct {
	Data  []Record `json:"data"`                                                          // List of Records
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RecordResponse struct {
	Data  *Record `json:"data"`                                                          // Data for the Record
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RecordYearsResponse struct {
	Data  []int   `json:"data" example:"2023,2024,2025"`                                 // Years with records in ascending order
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RecordQueryFilter struct {
	CategoryID    string `form:"category"`    // By ID of the Category
	SubCategoryID string `form:"subcategory"` // By ID of the SubCategory
	Year          string `form:"year"`        // By year. "all" does not filter
}

func (f RecordQueryFilter) model() (models.RecordFilter, error) {
	categoryID, err := httputil.UUIDFromString(f.CategoryID)
	if err != nil {
		return models.RecordFilter{}, err
	}

	subCategoryID, err := httputil.UUIDFromString(f.SubCategoryID)
	if err != nil {
		return models.RecordFilter{}, err
	}

	year, err := httputil.IntFromString(f.Year, "all")
	if err != nil {
		return models.RecordFilter{}, err
	}

	return models.RecordFilter{
		CategoryID:    categoryID,
		SubCategoryID: subCategoryID,
		Year:          year,
	}, nil
}
