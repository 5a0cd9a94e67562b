package v1

import (
	"net/http"

	"github.com/energy-monitoring/backend/internal/httputil"
	"github.com/energy-monitoring/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterSubCategoryRoutes registers the routes for subcategories with
// the RouterGroup that is passed.
func RegisterSubCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSubCategoryList)
		r.GET("", GetSubCategories)
		r.POST("", CreateSubCategory)
	}

	// SubCategory with ID
	{
		r.OPTIONS("/:id", OptionsSubCategoryDetail)
		r.GET("/:id", GetSubCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SubCategories
// @Success		204
// @Router			/v1/subcategories [options]
func OptionsSubCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SubCategories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subcategories/{id} [options]
func OptionsSubCategoryDetail(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = service().SubCategory(c, id)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create subcategory
// @Description	Adds a subcategory to an existing category. If the category already has a subcategory
// @Description	with the same name, ignoring case and whitespace, the existing one is returned with status 409.
// @Tags			SubCategories
// @Produce		json
// @Success		201			{object}	SubCategoryResponse
// @Failure		400			{object}	SubCategoryResponse
// @Failure		404			{object}	SubCategoryResponse
// @Failure		409			{object}	SubCategoryResponse
// @Failure		500			{object}	SubCategoryResponse
// @Param			subcategory	body		SubCategoryEditable	true	"SubCategory"
// @Router			/v1/subcategories [post]
func CreateSubCategory(c *gin.Context) {
	var editable SubCategoryEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), SubCategoryResponse{
			Error: errorString(err),
		})
		return
	}

	result, err := service().CreateSubCategory(c, editable.Name, editable.Description, editable.CategoryID)
	if err != nil {
		c.JSON(status(err), SubCategoryResponse{
			Error: errorString(err),
		})
		return
	}

	data := newSubCategory(c, result.Resource)
	if result.Conflict() {
		c.JSON(http.StatusConflict, SubCategoryResponse{
			Data:  &data,
			Error: errorString(models.ErrSubCategoryNameNotUnique),
		})
		return
	}

	c.JSON(http.StatusCreated, SubCategoryResponse{
		Data: &data,
	})
}

// @Summary		Get subcategories
// @Description	Returns a list of subcategories ordered by name
// @Tags			SubCategories
// @Produce		json
// @Success		200			{object}	SubCategoryListResponse
// @Failure		400			{object}	SubCategoryListResponse
// @Failure		500			{object}	SubCategoryListResponse
// @Param			category	query		string	false	"Filter by category ID"
// @Router			/v1/subcategories [get]
func GetSubCategories(c *gin.Context) {
	var filter SubCategoryQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	categoryID, err := httputil.UUIDFromString(filter.CategoryID)
	if err != nil {
		c.JSON(status(err), SubCategoryListResponse{
			Error: errorString(err),
		})
		return
	}

	subCategories, err := service().SubCategories(c, categoryID)
	if err != nil {
		c.JSON(status(err), SubCategoryListResponse{
			Error: errorString(err),
		})
		return
	}

	data := make([]SubCategory, 0, len(subCategories))
	for _, s := range subCategories {
		data = append(data, newSubCategory(c, s))
	}

	c.JSON(http.StatusOK, SubCategoryListResponse{
		Data: data,
	})
}

// @Summary		Get subcategory
// @Description	Returns a specific subcategory
// @Tags			SubCategories
// @Produce		json
// @Success		200	{object}	SubCategoryResponse
// @Failure		400	{object}	SubCategoryResponse
// @Failure		404	{object}	SubCategoryResponse
// @Failure		500	{object}	SubCategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subcategories/{id} [get]
func GetSubCategory(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), SubCategoryResponse{
			Error: errorString(err),
		})
		return
	}

	subCategory, err := service().SubCategory(c, id)
	if err != nil {
		c.JSON(status(err), SubCategoryResponse{
			Error: errorString(err),
		})
		return
	}

	data := newSubCategory(c, subCategory)
	c.JSON(http.StatusOK, SubCategoryResponse{
		Data: &data,
	})
}
