package v1

import (
	"net/http"

	"github.com/energy-monitoring/backend/internal/httputil"
	"github.com/energy-monitoring/backend/internal/models"
	"github.com/energy-monitoring/backend/internal/names"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = service().Category(c, id)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create category
// @Description	Creates a new category together with its subcategories. At least one subcategory is required.
// @Description	Names are compared ignoring case and whitespace. If the category exists, the existing category is returned with status 409.
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryCreateResponse
// @Failure		400			{object}	CategoryCreateResponse
// @Failure		409			{object}	CategoryCreateResponse
// @Failure		500			{object}	CategoryCreateResponse
// @Param			category	body		CategoryCreate	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	var create CategoryCreate

	// Bind data and return error if not possible
	err := httputil.BindData(c, &create)
	if err != nil {
		c.JSON(status(err), CategoryCreateResponse{
			Error: errorString(err),
		})
		return
	}

	result, err := service().CreateCategoryWithSubCategories(c, create.Name, create.Description, create.SubCategories)
	if err != nil {
		c.JSON(status(err), CategoryCreateResponse{
			Error: errorString(err),
		})
		return
	}

	data := newCategory(c, result.Category.Resource)
	subCategories := make([]SubCategory, 0, len(result.SubCategories))
	for _, s := range result.SubCategories {
		subCategories = append(subCategories, newSubCategory(c, s))
	}

	if result.Category.Conflict() {
		c.JSON(http.StatusConflict, CategoryCreateResponse{
			Data:          &data,
			SubCategories: subCategories,
			Error:         errorString(models.ErrCategoryNameNotUnique),
		})
		return
	}

	c.JSON(http.StatusCreated, CategoryCreateResponse{
		Data:          &data,
		SubCategories: subCategories,
	})
}

// @Summary		Get categories
// @Description	Returns a list of categories ordered by name
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		500		{object}	CategoryListResponse
// @Param			name	query		string	false	"Filter by name. Supports glob patterns, case is ignored"
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	categories, err := service().Categories(c)
	if err != nil {
		c.JSON(status(err), CategoryListResponse{
			Error: errorString(err),
		})
		return
	}

	pattern := names.Key(filter.Name)

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		if pattern != "" && !glob.Glob(pattern, names.Key(category.Name)) {
			continue
		}
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data: data,
	})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Failure		500	{object}	CategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), CategoryResponse{
			Error: errorString(err),
		})
		return
	}

	category, err := service().Category(c, id)
	if err != nil {
		c.JSON(status(err), CategoryResponse{
			Error: errorString(err),
		})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{
		Data: &data,
	})
}

// @Summary		Delete category
// @Description	Deletes a category together with its subcategories and records
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	deleted, err := service().DeleteCategory(c, id)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, httpError{
			Error: errCategoryNotFound.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
