package v1

import (
	"net/http"

	"github.com/energy-monitoring/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterRecordRoutes registers the routes for energy records with
// the RouterGroup that is passed.
func RegisterRecordRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRecordList)
		r.GET("", GetRecords)
		r.POST("", CreateRecord)
	}

	// Years with records
	{
		r.OPTIONS("/years", OptionsRecordYears)
		r.GET("/years", GetRecordYears)
	}

	// Record with ID
	{
		r.OPTIONS("/:id", OptionsRecordDetail)
		r.GET("/:id", GetRecord)
		r.DELETE("/:id", DeleteRecord)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Records
// @Success		204
// @Router			/v1/records [options]
func OptionsRecordList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Records
// @Success		204
// @Router			/v1/records/years [options]
func OptionsRecordYears(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Records
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/records/{id} [options]
func OptionsRecordDetail(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = service().Record(c, id)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create record
// @Description	Creates a new energy record. The subcategory must belong to the category.
// @Tags			Records
// @Produce		json
// @Success		201		{object}	RecordResponse
// @Failure		400		{object}	RecordResponse
// @Failure		404		{object}	RecordResponse
// @Failure		500		{object}	RecordResponse
// @Param			record	body		RecordEditable	true	"Record"
// @Router			/v1/records [post]
func CreateRecord(c *gin.Context) {
	var editable RecordEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), RecordResponse{
			Error: errorString(err),
		})
		return
	}

	record, err := service().CreateRecord(c, editable.input())
	if err != nil {
		c.JSON(status(err), RecordResponse{
			Error: errorString(err),
		})
		return
	}

	data := newRecord(c, record)
	c.JSON(http.StatusCreated, RecordResponse{
		Data: &data,
	})
}

// @Summary		Get records
// @Description	Returns a list of records ordered by year, newest record first within a year
// @Tags			Records
// @Produce		json
// @Success		200			{object}	RecordListResponse
// @Failure		400			{object}	RecordListResponse
// @Failure		500			{object}	RecordListResponse
// @Param			category	query		string	false	"Filter by category ID"
// @Param			subcategory	query		string	false	"Filter by subcategory ID"
// @Param			year		query		string	false	"Filter by year. \"all\" does not filter"
// @Router			/v1/records [get]
func GetRecords(c *gin.Context) {
	var filter RecordQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	recordFilter, err := filter.model()
	if err != nil {
		c.JSON(status(err), RecordListResponse{
			Error: errorString(err),
		})
		return
	}

	records, err := service().Records(c, recordFilter)
	if err != nil {
		c.JSON(status(err), RecordListResponse{
			Error: errorString(err),
		})
		return
	}

	data := make([]Record, 0, len(records))
	for _, record := range records {
		data = append(data, newRecord(c, record))
	}

	c.JSON(http.StatusOK, RecordListResponse{
		Data: data,
	})
}

// @Summary		Get years
// @Description	Returns the years that have records in ascending order
// @Tags			Records
// @Produce		json
// @Success		200			{object}	RecordYearsResponse
// @Failure		400			{object}	RecordYearsResponse
// @Failure		500			{object}	RecordYearsResponse
// @Param			category	query		string	false	"Filter by category ID"
// @Router			/v1/records/years [get]
func GetRecordYears(c *gin.Context) {
	var filter DashboardQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	categoryID, err := httputil.UUIDFromString(filter.CategoryID)
	if err != nil {
		c.JSON(status(err), RecordYearsResponse{
			Error: errorString(err),
		})
		return
	}

	years, err := service().DistinctYears(c, categoryID)
	if err != nil {
		c.JSON(status(err), RecordYearsResponse{
			Error: errorString(err),
		})
		return
	}

	c.JSON(http.StatusOK, RecordYearsResponse{
		Data: years,
	})
}

// @Summary		Get record
// @Description	Returns a specific record
// @Tags			Records
// @Produce		json
// @Success		200	{object}	RecordResponse
// @Failure		400	{object}	RecordResponse
// @Failure		404	{object}	RecordResponse
// @Failure		500	{object}	RecordResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/records/{id} [get]
func GetRecord(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), RecordResponse{
			Error: errorString(err),
		})
		return
	}

	record, err := service().Record(c, id)
	if err != nil {
		c.JSON(status(err), RecordResponse{
			Error: errorString(err),
		})
		return
	}

	data := newRecord(c, record)
	c.JSON(http.StatusOK, RecordResponse{
		Data: &data,
	})
}

// @Summary		Delete record
// @Description	Deletes a record
// @Tags			Records
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/records/{id} [delete]
func DeleteRecord(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	deleted, err := service().DeleteRecord(c, id)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, httpError{
			Error: errRecordNotFound.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
