package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/energy-monitoring/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrCategoryNameNotUnique) || errors.Is(err, models.ErrSubCategoryNameNotUnique) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var (
	errCategoryNotFound = fmt.Errorf("%w category matching your query", models.ErrResourceNotFound)
	errRecordNotFound   = fmt.Errorf("%w record matching your query", models.ErrResourceNotFound)
)
