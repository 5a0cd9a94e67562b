package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrCategoryNameNotUnique    = errors.New("the category name must be unique")
	ErrSubCategoryNameNotUnique = errors.New("the subcategory name must be unique for its category")
	ErrSubCategoryMismatch      = errors.New("the subcategory does not belong to the category of the record")
)
