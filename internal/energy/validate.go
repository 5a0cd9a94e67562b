package energy

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/energy-monitoring/backend/internal/names"
	"github.com/shopspring/decimal"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 255
	minYear              = 1900
	maxYear              = 2100
)

// maxValue is the first value that does not fit into 12 integer digits.
var maxValue = decimal.New(1, 12)

var ErrValidation = errors.New("validation failed")

var (
	ErrNameEmpty            = fmt.Errorf("%w: the name must not be empty", ErrValidation)
	ErrNameTooLong          = fmt.Errorf("%w: the name must not be longer than %d characters", ErrValidation, maxNameLength)
	ErrDescriptionTooLong   = fmt.Errorf("%w: the description must not be longer than %d characters", ErrValidation, maxDescriptionLength)
	ErrSubCategoriesMissing = fmt.Errorf("%w: at least one subcategory is required", ErrValidation)
	ErrYearOutOfRange       = fmt.Errorf("%w: the year must be between %d and %d", ErrValidation, minYear, maxYear)
	ErrValueNotPositive     = fmt.Errorf("%w: the value must be greater than zero", ErrValidation)
	ErrValueTooLarge        = fmt.Errorf("%w: the value must have at most 12 digits before the decimal point", ErrValidation)
)

// validateName returns the normalized name.
func validateName(raw string) (string, error) {
	name := names.Normalize(raw)
	if name == "" {
		return "", ErrNameEmpty
	}

	if utf8.RuneCountInString(name) > maxNameLength {
		return "", ErrNameTooLong
	}

	return name, nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

func validateYear(year int) error {
	if year < minYear || year > maxYear {
		return ErrYearOutOfRange
	}
	return nil
}

func validateValue(value decimal.Decimal) error {
	value = value.Round(2)
	if !value.IsPositive() {
		return ErrValueNotPositive
	}

	if value.GreaterThanOrEqual(maxValue) {
		return ErrValueTooLarge
	}

	return nil
}
