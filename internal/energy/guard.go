package energy

import (
	"context"
	"errors"

	"github.com/energy-monitoring/backend/internal/models"
	"github.com/energy-monitoring/backend/internal/names"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CreateResult is the outcome of a guarded creation.
//
// If Created is false, an entity with the same name already existed
// and Resource is that entity.
type CreateResult[T any] struct {
	Resource T
	Created  bool
}

// Conflict reports whether the creation was skipped because of an existing entity.
func (r CreateResult[T]) Conflict() bool {
	return !r.Created
}

func created[T any](resource T) CreateResult[T] {
	return CreateResult[T]{Resource: resource, Created: true}
}

func conflict[T any](resource T) CreateResult[T] {
	return CreateResult[T]{Resource: resource}
}

// CategoryCreation is the outcome of CreateCategoryWithSubCategories.
type CategoryCreation struct {
	Category      CreateResult[models.Category]
	SubCategories []models.SubCategory
}

// CreateCategory creates a category unless one with the same name exists.
//
// Names are compared after normalization and case folding. If two callers
// create the same name concurrently, the unique index decides and the
// loser gets a conflict.
func (s *Service) CreateCategory(ctx context.Context, name, description string) (CreateResult[models.Category], error) {
	name, err := validateName(name)
	if err != nil {
		return CreateResult[models.Category]{}, err
	}

	if err := validateDescription(description); err != nil {
		return CreateResult[models.Category]{}, err
	}

	existing, err := s.store.FindCategoryByNormalizedName(ctx, name)
	if err != nil {
		return CreateResult[models.Category]{}, err
	}

	if existing != nil {
		return conflict(*existing), nil
	}

	category, err := s.store.InsertCategory(ctx, name, description)
	if errors.Is(err, models.ErrCategoryNameNotUnique) {
		log.Debug().Str("name", name).Msg("category created concurrently")

		existing, findErr := s.store.FindCategoryByNormalizedName(ctx, name)
		if findErr != nil {
			return CreateResult[models.Category]{}, findErr
		}

		if existing == nil {
			return CreateResult[models.Category]{}, err
		}

		return conflict(*existing), nil
	}

	if err != nil {
		return CreateResult[models.Category]{}, err
	}

	return created(category), nil
}

// CreateSubCategory creates a subcategory of the category unless the
// category already has one with the same name.
func (s *Service) CreateSubCategory(ctx context.Context, name, description string, categoryID uuid.UUID) (CreateResult[models.SubCategory], error) {
	name, err := validateName(name)
	if err != nil {
		return CreateResult[models.SubCategory]{}, err
	}

	if err := validateDescription(description); err != nil {
		return CreateResult[models.SubCategory]{}, err
	}

	if _, err := s.store.Category(ctx, categoryID); err != nil {
		return CreateResult[models.SubCategory]{}, err
	}

	existing, err := s.store.FindSubCategoryByNameAndCategory(ctx, name, categoryID)
	if err != nil {
		return CreateResult[models.SubCategory]{}, err
	}

	if existing != nil {
		return conflict(*existing), nil
	}

	subCategory, err := s.store.InsertSubCategory(ctx, name, description, categoryID)
	if errors.Is(err, models.ErrSubCategoryNameNotUnique) {
		log.Debug().Str("name", name).Str("category", categoryID.String()).Msg("subcategory created concurrently")

		existing, findErr := s.store.FindSubCategoryByNameAndCategory(ctx, name, categoryID)
		if findErr != nil {
			return CreateResult[models.SubCategory]{}, findErr
		}

		if existing == nil {
			return CreateResult[models.SubCategory]{}, err
		}

		return conflict(*existing), nil
	}

	if err != nil {
		return CreateResult[models.SubCategory]{}, err
	}

	return created(subCategory), nil
}

// CreateCategoryWithSubCategories creates a category together with its
// subcategories. At least one non-blank subcategory name is required.
// Names in subNames that are equal after normalization are created once.
//
// If the category already exists, no subcategories are created.
func (s *Service) CreateCategoryWithSubCategories(ctx context.Context, name, description string, subNames []string) (CategoryCreation, error) {
	subNames, err := uniqueNames(subNames)
	if err != nil {
		return CategoryCreation{}, err
	}

	category, err := s.CreateCategory(ctx, name, description)
	if err != nil {
		return CategoryCreation{}, err
	}

	result := CategoryCreation{
		Category:      category,
		SubCategories: make([]models.SubCategory, 0, len(subNames)),
	}

	if category.Conflict() {
		return result, nil
	}

	for _, subName := range subNames {
		sub, err := s.CreateSubCategory(ctx, subName, "", category.Resource.ID)
		if err != nil {
			return result, err
		}
		result.SubCategories = append(result.SubCategories, sub.Resource)
	}

	return result, nil
}

// uniqueNames drops blank names and names that are equal to an earlier one.
func uniqueNames(raw []string) ([]string, error) {
	seen := make(map[string]bool, len(raw))
	unique := make([]string, 0, len(raw))

	for _, r := range raw {
		name := names.Normalize(r)
		if name == "" {
			continue
		}

		name, err := validateName(name)
		if err != nil {
			return nil, err
		}

		key := names.Key(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, name)
	}

	if len(unique) == 0 {
		return nil, ErrSubCategoriesMissing
	}

	return unique, nil
}
