// Package energy implements the rules for creating categories and
// subcategories and the aggregations the dashboard is built from.
package energy

import (
	"context"

	"github.com/energy-monitoring/backend/internal/models"
	"github.com/google/uuid"
)

// Store is the persistence the Service operates on.
//
// *models.Store implements it.
type Store interface {
	FindCategoryByNormalizedName(ctx context.Context, name string) (*models.Category, error)
	InsertCategory(ctx context.Context, name, description string) (models.Category, error)
	Category(ctx context.Context, id uuid.UUID) (models.Category, error)
	Categories(ctx context.Context) ([]models.Category, error)
	CountCategories(ctx context.Context) (int64, error)
	DeleteCategoryByID(ctx context.Context, id uuid.UUID) (bool, error)

	FindSubCategoryByNameAndCategory(ctx context.Context, name string, categoryID uuid.UUID) (*models.SubCategory, error)
	InsertSubCategory(ctx context.Context, name, description string, categoryID uuid.UUID) (models.SubCategory, error)
	SubCategory(ctx context.Context, id uuid.UUID) (models.SubCategory, error)
	SubCategories(ctx context.Context, categoryID uuid.UUID) ([]models.SubCategory, error)

	InsertRecord(ctx context.Context, record models.EnergyRecord) (models.EnergyRecord, error)
	Record(ctx context.Context, id uuid.UUID) (models.EnergyRecord, error)
	QueryRecords(ctx context.Context, filter models.RecordFilter) ([]models.EnergyRecord, error)
	DeleteRecordByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service is safe for concurrent use as long as its Store is.
type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

// Categories returns all categories ordered by name.
func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	return s.store.Categories(ctx)
}

func (s *Service) Category(ctx context.Context, id uuid.UUID) (models.Category, error) {
	return s.store.Category(ctx, id)
}

// DeleteCategory deletes the category together with its subcategories and records.
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.store.DeleteCategoryByID(ctx, id)
}

// SubCategories returns the subcategories of a category, or all of them
// for uuid.Nil.
func (s *Service) SubCategories(ctx context.Context, categoryID uuid.UUID) ([]models.SubCategory, error) {
	return s.store.SubCategories(ctx, categoryID)
}

func (s *Service) SubCategory(ctx context.Context, id uuid.UUID) (models.SubCategory, error) {
	return s.store.SubCategory(ctx, id)
}

// Records returns the records matching the filter.
func (s *Service) Records(ctx context.Context, filter models.RecordFilter) ([]models.EnergyRecord, error) {
	return s.store.QueryRecords(ctx, filter)
}

func (s *Service) Record(ctx context.Context, id uuid.UUID) (models.EnergyRecord, error) {
	return s.store.Record(ctx, id)
}
