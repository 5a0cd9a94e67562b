package energy

import (
	"context"

	"github.com/energy-monitoring/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordInput holds a yearly measurement to be stored.
type RecordInput struct {
	Year          int
	ValueKWh      decimal.Decimal
	CategoryID    uuid.UUID
	SubCategoryID uuid.UUID
}

// CreateRecord stores a measurement. The category and subcategory must
// exist and the subcategory must belong to the category.
func (s *Service) CreateRecord(ctx context.Context, in RecordInput) (models.EnergyRecord, error) {
	if err := validateYear(in.Year); err != nil {
		return models.EnergyRecord{}, err
	}

	if err := validateValue(in.ValueKWh); err != nil {
		return models.EnergyRecord{}, err
	}

	if _, err := s.store.Category(ctx, in.CategoryID); err != nil {
		return models.EnergyRecord{}, err
	}

	return s.store.InsertRecord(ctx, models.EnergyRecord{
		Year:          in.Year,
		ValueKWh:      in.ValueKWh.Round(2),
		CategoryID:    in.CategoryID,
		SubCategoryID: in.SubCategoryID,
	})
}

// DeleteRecord deletes a record. It returns false if there is no record
// with that ID.
func (s *Service) DeleteRecord(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.store.DeleteRecordByID(ctx, id)
}
