package models

import (
	"context"
	"errors"

	"github.com/energy-monitoring/backend/internal/names"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordFilter limits the records returned by Store.QueryRecords.
// Zero values do not filter.
type RecordFilter struct {
	CategoryID    uuid.UUID
	SubCategoryID uuid.UUID
	Year          int
}

// Store persists categories, subcategories and energy records.
//
// It is safe for concurrent use.
type Store struct {
	db *gorm.DB
}

// NewStore returns a Store backed by db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindCategoryByNormalizedName returns the category whose name matches name
// regardless of case and whitespace, or nil if there is none.
func (s *Store) FindCategoryByNormalizedName(ctx context.Context, name string) (*Category, error) {
	var category Category
	err := s.db.WithContext(ctx).First(&category, "name_key = ?", names.Key(name)).Error
	if errors.Is(err, ErrResourceNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (s *Store) InsertCategory(ctx context.Context, name, description string) (Category, error) {
	category := Category{Name: name, Description: description}
	err := s.db.WithContext(ctx).Create(&category).Error
	if err != nil {
		return Category{}, err
	}

	return category, nil
}

// Category returns the category with the given ID.
func (s *Store) Category(ctx context.Context, id uuid.UUID) (Category, error) {
	var category Category
	err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error
	return category, err
}

// Categories returns all categories ordered by name.
func (s *Store) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (s *Store) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&Category{}).Count(&count).Error
	return count, err
}

// DeleteCategoryByID deletes a category. Its subcategories and records
// are removed by the database. The return value is false if there
// was no category with that ID.
func (s *Store) DeleteCategoryByID(ctx context.Context, id uuid.UUID) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&Category{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// FindSubCategoryByNameAndCategory returns the subcategory of the category
// whose name matches name regardless of case and whitespace, or nil if there is none.
func (s *Store) FindSubCategoryByNameAndCategory(ctx context.Context, name string, categoryID uuid.UUID) (*SubCategory, error) {
	var subCategory SubCategory
	err := s.db.WithContext(ctx).First(&subCategory, "category_id = ? AND name_key = ?", categoryID, names.Key(name)).Error
	if errors.Is(err, ErrResourceNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &subCategory, nil
}

func (s *Store) InsertSubCategory(ctx context.Context, name, description string, categoryID uuid.UUID) (SubCategory, error) {
	subCategory := SubCategory{Name: name, Description: description, CategoryID: categoryID}
	err := s.db.WithContext(ctx).Create(&subCategory).Error
	if err != nil {
		return SubCategory{}, err
	}

	return subCategory, nil
}

func (s *Store) SubCategory(ctx context.Context, id uuid.UUID) (SubCategory, error) {
	var subCategory SubCategory
	err := s.db.WithContext(ctx).First(&subCategory, "id = ?", id).Error
	return subCategory, err
}

// SubCategories returns the subcategories ordered by name. If categoryID is
// not uuid.Nil, only subcategories of that category are returned.
func (s *Store) SubCategories(ctx context.Context, categoryID uuid.UUID) ([]SubCategory, error) {
	q := s.db.WithContext(ctx).Order("name ASC")
	if categoryID != uuid.Nil {
		q = q.Where("category_id = ?", categoryID)
	}

	var subCategories []SubCategory
	err := q.Find(&subCategories).Error
	return subCategories, err
}

func (s *Store) InsertRecord(ctx context.Context, record EnergyRecord) (EnergyRecord, error) {
	err := s.db.WithContext(ctx).Create(&record).Error
	if err != nil {
		return EnergyRecord{}, err
	}

	return s.Record(ctx, record.ID)
}

// Record returns the record with the given ID, including its category and subcategory.
func (s *Store) Record(ctx context.Context, id uuid.UUID) (EnergyRecord, error) {
	var record EnergyRecord
	err := s.db.WithContext(ctx).
		Preload("Category").
		Preload("SubCategory").
		First(&record, "id = ?", id).Error
	return record, err
}

// QueryRecords returns the records matching the filter, including their
// category and subcategory. Records are ordered by year, newest record
// first within the same year.
func (s *Store) QueryRecords(ctx context.Context, filter RecordFilter) ([]EnergyRecord, error) {
	q := s.db.WithContext(ctx).
		Preload("Category").
		Preload("SubCategory").
		Order("year ASC, created_at DESC")

	if filter.CategoryID != uuid.Nil {
		q = q.Where("category_id = ?", filter.CategoryID)
	}

	if filter.SubCategoryID != uuid.Nil {
		q = q.Where("sub_category_id = ?", filter.SubCategoryID)
	}

	if filter.Year != 0 {
		q = q.Where("year = ?", filter.Year)
	}

	var records []EnergyRecord
	err := q.Find(&records).Error
	return records, err
}

// DeleteRecordByID deletes a record. The return value is false if there
// was no record with that ID.
func (s *Store) DeleteRecordByID(ctx context.Context, id uuid.UUID) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&EnergyRecord{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
