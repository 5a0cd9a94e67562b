package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EnergyRecord is the energy produced for a subcategory in one year.
type EnergyRecord struct {
	DefaultModel
	Year          int             `gorm:"not null;index"`
	ValueKWh      decimal.Decimal `gorm:"column:value_kwh;type:DECIMAL(14,2);not null"`
	CategoryID    uuid.UUID       `gorm:"not null;index"`
	Category      Category        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	SubCategoryID uuid.UUID       `gorm:"not null;index"`
	SubCategory   SubCategory     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// Values are stored with two decimal places.
const valuePlaces = 2

func (r *EnergyRecord) BeforeSave(_ *gorm.DB) error {
	r.ValueKWh = r.ValueKWh.Round(valuePlaces)
	return nil
}

func (r *EnergyRecord) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)
	return r.checkIntegrity(tx)
}

// checkIntegrity verifies that the subcategory exists and belongs to
// the category of the record.
func (r *EnergyRecord) checkIntegrity(tx *gorm.DB) error {
	var subCategory SubCategory
	err := tx.Select("id", "category_id").First(&subCategory, "id = ?", r.SubCategoryID).Error
	if err != nil {
		return err
	}

	if subCategory.CategoryID != r.CategoryID {
		return ErrSubCategoryMismatch
	}

	return nil
}
