package models

import (
	"strings"

	"github.com/energy-monitoring/backend/internal/names"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubCategory refines a Category, e.g. "Photovoltaic" for "Solar".
//
// Names are unique per category. The same name can be used in
// different categories.
type SubCategory struct {
	DefaultModel
	Name        string `gorm:"not null"`
	NameKey     string `gorm:"uniqueIndex:subcategory_category_name_key,priority:2;not null" json:"-"`
	Description string
	CategoryID  uuid.UUID `gorm:"uniqueIndex:subcategory_category_name_key,priority:1;not null"`
	Category    Category  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (SubCategory) TableName() string {
	return "subcategories"
}

func (s *SubCategory) BeforeSave(_ *gorm.DB) error {
	s.Name = names.Normalize(s.Name)
	s.NameKey = names.Key(s.Name)
	s.Description = strings.TrimSpace(s.Description)

	return nil
}

func (s *SubCategory) BeforeCreate(tx *gorm.DB) error {
	_ = s.DefaultModel.BeforeCreate(tx)

	return tx.Select("id").First(&Category{}, "id = ?", s.CategoryID).Error
}
