package models

import (
	"strings"

	"github.com/energy-monitoring/backend/internal/names"
	"gorm.io/gorm"
)

// Category is a top-level grouping of energy sources, e.g. "Solar".
//
// Category names are unique regardless of case and whitespace. The
// uniqueness is enforced by a unique index on the name key.
type Category struct {
	DefaultModel
	Name        string `gorm:"not null"`
	NameKey     string `gorm:"uniqueIndex:category_name_key;not null" json:"-"`
	Description string
}

// BeforeSave stores the name in its normalized form together with
// the key it is compared by.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = names.Normalize(c.Name)
	c.NameKey = names.Key(c.Name)
	c.Description = strings.TrimSpace(c.Description)

	return nil
}
