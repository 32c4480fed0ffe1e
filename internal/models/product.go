package models

import (
	"strings"

	"gorm.io/gorm"
)

// Product is one orderable catalog entry. Prices are read fresh on every
// request so catalog updates take effect immediately.
type Product struct {
	gorm.Model

	Name  string  `json:"name" gorm:"uniqueIndex" validate:"required"`
	Price float64 `json:"price" gorm:"not null" validate:"gte=0"`
}

// NormalizedName is the matching key between parsed order lines and the
// catalog: lowercased and trimmed.
func (p *Product) NormalizedName() string {
	return strings.ToLower(strings.TrimSpace(p.Name))
}

// BeforeCreate trims the display name so catalog entries stay matchable.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	return nil
}
