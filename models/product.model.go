package models

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CategoryID  uint            `gorm:"index;not null" json:"categoria_id"`
	Name        string          `gorm:"size:200;not null" json:"nombre"`
	Slug        string          `gorm:"size:200;not null;uniqueIndex" json:"slug"`
	Description string          `gorm:"type:text" json:"descripcion"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	Stock       int             `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	Image       string          `gorm:"size:255" json:"imagen"` // relative path under MEDIA_ROOT

	// Availability is set by catalog management and is independent of stock.
	Available          bool `gorm:"default:true" json:"disponible"`
	IsNew              bool `gorm:"default:false" json:"es_nuevo"`
	HasDiscount        bool `gorm:"default:false" json:"tiene_descuento"`
	DiscountPercentage int  `gorm:"default:0;check:discount_percentage >= 0" json:"porcentaje_descuento"`

	// Relations
	Category Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`

	// CategoryName mirrors the category's nombre in the representation.
	CategoryName string `gorm:"-" json:"categoria"`
}
