package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// External auth subject id (e.g. Firebase UID). Optional; orders can be
	// placed anonymously.
	UserUID *string `gorm:"size:128" json:"user_uid"`

	Email         string          `gorm:"size:254;not null" json:"email"`
	CustomerName  string          `gorm:"size:255;not null" json:"nombre_cliente"`
	Address       string          `gorm:"type:text" json:"direccion"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	PaymentMethod string          `gorm:"size:50;not null" json:"metodo_pago"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"creado_en"`

	// Items are owned by the order and removed with it.
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

type OrderItem struct {
	ID        uint `gorm:"primaryKey" json:"-"`
	OrderID   uint `gorm:"index;not null" json:"-"`
	ProductID uint `gorm:"not null" json:"producto"`
	Quantity  int  `gorm:"not null" json:"cantidad"`

	// Price captured at order time, not a live reference to the product.
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio_unitario"`

	// Derived, never stored.
	Subtotal decimal.Decimal `gorm:"-" json:"subtotal"`

	// A product referenced by an order item cannot be deleted.
	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
}

// ComputeSubtotal fills the derived Subtotal field.
func (i *OrderItem) ComputeSubtotal() {
	i.Subtotal = decimal.NewFromInt(int64(i.Quantity)).Mul(i.UnitPrice)
}

// ComputeSubtotals fills the derived Subtotal field of every item.
func (o *Order) ComputeSubtotals() {
	for idx := range o.Items {
		o.Items[idx].ComputeSubtotal()
	}
}
