package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;unique" json:"nombre"`
	Slug string `gorm:"size:100;not null;unique" json:"slug"`

	// Deleting a category removes its products as well.
	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"productos"`
}
