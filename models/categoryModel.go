package models

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name" binding:"required,max=100"`
	Description string    `gorm:"type:text" json:"description"`
	Products    []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

// CategoryCount is a category together with the number of products filed under it.
type CategoryCount struct {
	Category     Category `json:"category"`
	ProductCount int64    `json:"productCount"`
}
