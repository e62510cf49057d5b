package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Promotion struct {
	gorm.Model
	Title              string         `gorm:"size:150;not null" json:"title"`
	Description        string         `gorm:"type:text" json:"description"`
	StartDate          datatypes.Date `gorm:"not null;index" json:"startDate"`
	EndDate            datatypes.Date `gorm:"not null;index" json:"endDate"`
	DiscountPercentage int            `gorm:"not null" json:"discountPercentage"`
	Products           []Product      `gorm:"many2many:promotion_products" json:"products"`
}
