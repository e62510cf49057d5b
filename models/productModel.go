package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Url       string    `gorm:"size:1024;not null" json:"url"`
	ProductID uint      `gorm:"not null;index" json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Product rows are hard-deleted; the repository removes dependents in the same
// transaction.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:200;not null" json:"name"`
	NameEn      string          `gorm:"size:200" json:"nameEn"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;index" json:"price"`
	CategoryID  uint            `gorm:"not null;index" json:"categoryId"`
	Category    Category        `json:"category"`
	StoreID     uint            `gorm:"not null;index" json:"storeId"`
	Store       Store           `json:"store"`
	IsAvailable bool            `gorm:"not null;index" json:"isAvailable"`
	Images      []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	CreatedAt   time.Time       `gorm:"index;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
