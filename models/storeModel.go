package models

import "time"

type Store struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	City        string    `gorm:"size:100" json:"city"`
	Address     string    `gorm:"type:text" json:"address"`
	Description string    `gorm:"type:text" json:"description"`
	OwnerID     uint      `gorm:"not null;index" json:"ownerId"`
	Owner       *User     `gorm:"constraint:OnDelete:CASCADE" json:"owner,omitempty"`
	Products    []Product `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}
