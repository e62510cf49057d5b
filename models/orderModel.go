package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type Order struct {
	gorm.Model
	UserID   uint           `gorm:"not null;index" json:"userId"`
	Status   OrderStatus    `gorm:"size:20;not null" json:"status"`
	Products []OrderProduct `json:"products" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderProduct captures the unit price at the time the order was placed.
type OrderProduct struct {
	gorm.Model
	OrderID   uint            `gorm:"not null;index" json:"orderId"`
	ProductID uint            `gorm:"not null;index" json:"productId"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
}
