package entity

import (
	"gorm.io/gorm"
)

// Kitchen pipeline for a single item, in serving order.
const (
	ItemStatusPending   = "pending"
	ItemStatusCooking   = "cooking"
	ItemStatusReady     = "ready"
	ItemStatusServed    = "served"
	ItemStatusCompleted = "completed"
)

// ItemStatuses lists the pipeline stages in progression order.
var ItemStatuses = []string{
	ItemStatusPending,
	ItemStatusCooking,
	ItemStatusReady,
	ItemStatusServed,
	ItemStatusCompleted,
}

type OrderItem struct {
	gorm.Model
	Name      string `json:"name"` // copied from menu at order time
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
