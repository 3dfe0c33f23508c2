package entity

import (
	"gorm.io/gorm"
)

const OrderStatusPending = "pending"

type Order struct {
	gorm.Model
	Status string `json:"status"`
	Notes  string `json:"notes"`
	Total  int64  `json:"total"`

	TableID uint  `json:"tableId"`
	Table   Table `json:"-"` // preload only when table detail is needed

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
