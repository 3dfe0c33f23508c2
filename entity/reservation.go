package entity

import (
	"time"

	"gorm.io/gorm"
)

type Reservation struct {
	gorm.Model
	CustomerName string    `json:"customerName"`
	ReservedFor  time.Time `json:"reservedFor"`

	TableID uint  `json:"tableId"`
	Table   Table `json:"-"`
}
