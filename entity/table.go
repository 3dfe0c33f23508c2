package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	Code  string `json:"code" gorm:"uniqueIndex;size:32"` // printed inside the table QR
	Name  string `json:"name"`
	Seats int    `json:"seats"`

	Orders       []Order       `json:"-"`
	Reservations []Reservation `json:"-"`
}
