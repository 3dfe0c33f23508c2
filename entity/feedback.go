package entity

import (
	"gorm.io/gorm"
)

type Feedback struct {
	gorm.Model
	Rating  int    `json:"rating"` // 1..5 stars
	Comment string `json:"comment"`

	TableID uint  `json:"tableId"`
	Table   Table `json:"-"`
}
