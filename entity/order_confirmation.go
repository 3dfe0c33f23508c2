package entity

import (
	"time"
)

// OrderConfirmation is the shared per-(table, participant) record that group
// consensus runs on. At most one live row exists per pair, enforced by the
// composite unique index plus upsert-on-conflict writes.
//
// Deliberately not gorm.Model: rows must be hard-deleted after an order is
// placed, otherwise a soft-delete tombstone would keep holding the unique
// key and block the table's next ordering round.
type OrderConfirmation struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	TableID   uint      `json:"tableId" gorm:"uniqueIndex:idx_confirmation_table_user"`
	UserID    string    `json:"userId" gorm:"uniqueIndex:idx_confirmation_table_user;size:64"`
	Cart      CartItems `json:"cart" gorm:"type:text"`
	Confirmed bool      `json:"confirmed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
