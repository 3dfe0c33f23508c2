package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CartItem is one addition to a participant's cart. CartID is unique per
// addition, so the same dish added twice stays two distinguishable entries.
// Name and Price are copied from the menu at add time; the entry never
// changes afterwards.
type CartItem struct {
	CartID     string `json:"cartId"`
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
}

// CartItems is embedded in OrderConfirmation as a JSON text column.
type CartItems []CartItem

func (c CartItems) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *CartItems) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*c = nil
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported type for CartItems: %T", value)
	}
}
