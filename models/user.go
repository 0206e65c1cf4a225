package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// CartSlots is the fixed size of every user's cart map. Slot indexes align
// with product ids by storefront convention only; nothing enforces it.
const CartSlots = 300

// CartData is the dense slot→quantity map stored as a single JSON column.
type CartData map[int]int

// NewCartData returns a cart with all slots present and zeroed.
func NewCartData() CartData {
	cart := make(CartData, CartSlots)
	for i := 0; i < CartSlots; i++ {
		cart[i] = 0
	}
	return cart
}

func (c CartData) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *CartData) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	case nil:
		*c = nil
		return nil
	default:
		return fmt.Errorf("cannot scan cart data from %T", value)
	}
}

type User struct {
	ID       string   `gorm:"primaryKey" json:"id"`
	Name     string   `json:"name"`
	Email    string   `gorm:"unique;not null" json:"email"`
	Password string   `gorm:"not null" json:"-"`
	CartData CartData `gorm:"type:jsonb" json:"cartData"`
	// Bumped on every cart write so concurrent mutations can detect each other.
	CartVersion int       `json:"-"`
	Date        time.Time `json:"date"`
}
