package models

import "time"

type Product struct {
	ID       int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Image    string    `gorm:"not null" json:"image"`
	Category string    `gorm:"not null;index" json:"category"`
	NewPrice float64   `json:"new_price"`
	OldPrice float64   `json:"old_price"`
	Date     time.Time `json:"date"`
	// Kept for the storefront payload even though no endpoint ever clears it.
	Available bool `gorm:"default:true" json:"available"`
}
