package models

import "time"

// Setting is an admin-editable key/value pair, used for payment-provider
// credentials and SMTP config. Keys are unique; writes upsert.
type Setting struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Category  string    `json:"category" gorm:"size:50;index"`
	Key       string    `json:"key" gorm:"unique;size:100;not null"`
	Value     string    `json:"value" gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
