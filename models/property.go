package models

import (
	"time"

	"github.com/lib/pq"
)

type Property struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	Description string         `json:"description" gorm:"type:text"`
	Amenities   pq.StringArray `json:"amenities" gorm:"type:text[]"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms       []Room         `json:"rooms,omitempty" gorm:"foreignKey:PropertyID"`
}
