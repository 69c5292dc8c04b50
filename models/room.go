package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Room struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	PropertyID   uint           `json:"propertyId" gorm:"index"`
	Name         string         `json:"name" gorm:"not null"`
	RoomType     string         `json:"roomType"`
	BasePrice    float64        `json:"basePrice"`
	MaxOccupancy int            `json:"maxOccupancy" gorm:"default:1"`
	Size         string         `json:"size"`
	Amenities    pq.StringArray `json:"amenities" gorm:"type:text[]"`
	Photos       pq.StringArray `json:"photos" gorm:"type:text[]"`
	Available    bool           `json:"available" gorm:"default:true"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Property     Property       `json:"-" gorm:"foreignKey:PropertyID"`
}

func (r *Room) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("room name is required")
	}
	if r.BasePrice < 0 {
		return fmt.Errorf("base price must not be negative")
	}
	if r.MaxOccupancy < 1 {
		return fmt.Errorf("max occupancy must be at least 1")
	}
	return nil
}
