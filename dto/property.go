package dto

import "time"

type PropertyRequest struct {
	Name        string   `json:"name" binding:"required"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
}

type PropertyResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Description string    `json:"description"`
	Amenities   []string  `json:"amenities"`
	Images      []string  `json:"images"`
	RoomCount   int       `json:"roomCount"`
	MinPrice    float64   `json:"minPrice"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type RoomRequest struct {
	PropertyID   uint     `json:"propertyId" binding:"required"`
	Name         string   `json:"name" binding:"required"`
	RoomType     string   `json:"roomType"`
	BasePrice    float64  `json:"basePrice"`
	MaxOccupancy int      `json:"maxOccupancy"`
	Size         string   `json:"size"`
	Amenities    []string `json:"amenities"`
	Photos       []string `json:"photos"`
	Available    *bool    `json:"available"`
}

type RoomResponse struct {
	ID           uint     `json:"id"`
	PropertyID   uint     `json:"propertyId"`
	Name         string   `json:"name"`
	RoomType     string   `json:"roomType"`
	BasePrice    float64  `json:"basePrice"`
	MaxOccupancy int      `json:"maxOccupancy"`
	Size         string   `json:"size"`
	Amenities    []string `json:"amenities"`
	Photos       []string `json:"photos"`
	Available    bool     `json:"available"`
}
