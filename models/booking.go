package models

import (
	"time"
)

// Booking keeps the price agreed at creation time. Later room price edits
// never touch TotalAmount.
type Booking struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Reference     string    `json:"reference" gorm:"unique;size:20"`
	RoomID        uint      `json:"roomId" gorm:"index"`
	Room          Room      `json:"room" gorm:"foreignKey:RoomID"`
	UserID        *uint     `json:"userId"`
	User          *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	GuestName     string    `json:"guestName"`
	GuestEmail    string    `json:"guestEmail"`
	GuestPhone    string    `json:"guestPhone,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	Nights        int       `json:"nights"`
	NumAdults     int       `json:"numAdults" gorm:"default:1"`
	NumChildren   int       `json:"numChildren" gorm:"default:0"`
	TotalAmount   float64   `json:"totalAmount"`
	Status        string    `json:"status" gorm:"size:20;default:'pending'"`
	PaymentStatus string    `json:"paymentStatus" gorm:"size:20;default:'unpaid'"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
