package dto

import "time"

type CreateBookingRequest struct {
	RoomID      uint   `json:"roomId"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
	GuestName   string `json:"guestName"`
	GuestEmail  string `json:"guestEmail"`
	GuestPhone  string `json:"guestPhone"`
	Notes       string `json:"notes"`
	NumAdults   int    `json:"numAdults"`
	NumChildren int    `json:"numChildren"`
}

type BookingStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

type BookingRoomResponse struct {
	ID         uint    `json:"id"`
	PropertyID uint    `json:"propertyId"`
	Name       string  `json:"name"`
	RoomType   string  `json:"roomType"`
	BasePrice  float64 `json:"basePrice"`
}

type BookingResponse struct {
	ID            uint                `json:"id"`
	Reference     string              `json:"reference"`
	Guest         ActorResponse       `json:"guest"`
	Room          BookingRoomResponse `json:"room"`
	CheckIn       string              `json:"checkIn"`
	CheckOut      string              `json:"checkOut"`
	Nights        int                 `json:"nights"`
	NumAdults     int                 `json:"numAdults"`
	NumChildren   int                 `json:"numChildren"`
	TotalAmount   float64             `json:"totalAmount"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"paymentStatus"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// MyBookingsResponse partitions a user's bookings for the account page.
type MyBookingsResponse struct {
	Upcoming  []BookingResponse `json:"upcoming"`
	Past      []BookingResponse `json:"past"`
	Cancelled []BookingResponse `json:"cancelled"`
}
