package builders

import (
	"time"

	"savanna/models"
)

// BookingBuilder assembles a booking step by step.
type BookingBuilder struct {
	booking *models.Booking
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

func (b *BookingBuilder) WithReference(reference string) *BookingBuilder {
	b.booking.Reference = reference
	return b
}

func (b *BookingBuilder) WithRoom(roomID uint) *BookingBuilder {
	b.booking.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithUser(userID *uint) *BookingBuilder {
	b.booking.UserID = userID
	return b
}

func (b *BookingBuilder) WithGuestInfo(name, email, phone string) *BookingBuilder {
	b.booking.GuestName = name
	b.booking.GuestEmail = email
	b.booking.GuestPhone = phone
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time, nights int) *BookingBuilder {
	b.booking.CheckIn = checkIn
	b.booking.CheckOut = checkOut
	b.booking.Nights = nights
	return b
}

func (b *BookingBuilder) WithGuests(adults, children int) *BookingBuilder {
	b.booking.NumAdults = adults
	b.booking.NumChildren = children
	return b
}

func (b *BookingBuilder) WithTotalAmount(totalAmount float64) *BookingBuilder {
	b.booking.TotalAmount = totalAmount
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.booking.Notes = notes
	return b
}

func (b *BookingBuilder) WithStatus(status, paymentStatus string) *BookingBuilder {
	b.booking.Status = status
	b.booking.PaymentStatus = paymentStatus
	return b
}

func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
