package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"savanna/dto"
	"savanna/models"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("amina@example.com"))
	assert.NoError(t, ValidateEmail("a.b+tag@sub.example.co.ke"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@tld"))
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, ValidatePhone(""))
	assert.NoError(t, ValidatePhone("+254712345678"))
	assert.NoError(t, ValidatePhone("0712345678"))
	assert.Error(t, ValidatePhone("12ab34"))
	assert.Error(t, ValidatePhone("123"))
}

func TestValidateBookingRequestGuestContact(t *testing.T) {
	base := dto.CreateBookingRequest{
		RoomID:   1,
		CheckIn:  "2026-10-01",
		CheckOut: "2026-10-03",
	}

	// Anonymous callers must name a guest with a valid email.
	req := base
	require.Error(t, ValidateBookingRequest(&req, false))

	req = base
	req.GuestName = "Amina"
	require.Error(t, ValidateBookingRequest(&req, false))

	req.GuestEmail = "amina@example.com"
	require.NoError(t, ValidateBookingRequest(&req, false))

	// Authenticated callers may omit both.
	req = base
	require.NoError(t, ValidateBookingRequest(&req, true))
}

func TestValidateBookingRequestRequiredFields(t *testing.T) {
	req := dto.CreateBookingRequest{GuestName: "A", GuestEmail: "a@example.com"}
	require.Error(t, ValidateBookingRequest(&req, false))

	req.RoomID = 1
	require.Error(t, ValidateBookingRequest(&req, false))

	req.CheckIn = "2026-10-01"
	require.Error(t, ValidateBookingRequest(&req, false))

	req.CheckOut = "2026-10-03"
	require.NoError(t, ValidateBookingRequest(&req, false))

	req.NumChildren = -1
	require.Error(t, ValidateBookingRequest(&req, false))
}

func TestValidateMessage(t *testing.T) {
	msg := models.Message{Name: "Amina", Email: "amina@example.com", Body: "Hello"}
	require.NoError(t, ValidateMessage(&msg))

	require.Error(t, ValidateMessage(&models.Message{Email: "amina@example.com", Body: "Hello"}))
	require.Error(t, ValidateMessage(&models.Message{Name: "Amina", Body: "Hello"}))
	require.Error(t, ValidateMessage(&models.Message{Name: "Amina", Email: "bad", Body: "Hello"}))
	require.Error(t, ValidateMessage(&models.Message{Name: "Amina", Email: "amina@example.com"}))
}

func TestIsKnownMessageStatus(t *testing.T) {
	for _, status := range []string{"new", "read", "replied", "archived"} {
		assert.True(t, IsKnownMessageStatus(status))
	}
	assert.False(t, IsKnownMessageStatus("spam"))
	assert.False(t, IsKnownMessageStatus(""))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("longenough"))
}
