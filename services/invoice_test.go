package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"savanna/models"
)

func TestRenderInvoice(t *testing.T) {
	t.Setenv("SITE_NAME", "Acacia Stays")

	booking := &models.Booking{
		Reference:     "SVN-INVOICE001",
		GuestName:     "Amina Odhiambo",
		GuestEmail:    "amina@example.com",
		CheckIn:       time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 10, 4, 0, 0, 0, 0, time.UTC),
		Nights:        3,
		NumAdults:     2,
		NumChildren:   1,
		TotalAmount:   300,
		Status:        "confirmed",
		PaymentStatus: "paid",
		Room: models.Room{
			Name:      "Standard Double",
			BasePrice: 100,
			Property:  models.Property{Name: "Acacia House"},
		},
	}

	html, err := RenderInvoice(booking)
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "Acacia Stays")
	assert.Contains(t, out, "SVN-INVOICE001")
	assert.Contains(t, out, "Acacia House")
	assert.Contains(t, out, "Standard Double")
	assert.Contains(t, out, "01 Oct 2026")
	assert.Contains(t, out, "04 Oct 2026")
	assert.Contains(t, out, "300.00")
	assert.Contains(t, out, "paid")
}

func TestRenderInvoiceEscapesGuestInput(t *testing.T) {
	booking := &models.Booking{
		Reference:  "SVN-ESCAPE0001",
		GuestName:  "<script>alert(1)</script>",
		GuestEmail: "x@example.com",
		Room:       models.Room{Name: "Room", Property: models.Property{Name: "P"}},
	}

	html, err := RenderInvoice(booking)
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>alert(1)</script>")
}
