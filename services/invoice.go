package services

import (
	"bytes"
	"html/template"

	"savanna/config"
	"savanna/models"
	"savanna/types"
)

var invoiceTmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Invoice {{.Reference}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; color: #222; }
h1 { font-size: 22px; }
.header { display: flex; justify-content: space-between; border-bottom: 2px solid #222; padding-bottom: 12px; }
table { width: 100%; border-collapse: collapse; margin-top: 24px; }
th, td { text-align: left; padding: 8px 6px; border-bottom: 1px solid #ddd; }
.total td { font-weight: bold; border-top: 2px solid #222; }
.status { margin-top: 18px; }
.badge { display: inline-block; padding: 3px 10px; border-radius: 4px; background: #eee; }
@media print { body { margin: 10px; } }
</style>
</head>
<body>
<div class="header">
	<div>
		<h1>{{.SiteName}}</h1>
		<p>Invoice for booking <strong>{{.Reference}}</strong></p>
	</div>
	<div>
		<p>Issued: {{.IssuedAt}}</p>
	</div>
</div>
<p><strong>Billed to:</strong> {{.GuestName}} &lt;{{.GuestEmail}}&gt;</p>
<table>
	<tr><th>Description</th><th>Details</th></tr>
	<tr><td>Property</td><td>{{.PropertyName}}</td></tr>
	<tr><td>Room</td><td>{{.RoomName}}</td></tr>
	<tr><td>Check-in</td><td>{{.CheckIn}}</td></tr>
	<tr><td>Check-out</td><td>{{.CheckOut}}</td></tr>
	<tr><td>Nights</td><td>{{.Nights}}</td></tr>
	<tr><td>Guests</td><td>{{.NumAdults}} adults, {{.NumChildren}} children</td></tr>
	<tr><td>Nightly rate</td><td>{{.NightlyRate}}</td></tr>
	<tr class="total"><td>Total</td><td>{{.TotalAmount}}</td></tr>
</table>
<p class="status">Booking status: <span class="badge">{{.Status}}</span>
Payment: <span class="badge">{{.PaymentStatus}}</span></p>
</body>
</html>
`))

// RenderInvoice produces the printable HTML document for a booking. The
// booking must have Room and Room.Property preloaded.
func RenderInvoice(booking *models.Booking) ([]byte, error) {
	nightly := booking.Room.BasePrice
	data := types.InvoiceData{
		SiteName:      config.GetEnvDefault("SITE_NAME", "Savanna Stays"),
		Reference:     booking.Reference,
		IssuedAt:      booking.CreatedAt.Format("02 Jan 2006"),
		GuestName:     booking.GuestName,
		GuestEmail:    booking.GuestEmail,
		PropertyName:  booking.Room.Property.Name,
		RoomName:      booking.Room.Name,
		CheckIn:       booking.CheckIn.Format("02 Jan 2006"),
		CheckOut:      booking.CheckOut.Format("02 Jan 2006"),
		Nights:        booking.Nights,
		NumAdults:     booking.NumAdults,
		NumChildren:   booking.NumChildren,
		NightlyRate:   FormatCurrency(nightly),
		TotalAmount:   FormatCurrency(booking.TotalAmount),
		Status:        booking.Status,
		PaymentStatus: booking.PaymentStatus,
	}

	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
