package types

// InvoiceData is everything the invoice template needs to render a
// self-contained printable document.
type InvoiceData struct {
	SiteName      string
	Reference     string
	IssuedAt      string
	GuestName     string
	GuestEmail    string
	PropertyName  string
	RoomName      string
	CheckIn       string
	CheckOut      string
	Nights        int
	NumAdults     int
	NumChildren   int
	NightlyRate   string
	TotalAmount   string
	Status        string
	PaymentStatus string
}
