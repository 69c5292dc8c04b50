package dto

// MpesaInitiateRequest starts an STK push for a booking.
type MpesaInitiateRequest struct {
	BookingID uint   `json:"bookingId" binding:"required"`
	Phone     string `json:"phone" binding:"required,phone"`
}

type MpesaTestRequest struct {
	ConsumerKey    string `json:"consumerKey" binding:"required"`
	ConsumerSecret string `json:"consumerSecret" binding:"required"`
	Environment    string `json:"environment"`
}

type PaypalInitiateRequest struct {
	BookingID uint `json:"bookingId" binding:"required"`
}

type PaypalTestRequest struct {
	ClientID     string `json:"clientId" binding:"required"`
	ClientSecret string `json:"clientSecret" binding:"required"`
	Environment  string `json:"environment"`
}

// MpesaCallbackPayload mirrors the Daraja STK callback envelope.
type MpesaCallbackPayload struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []MpesaCallbackItem `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

type MpesaCallbackItem struct {
	Name  string      `json:"Name"`
	Value interface{} `json:"Value,omitempty"`
}
