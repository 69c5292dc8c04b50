package controllers

import (
	"github.com/gin-gonic/gin"

	"savanna/constants"
	"savanna/dto"
	"savanna/response"
	"savanna/services"
	"savanna/services/payment"
	"savanna/storage"
	"savanna/utils"
)

type PaymentController struct {
	store    *storage.Store
	bookings *services.BookingService
	mpesa    *payment.Mpesa
	paypal   *payment.Paypal
	stripe   *payment.Stripe
}

func NewPaymentController(store *storage.Store, bookings *services.BookingService) *PaymentController {
	return &PaymentController{
		store:    store,
		bookings: bookings,
		mpesa:    payment.NewMpesa(store),
		paypal:   payment.NewPaypal(store),
		stripe:   payment.NewStripe(),
	}
}

func (pc *PaymentController) initiate(c *gin.Context, gateway payment.Gateway, bookingID uint, params map[string]string) {
	booking, err := pc.store.GetBooking(bookingID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	result, err := gateway.Initiate(booking, params)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if booking.PaymentStatus == constants.PaymentStatusUnpaid {
		_ = pc.store.UpdateBookingPaymentStatus(booking.ID, constants.PaymentStatusPending)
	}

	response.Success(c, result)
}

// MpesaInitiate starts an STK push to the guest's phone for a booking.
func (pc *PaymentController) MpesaInitiate(c *gin.Context) {
	var req dto.MpesaInitiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "bookingId and phone are required")
		return
	}

	pc.initiate(c, pc.mpesa, req.BookingID, map[string]string{"phone": req.Phone})
}

// MpesaCallback receives the Daraja result. It always ACKs so Safaricom does
// not retry; internal failures are logged, not surfaced.
func (pc *PaymentController) MpesaCallback(c *gin.Context) {
	ack := gin.H{"ResultCode": 0, "ResultDesc": "Accepted"}

	var payload dto.MpesaCallbackPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.LogError("mpesa callback: bad payload: %v", err)
		c.JSON(200, ack)
		return
	}

	result, err := payment.ParseCallback(payload)
	if err != nil {
		utils.LogError("mpesa callback: %v", err)
		c.JSON(200, ack)
		return
	}

	if result.Paid {
		if err := pc.bookings.MarkPaidByReference(result.BookingID); err != nil {
			utils.LogError("mpesa callback: booking %d: %v", result.BookingID, err)
		}
	} else {
		utils.LogInfo("mpesa callback: booking %d not paid: %s", result.BookingID, result.Detail)
	}

	c.JSON(200, ack)
}

// MpesaTest verifies Daraja credentials by requesting an OAuth token.
func (pc *PaymentController) MpesaTest(c *gin.Context) {
	var req dto.MpesaTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "consumerKey and consumerSecret are required")
		return
	}

	if err := pc.mpesa.Test(req.ConsumerKey, req.ConsumerSecret); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "M-Pesa credentials are valid"})
}

// PaypalInitiate creates a PayPal order and returns the approval link.
func (pc *PaymentController) PaypalInitiate(c *gin.Context) {
	var req dto.PaypalInitiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "bookingId is required")
		return
	}

	pc.initiate(c, pc.paypal, req.BookingID, nil)
}

func (pc *PaymentController) PaypalTest(c *gin.Context) {
	var req dto.PaypalTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "clientId and clientSecret are required")
		return
	}

	if err := pc.paypal.Test(req.ClientID, req.ClientSecret); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "PayPal credentials are valid"})
}

// StripeInitiate is a placeholder until Stripe support lands.
func (pc *PaymentController) StripeInitiate(c *gin.Context) {
	_, err := pc.stripe.Initiate(nil, nil)
	response.FromError(c, err)
}
