package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"savanna/constants"
	"savanna/response"
	"savanna/services"
	"savanna/storage"
)

type InvoiceController struct {
	store *storage.Store
}

func NewInvoiceController(store *storage.Store) *InvoiceController {
	return &InvoiceController{store: store}
}

// GetInvoice renders the printable HTML invoice for a booking. Admins can
// fetch any invoice; users only their own.
func (ic *InvoiceController) GetInvoice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	booking, err := ic.store.GetBooking(uint(id))
	if err != nil {
		response.FromError(c, err)
		return
	}

	role, _ := c.Get("userRole")
	if role != constants.RoleAdmin {
		userID, _ := c.Get("userID")
		if booking.UserID == nil || userID == nil || *booking.UserID != userID.(uint) {
			response.Forbidden(c)
			return
		}
	}

	html, err := services.RenderInvoice(booking)
	if err != nil {
		response.ServerError(c)
		return
	}

	c.Data(200, "text/html; charset=utf-8", html)
}
