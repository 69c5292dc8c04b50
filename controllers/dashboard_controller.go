package controllers

import (
	"github.com/gin-gonic/gin"

	"savanna/constants"
	"savanna/models"
	"savanna/response"
	"savanna/storage"
)

type DashboardController struct {
	store *storage.Store
}

func NewDashboardController(store *storage.Store) *DashboardController {
	return &DashboardController{store: store}
}

// GetStats aggregates the headline numbers for the admin dashboard.
func (dc *DashboardController) GetStats(c *gin.Context) {
	db := dc.store.DB()

	var propertyCount, roomCount, bookingCount, pendingCount, messageCount int64
	var revenue float64

	if err := db.Model(&models.Property{}).Count(&propertyCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	db.Model(&models.Room{}).Count(&roomCount)
	db.Model(&models.Booking{}).Count(&bookingCount)
	db.Model(&models.Booking{}).Where("status = ?", constants.BookingStatusPending).Count(&pendingCount)
	db.Model(&models.Message{}).Where("status = ?", constants.MessageStatusNew).Count(&messageCount)
	db.Model(&models.Booking{}).
		Where("payment_status = ?", constants.PaymentStatusPaid).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue)

	response.Success(c, gin.H{
		"properties":      propertyCount,
		"rooms":           roomCount,
		"bookings":        bookingCount,
		"pendingBookings": pendingCount,
		"newMessages":     messageCount,
		"totalRevenue":    revenue,
	})
}
