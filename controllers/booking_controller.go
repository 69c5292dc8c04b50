package controllers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"savanna/config"
	"savanna/dto"
	"savanna/middleware"
	"savanna/models"
	"savanna/response"
	"savanna/services"
	"savanna/services/notification"
	"savanna/storage"
	"savanna/validator"
)

const bookingsCacheKey = "bookings:all"

type BookingController struct {
	store    *storage.Store
	bookings *services.BookingService
	rdb      *redis.Client
	notifier notification.Service
}

func NewBookingController(store *storage.Store, bookings *services.BookingService, rdb *redis.Client, notifier notification.Service) *BookingController {
	return &BookingController{
		store:    store,
		bookings: bookings,
		rdb:      rdb,
		notifier: notifier,
	}
}

func toBookingResponse(b models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:        b.ID,
		Reference: b.Reference,
		Guest: dto.ActorResponse{
			Name:  b.GuestName,
			Email: b.GuestEmail,
			Phone: b.GuestPhone,
		},
		Room: dto.BookingRoomResponse{
			ID:         b.Room.ID,
			PropertyID: b.Room.PropertyID,
			Name:       b.Room.Name,
			RoomType:   b.Room.RoomType,
			BasePrice:  b.Room.BasePrice,
		},
		CheckIn:       b.CheckIn.Format("2006-01-02"),
		CheckOut:      b.CheckOut.Format("2006-01-02"),
		Nights:        b.Nights,
		NumAdults:     b.NumAdults,
		NumChildren:   b.NumChildren,
		TotalAmount:   b.TotalAmount,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (bc *BookingController) invalidateCache() {
	if bc.rdb == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, bc.rdb, bookingsCacheKey)
}

// CreateBooking is the public funnel endpoint. Authenticated callers may omit
// guest contact fields; anonymous callers must provide them.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	authUserID := middleware.CurrentUserID(c)
	if err := validator.ValidateBookingRequest(&req, authUserID != nil); err != nil {
		response.FromError(c, err)
		return
	}

	booking, err := bc.bookings.CreateBooking(req, authUserID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	bc.invalidateCache()
	if bc.notifier != nil {
		_ = bc.notifier.SendMessage(notification.NewBookingEvent(booking.Reference, booking.TotalAmount).Build())
	}

	response.Created(c, toBookingResponse(*booking))
}

// GetBookings lists all bookings for the admin table, cached and filterable
// by status, reference and guest email.
func (bc *BookingController) GetBookings(c *gin.Context) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	statusFilter := c.Query("status")
	referenceFilter := c.Query("reference")
	emailFilter := strings.ToLower(c.Query("email"))

	var allBookings []models.Booking
	cached := false
	if bc.rdb != nil {
		if err := services.GetFromRedis(config.Ctx, bc.rdb, bookingsCacheKey, &allBookings); err == nil && len(allBookings) > 0 {
			cached = true
		}
	}
	if !cached {
		if err := bc.store.DB().Preload("Room").Order("created_at DESC").Find(&allBookings).Error; err != nil {
			response.ServerError(c)
			return
		}
		if bc.rdb != nil {
			_ = services.SetToRedis(config.Ctx, bc.rdb, bookingsCacheKey, allBookings, 10*time.Minute)
		}
	}

	filtered := make([]models.Booking, 0, len(allBookings))
	for _, b := range allBookings {
		if statusFilter != "" && b.Status != statusFilter {
			continue
		}
		if referenceFilter != "" && !strings.Contains(b.Reference, strings.ToUpper(referenceFilter)) {
			continue
		}
		if emailFilter != "" && !strings.Contains(strings.ToLower(b.GuestEmail), emailFilter) {
			continue
		}
		filtered = append(filtered, b)
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Booking{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(filtered))
	for _, b := range filtered {
		bookingResponses = append(bookingResponses, toBookingResponse(b))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, total)
}

func (bc *BookingController) GetBookingDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	booking, err := bc.store.GetBooking(uint(id))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, toBookingResponse(*booking))
}

// ChangeBookingStatus overwrites the status with the admin-supplied value.
func (bc *BookingController) ChangeBookingStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	var req dto.BookingStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "status is required")
		return
	}

	booking, err := bc.bookings.UpdateStatus(uint(id), req.Status)
	if err != nil {
		response.FromError(c, err)
		return
	}

	bc.invalidateCache()
	response.Success(c, toBookingResponse(*booking))
}

func (bc *BookingController) CheckInBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	booking, err := bc.bookings.CheckIn(uint(id))
	if err != nil {
		response.FromError(c, err)
		return
	}

	bc.invalidateCache()
	response.Success(c, toBookingResponse(*booking))
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid booking id")
		return
	}

	if err := bc.store.DeleteBooking(uint(id)); err != nil {
		response.FromError(c, err)
		return
	}

	bc.invalidateCache()
	response.Success(c, gin.H{"message": fmt.Sprintf("booking %d deleted", id)})
}

// GetMyBookings partitions the caller's bookings into upcoming, past and
// cancelled. The user id comes from the token, or from user_id for the
// legacy query-parameter form.
func (bc *BookingController) GetMyBookings(c *gin.Context) {
	var userID uint
	if authID := middleware.CurrentUserID(c); authID != nil {
		userID = *authID
	}
	if idStr := c.Query("user_id"); idStr != "" {
		parsed, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			response.BadRequest(c, "invalid user_id")
			return
		}
		userID = uint(parsed)
	}
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	upcoming, past, cancelled, err := bc.bookings.PartitionForUser(userID, time.Now())
	if err != nil {
		response.FromError(c, err)
		return
	}

	result := dto.MyBookingsResponse{
		Upcoming:  make([]dto.BookingResponse, 0, len(upcoming)),
		Past:      make([]dto.BookingResponse, 0, len(past)),
		Cancelled: make([]dto.BookingResponse, 0, len(cancelled)),
	}
	for _, b := range upcoming {
		result.Upcoming = append(result.Upcoming, toBookingResponse(b))
	}
	for _, b := range past {
		result.Past = append(result.Past, toBookingResponse(b))
	}
	for _, b := range cancelled {
		result.Cancelled = append(result.Cancelled, toBookingResponse(b))
	}

	response.Success(c, result)
}
