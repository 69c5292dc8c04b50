package services

import (
	"crypto/rand"
	"math"
	"math/big"
	"time"

	"savanna/builders"
	"savanna/config"
	"savanna/constants"
	"savanna/dto"
	"savanna/errors"
	"savanna/models"
	"savanna/services/logger"
	"savanna/storage"
)

const (
	bookingDateLayout   = "2006-01-02"
	referenceCharset    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referenceSuffixSize = 10
)

// BookingService owns the booking lifecycle: validation, pricing, reference
// generation and status changes. It never awaits the confirmation email; a
// failed send is logged and forgotten.
type BookingService struct {
	store  *storage.Store
	logger logger.Logger

	// sendMail is swapped out in tests.
	sendMail func(email, reference string, total float64, checkIn, checkOut string) error
}

func NewBookingService(store *storage.Store, log logger.Logger) *BookingService {
	return &BookingService{
		store:    store,
		logger:   log,
		sendMail: SendBookingEmail,
	}
}

// GenerateReference builds "<prefix>-" plus ten random uppercase alphanumeric
// characters. Collisions are not checked; the unique index on reference is
// the backstop.
func GenerateReference() (string, error) {
	prefix := config.GetEnvDefault("BOOKING_REF_PREFIX", "SVN")
	suffix := make([]byte, referenceSuffixSize)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(referenceCharset))))
		if err != nil {
			return "", err
		}
		suffix[i] = referenceCharset[n.Int64()]
	}
	return prefix + "-" + string(suffix), nil
}

func parseBookingDate(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.NewValidationError(field + " is required")
	}
	t, err := time.Parse(bookingDateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewValidationError(field + " must be a valid date (YYYY-MM-DD)")
	}
	return t, nil
}

// CreateBooking validates the request, snapshots the price and persists the
// booking as pending/unpaid. No persistence happens on any validation
// failure. authUserID is non-nil when the request carried a valid identity;
// guests must supply name and email, and get a placeholder account keyed by
// their email.
func (s *BookingService) CreateBooking(req dto.CreateBookingRequest, authUserID *uint) (*models.Booking, error) {
	if req.RoomID == 0 {
		return nil, errors.NewValidationError("roomId is required")
	}

	checkIn, err := parseBookingDate(req.CheckIn, "checkIn")
	if err != nil {
		return nil, err
	}
	checkOut, err := parseBookingDate(req.CheckOut, "checkOut")
	if err != nil {
		return nil, err
	}

	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights <= 0 {
		return nil, errors.NewValidationError("checkOut must be after checkIn")
	}

	if req.NumAdults == 0 {
		req.NumAdults = 1
	}
	if req.NumAdults < 1 {
		return nil, errors.NewValidationError("numAdults must be at least 1")
	}
	if req.NumChildren < 0 {
		return nil, errors.NewValidationError("numChildren must not be negative")
	}

	guestName := req.GuestName
	guestEmail := req.GuestEmail
	guestPhone := req.GuestPhone

	var user *models.User
	if authUserID != nil {
		user, err = s.store.GetUserByID(*authUserID)
		if err != nil {
			return nil, err
		}
		if guestName == "" {
			guestName = user.Name
		}
		if guestEmail == "" {
			guestEmail = user.Email
		}
		if guestPhone == "" {
			guestPhone = user.Phone
		}
	}
	if guestName == "" {
		return nil, errors.NewValidationError("guestName is required")
	}
	if guestEmail == "" {
		return nil, errors.NewValidationError("guestEmail is required")
	}

	room, err := s.store.GetRoom(req.RoomID)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil && appErr.Code == errors.ErrCodeNotFound {
			return nil, errors.NewValidationError("unknown room")
		}
		return nil, err
	}

	if user == nil {
		user, err = EnsureGuestUser(s.store, guestName, guestEmail, guestPhone)
		if err != nil {
			return nil, err
		}
	}

	reference, err := GenerateReference()
	if err != nil {
		return nil, err
	}

	userID := user.ID
	booking := builders.NewBookingBuilder().
		WithReference(reference).
		WithRoom(room.ID).
		WithUser(&userID).
		WithGuestInfo(guestName, guestEmail, guestPhone).
		WithStay(checkIn, checkOut, nights).
		WithGuests(req.NumAdults, req.NumChildren).
		WithTotalAmount(room.BasePrice * float64(nights)).
		WithNotes(req.Notes).
		WithStatus(constants.BookingStatusPending, constants.PaymentStatusUnpaid).
		Build()

	if err := s.store.CreateBooking(booking); err != nil {
		return nil, err
	}
	booking.Room = *room

	// Confirmation email is fire-and-forget; the booking never waits on it.
	go func(email, ref string, total float64, in, out string) {
		if err := s.sendMail(email, ref, total, in, out); err != nil {
			s.logger.Error("booking %s: confirmation email failed: %v", ref, err)
		}
	}(guestEmail, reference, booking.TotalAmount, req.CheckIn, req.CheckOut)

	return booking, nil
}

// UpdateStatus overwrites the booking status with whatever the admin sent.
func (s *BookingService) UpdateStatus(id uint, status string) (*models.Booking, error) {
	if status == "" {
		return nil, errors.NewValidationError("status is required")
	}
	booking, err := s.store.GetBooking(id)
	if err != nil {
		return nil, err
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	if err := s.store.SaveBooking(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// CheckIn marks the stay as started.
func (s *BookingService) CheckIn(id uint) (*models.Booking, error) {
	return s.UpdateStatus(id, constants.BookingStatusCheckedIn)
}

// MarkPaidByReference flips payment status to paid for the booking the
// provider referenced. Safe to replay.
func (s *BookingService) MarkPaidByReference(bookingID uint) error {
	return s.store.UpdateBookingPaymentStatus(bookingID, constants.PaymentStatusPaid)
}

// PartitionForUser splits a user's bookings into upcoming / past / cancelled,
// newest first (list order from the store is created_at desc already).
func (s *BookingService) PartitionForUser(userID uint, now time.Time) (upcoming, past, cancelled []models.Booking, err error) {
	bookings, err := s.store.ListBookingsByUser(userID)
	if err != nil {
		return nil, nil, nil, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, b := range bookings {
		switch {
		case b.Status == constants.BookingStatusCancelled:
			cancelled = append(cancelled, b)
		case b.CheckIn.After(today):
			upcoming = append(upcoming, b)
		default:
			past = append(past, b)
		}
	}
	return upcoming, past, cancelled, nil
}

// SweepCheckouts moves checked_in bookings whose checkout date has passed to
// checked_out. Run from the daily cron.
func (s *BookingService) SweepCheckouts(now time.Time) (int, error) {
	res := s.store.DB().Model(&models.Booking{}).
		Where("status = ? AND check_out < ?", constants.BookingStatusCheckedIn, now).
		Update("status", constants.BookingStatusCheckedOut)
	if res.Error != nil {
		return 0, errors.FromDB(res.Error, "booking")
	}
	return int(res.RowsAffected), nil
}
