package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"savanna/constants"
	"savanna/errors"
	"savanna/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	store := NewStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func seedRoom(t *testing.T, store *Store, price float64) *models.Room {
	t.Helper()

	property := models.Property{Name: "Acacia House", City: "Nairobi"}
	require.NoError(t, store.CreateProperty(&property))

	room := models.Room{
		PropertyID:   property.ID,
		Name:         "Standard Double",
		RoomType:     "double",
		BasePrice:    price,
		MaxOccupancy: 2,
		Available:    true,
	}
	require.NoError(t, store.CreateRoom(&room))
	return &room
}

func TestGetPropertyNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetProperty(99)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
	assert.Equal(t, 404, appErr.HTTPStatus())
}

func TestCreateUserDuplicateEmailIsConflict(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.CreateUser(&models.User{Name: "Amina", Email: "amina@example.com"}))

	err := store.CreateUser(&models.User{Name: "Other", Email: "amina@example.com"})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeConflict, appErr.Code)
	assert.Equal(t, 409, appErr.HTTPStatus())
}

func TestUpsertSetting(t *testing.T) {
	store := newTestStore(t)

	first := models.Setting{Category: "payment", Key: "mpesa_shortcode", Value: "174379"}
	require.NoError(t, store.UpsertSetting(&first))

	second := models.Setting{Category: "payment", Key: "mpesa_shortcode", Value: "600999"}
	require.NoError(t, store.UpsertSetting(&second))

	got, err := store.GetSetting("mpesa_shortcode")
	require.NoError(t, err)
	assert.Equal(t, "600999", got.Value)

	all, err := store.ListSettings("payment")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	creds, err := store.SettingsMap("payment")
	require.NoError(t, err)
	assert.Equal(t, "600999", creds["mpesa_shortcode"])
}

func TestUpdateBookingPaymentStatus(t *testing.T) {
	store := newTestStore(t)
	room := seedRoom(t, store, 100)

	booking := models.Booking{
		Reference: "SVN-AAAA111122",
		RoomID:    room.ID,
		GuestName: "Amina",
		CheckIn:   time.Now().AddDate(0, 0, 1),
		CheckOut:  time.Now().AddDate(0, 0, 3),
		Nights:    2,
	}
	require.NoError(t, store.CreateBooking(&booking))

	require.NoError(t, store.UpdateBookingPaymentStatus(booking.ID, constants.PaymentStatusPaid))
	// Replaying the same update must stay a no-op success.
	require.NoError(t, store.UpdateBookingPaymentStatus(booking.ID, constants.PaymentStatusPaid))

	got, err := store.GetBooking(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentStatusPaid, got.PaymentStatus)

	err = store.UpdateBookingPaymentStatus(9999, constants.PaymentStatusPaid)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
}

func TestListBookingsByUserNewestFirst(t *testing.T) {
	store := newTestStore(t)
	room := seedRoom(t, store, 80)

	user := models.User{Name: "Amina", Email: "amina@example.com"}
	require.NoError(t, store.CreateUser(&user))

	for i, ref := range []string{"SVN-OLD0000001", "SVN-NEW0000002"} {
		booking := models.Booking{
			Reference: ref,
			RoomID:    room.ID,
			UserID:    &user.ID,
			GuestName: user.Name,
			CheckIn:   time.Now().AddDate(0, 0, i),
			CheckOut:  time.Now().AddDate(0, 0, i+2),
			Nights:    2,
			CreatedAt: time.Now().Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.CreateBooking(&booking))
	}

	bookings, err := store.ListBookingsByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "SVN-NEW0000002", bookings[0].Reference)
}

func TestGetBookingPreloadsRoomAndProperty(t *testing.T) {
	store := newTestStore(t)
	room := seedRoom(t, store, 120)

	booking := models.Booking{
		Reference: "SVN-PRELOAD001",
		RoomID:    room.ID,
		GuestName: "Amina",
		CheckIn:   time.Now(),
		CheckOut:  time.Now().AddDate(0, 0, 1),
		Nights:    1,
	}
	require.NoError(t, store.CreateBooking(&booking))

	got, err := store.GetBooking(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "Standard Double", got.Room.Name)
	assert.Equal(t, "Acacia House", got.Room.Property.Name)
}

func TestDeleteBookingIsHard(t *testing.T) {
	store := newTestStore(t)
	room := seedRoom(t, store, 50)

	booking := models.Booking{
		Reference: "SVN-DELETE0001",
		RoomID:    room.ID,
		GuestName: "Amina",
		CheckIn:   time.Now(),
		CheckOut:  time.Now().AddDate(0, 0, 1),
		Nights:    1,
	}
	require.NoError(t, store.CreateBooking(&booking))
	require.NoError(t, store.DeleteBooking(booking.ID))

	_, err := store.GetBooking(booking.ID)
	require.Error(t, err)

	err = store.DeleteBooking(booking.ID)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
}
