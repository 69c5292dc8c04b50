package storage

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"savanna/errors"
	"savanna/models"
)

// Store is the typed query layer over the shared gorm handle. It owns no
// business logic; every failure is translated into the app error taxonomy
// before it leaves this package.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for list-style queries that controllers
// filter and paginate themselves.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Migrate creates the schema for the six entities.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(
		&models.Property{},
		&models.Room{},
		&models.Booking{},
		&models.Message{},
		&models.Setting{},
		&models.User{},
	)
}

// ---- Properties ----

func (s *Store) ListProperties() ([]models.Property, error) {
	var properties []models.Property
	if err := s.db.Preload("Rooms").Order("created_at DESC").Find(&properties).Error; err != nil {
		return nil, errors.FromDB(err, "property")
	}
	return properties, nil
}

func (s *Store) GetProperty(id uint) (*models.Property, error) {
	var property models.Property
	if err := s.db.Preload("Rooms").First(&property, id).Error; err != nil {
		return nil, errors.FromDB(err, "property")
	}
	return &property, nil
}

func (s *Store) CreateProperty(property *models.Property) error {
	if err := s.db.Create(property).Error; err != nil {
		return errors.FromDB(err, "property")
	}
	return nil
}

func (s *Store) UpdateProperty(property *models.Property) error {
	if err := s.db.Save(property).Error; err != nil {
		return errors.FromDB(err, "property")
	}
	return nil
}

// ---- Rooms ----

func (s *Store) GetRoom(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.Preload("Property").First(&room, id).Error; err != nil {
		return nil, errors.FromDB(err, "room")
	}
	return &room, nil
}

func (s *Store) ListRoomsByProperty(propertyID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.Where("property_id = ?", propertyID).Order("base_price ASC").Find(&rooms).Error; err != nil {
		return nil, errors.FromDB(err, "room")
	}
	return rooms, nil
}

func (s *Store) CreateRoom(room *models.Room) error {
	if err := s.db.Create(room).Error; err != nil {
		return errors.FromDB(err, "room")
	}
	return nil
}

func (s *Store) UpdateRoom(room *models.Room) error {
	if err := s.db.Save(room).Error; err != nil {
		return errors.FromDB(err, "room")
	}
	return nil
}

func (s *Store) DeleteRoom(id uint) error {
	res := s.db.Delete(&models.Room{}, id)
	if res.Error != nil {
		return errors.FromDB(res.Error, "room")
	}
	if res.RowsAffected == 0 {
		return errors.FromDB(gorm.ErrRecordNotFound, "room")
	}
	return nil
}

// ---- Bookings ----

func (s *Store) CreateBooking(booking *models.Booking) error {
	if err := s.db.Create(booking).Error; err != nil {
		return errors.FromDB(err, "booking")
	}
	return nil
}

func (s *Store) GetBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Room").Preload("Room.Property").Preload("User").First(&booking, id).Error; err != nil {
		return nil, errors.FromDB(err, "booking")
	}
	return &booking, nil
}

func (s *Store) GetBookingByReference(reference string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Room").Where("reference = ?", reference).First(&booking).Error; err != nil {
		return nil, errors.FromDB(err, "booking")
	}
	return &booking, nil
}

func (s *Store) ListBookingsByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Preload("Room").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, errors.FromDB(err, "booking")
	}
	return bookings, nil
}

func (s *Store) SaveBooking(booking *models.Booking) error {
	if err := s.db.Save(booking).Error; err != nil {
		return errors.FromDB(err, "booking")
	}
	return nil
}

// UpdateBookingPaymentStatus sets the payment status. Replaying the same
// update is harmless; the write is naturally idempotent.
func (s *Store) UpdateBookingPaymentStatus(id uint, status string) error {
	res := s.db.Model(&models.Booking{}).Where("id = ?", id).Update("payment_status", status)
	if res.Error != nil {
		return errors.FromDB(res.Error, "booking")
	}
	if res.RowsAffected == 0 {
		return errors.FromDB(gorm.ErrRecordNotFound, "booking")
	}
	return nil
}

func (s *Store) DeleteBooking(id uint) error {
	res := s.db.Delete(&models.Booking{}, id)
	if res.Error != nil {
		return errors.FromDB(res.Error, "booking")
	}
	if res.RowsAffected == 0 {
		return errors.FromDB(gorm.ErrRecordNotFound, "booking")
	}
	return nil
}

// ---- Messages ----

func (s *Store) CreateMessage(message *models.Message) error {
	if err := s.db.Create(message).Error; err != nil {
		return errors.FromDB(err, "message")
	}
	return nil
}

func (s *Store) ListMessages() ([]models.Message, error) {
	var messages []models.Message
	if err := s.db.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, errors.FromDB(err, "message")
	}
	return messages, nil
}

func (s *Store) GetMessage(id uint) (*models.Message, error) {
	var message models.Message
	if err := s.db.First(&message, id).Error; err != nil {
		return nil, errors.FromDB(err, "message")
	}
	return &message, nil
}

func (s *Store) UpdateMessage(message *models.Message) error {
	if err := s.db.Save(message).Error; err != nil {
		return errors.FromDB(err, "message")
	}
	return nil
}

func (s *Store) DeleteMessage(id uint) error {
	res := s.db.Delete(&models.Message{}, id)
	if res.Error != nil {
		return errors.FromDB(res.Error, "message")
	}
	if res.RowsAffected == 0 {
		return errors.FromDB(gorm.ErrRecordNotFound, "message")
	}
	return nil
}

// ---- Settings ----

// UpsertSetting writes the key, replacing value and category on conflict.
func (s *Store) UpsertSetting(setting *models.Setting) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "category", "updated_at"}),
	}).Create(setting).Error
	if err != nil {
		return errors.FromDB(err, "setting")
	}
	return nil
}

func (s *Store) GetSetting(key string) (*models.Setting, error) {
	var setting models.Setting
	if err := s.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, errors.FromDB(err, "setting")
	}
	return &setting, nil
}

func (s *Store) ListSettings(category string) ([]models.Setting, error) {
	tx := s.db.Order("key ASC")
	if category != "" {
		tx = tx.Where("category = ?", category)
	}
	var settings []models.Setting
	if err := tx.Find(&settings).Error; err != nil {
		return nil, errors.FromDB(err, "setting")
	}
	return settings, nil
}

// SettingsMap flattens a category into key→value for credential lookup.
func (s *Store) SettingsMap(category string) (map[string]string, error) {
	settings, err := s.ListSettings(category)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(settings))
	for _, setting := range settings {
		m[setting.Key] = setting.Value
	}
	return m, nil
}

// ---- Users ----

func (s *Store) CreateUser(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		return errors.FromDB(err, "user")
	}
	return nil
}

func (s *Store) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, errors.FromDB(err, "user")
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, errors.FromDB(err, "user")
	}
	return &user, nil
}
