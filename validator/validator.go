package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"savanna/constants"
	"savanna/dto"
	"savanna/errors"
	"savanna/models"
)

// RegisterCustomValidators installs the custom binding rules on gin's
// validator engine. Call once at startup.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return isValidPhone(fl.Field().String())
		})
	}
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

func ValidateEmail(email string) error {
	if email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "email is required", nil)
	}
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "email is not valid", nil)
	}
	return nil
}

func ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "phone number is not valid", nil)
	}
	return nil
}

// ValidateBookingRequest checks the shape of the public create payload.
// Date and room checks belong to the booking service.
func ValidateBookingRequest(req *dto.CreateBookingRequest, authenticated bool) error {
	if req.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "roomId is required", nil)
	}
	if req.CheckIn == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "checkIn is required", nil)
	}
	if req.CheckOut == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "checkOut is required", nil)
	}
	if !authenticated {
		if req.GuestName == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "guestName is required", nil)
		}
		if err := ValidateEmail(req.GuestEmail); err != nil {
			return err
		}
	}
	if req.GuestPhone != "" {
		if err := ValidatePhone(req.GuestPhone); err != nil {
			return err
		}
	}
	if req.NumChildren < 0 {
		return errors.NewValidationError("numChildren must not be negative")
	}
	return nil
}

func ValidateMessage(message *models.Message) error {
	if message.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "name is required", nil)
	}
	if err := ValidateEmail(message.Email); err != nil {
		return err
	}
	if message.Body == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "message body is required", nil)
	}
	return nil
}

func IsKnownMessageStatus(status string) bool {
	switch status {
	case constants.MessageStatusNew, constants.MessageStatusRead,
		constants.MessageStatusReplied, constants.MessageStatusArchived:
		return true
	}
	return false
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.NewValidationError("password must be at least 6 characters")
	}
	return nil
}
