package services

import (
	"fmt"
	"net/smtp"

	"golang.org/x/crypto/bcrypt"

	"savanna/config"
	"savanna/constants"
	"savanna/errors"
	"savanna/models"
	"savanna/storage"
	"savanna/validator"
)

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// RegisterUser creates an account with a hashed password. Duplicate emails
// surface as a conflict from the store.
func RegisterUser(store *storage.Store, name, email, password, phone string) (*models.User, error) {
	if err := validator.ValidatePassword(password); err != nil {
		return nil, err
	}
	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Phone:    phone,
		Role:     constants.RoleUser,
	}
	if err := store.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// EnsureGuestUser finds or synthesizes the placeholder account for a guest
// booking, keyed by email. The placeholder has no usable password.
func EnsureGuestUser(store *storage.Store, name, email, phone string) (*models.User, error) {
	user, err := store.GetUserByEmail(email)
	if err == nil {
		return user, nil
	}
	if appErr := errors.GetAppError(err); appErr == nil || appErr.Code != errors.ErrCodeNotFound {
		return nil, err
	}

	guest := &models.User{
		Name:  name,
		Email: email,
		Phone: phone,
		Role:  constants.RoleUser,
	}
	if err := store.CreateUser(guest); err != nil {
		// Lost the race to a concurrent guest booking with the same email.
		if appErr := errors.GetAppError(err); appErr != nil && appErr.Code == errors.ErrCodeConflict {
			return store.GetUserByEmail(email)
		}
		return nil, err
	}
	return guest, nil
}

func smtpConfig() (host, port, from, password string) {
	host = config.GetEnvDefault("SMTP_HOST", "smtp.gmail.com")
	port = config.GetEnvDefault("SMTP_PORT", "587")
	from = config.GetEnv("SMTP_FROM")
	password = config.GetEnv("SMTP_PASSWORD")
	return
}

// SendBookingEmail mails the confirmation for a freshly created booking.
// Callers treat a failure as log-only; it never blocks the booking.
func SendBookingEmail(email, reference string, totalAmount float64, checkIn, checkOut string) error {
	host, port, from, password := smtpConfig()
	if from == "" {
		return fmt.Errorf("smtp sender not configured")
	}

	to := []string{email}
	subject := "Subject: Your booking is received\n"
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Booking received</title>
	</head>
	<body>
		<p>Hello,</p>
		<p>Thank you! We have received your booking.</p>
		<ul>
			<li>Reference: <strong>%s</strong></li>
			<li>Check-in: <strong>%s</strong></li>
			<li>Check-out: <strong>%s</strong></li>
			<li>Total: <strong>%s</strong></li>
		</ul>
		<p>Your booking is pending until payment is confirmed. We will email you
		when its status changes.</p>
		<p>Best regards,<br>The reservations team</p>
	</body>
	</html>`, reference, checkIn, checkOut, FormatCurrency(totalAmount))

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}

func FormatCurrency(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
