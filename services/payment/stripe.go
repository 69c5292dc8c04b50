package payment

import (
	"savanna/errors"
	"savanna/models"
)

// Stripe is a placeholder provider that always reports "not configured".
type Stripe struct{}

func NewStripe() *Stripe {
	return &Stripe{}
}

func (s *Stripe) Name() string {
	return "stripe"
}

func (s *Stripe) Initiate(_ *models.Booking, _ map[string]string) (*InitiateResult, error) {
	return nil, errors.NewAppError(errors.ErrCodePaymentConfig, "Stripe payments are not configured", nil)
}
