// Package payment holds the provider adapters for booking payments. Each
// provider loads its credentials from the settings store, talks to the
// provider over plain HTTP and reports failures as PaymentGatewayError with
// the provider's own message where one exists.
package payment

import (
	"fmt"
	"net/http"
	"time"

	"savanna/errors"
	"savanna/models"
)

// InitiateResult is what a provider hands back after starting a charge.
type InitiateResult struct {
	Provider    string `json:"provider"`
	ProviderRef string `json:"providerRef,omitempty"`
	ApprovalURL string `json:"approvalUrl,omitempty"`
	Message     string `json:"message,omitempty"`
}

// CallbackResult identifies the booking a provider notification refers to
// and whether the charge went through.
type CallbackResult struct {
	BookingID uint
	Paid      bool
	Detail    string
}

// Gateway is implemented by every payment provider.
type Gateway interface {
	Name() string
	Initiate(booking *models.Booking, params map[string]string) (*InitiateResult, error)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

// missingCredential reports which settings key a provider config lacks.
func missingCredential(creds map[string]string, keys ...string) error {
	for _, key := range keys {
		if creds[key] == "" {
			return errors.NewAppError(errors.ErrCodePaymentConfig,
				fmt.Sprintf("payment provider is not configured: missing %s", key), nil)
		}
	}
	return nil
}
