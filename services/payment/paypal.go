package payment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"savanna/config"
	"savanna/errors"
	"savanna/models"
	"savanna/storage"
)

const (
	PaypalSandboxURL = "https://api-m.sandbox.paypal.com"
	PaypalLiveURL    = "https://api-m.paypal.com"
)

const (
	SettingPaypalClientID     = "paypal_client_id"
	SettingPaypalClientSecret = "paypal_client_secret"
	SettingPaypalCurrency     = "paypal_currency"
)

// Paypal creates approval orders only. The capture step after the payer
// approves is a separate follow-up that is not implemented here.
type Paypal struct {
	store   *storage.Store
	BaseURL string
	Client  *http.Client
}

func NewPaypal(store *storage.Store) *Paypal {
	return &Paypal{
		store:   store,
		BaseURL: PaypalSandboxURL,
		Client:  newHTTPClient(),
	}
}

func (p *Paypal) Name() string {
	return "paypal"
}

type paypalTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type paypalOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Links  []struct {
		Href string `json:"href"`
		Rel  string `json:"rel"`
	} `json:"links"`
	Message string `json:"message"`
}

func (p *Paypal) AccessToken(clientID, clientSecret string) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequest(http.MethodPost, p.BaseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(clientID, clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", errors.NewPaymentError("could not reach PayPal", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.NewPaymentError("PayPal rejected the credentials", fmt.Errorf("status %d", resp.StatusCode))
	}

	var token paypalTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", errors.NewPaymentError("invalid token response from PayPal", err)
	}
	if token.AccessToken == "" {
		return "", errors.NewPaymentError("PayPal returned an empty token", nil)
	}
	return token.AccessToken, nil
}

// Initiate creates an order scoped to the booking amount and returns the
// approval URL the frontend redirects the payer to.
func (p *Paypal) Initiate(booking *models.Booking, params map[string]string) (*InitiateResult, error) {
	creds, err := p.store.SettingsMap("payment")
	if err != nil {
		return nil, err
	}
	if err := missingCredential(creds, SettingPaypalClientID, SettingPaypalClientSecret); err != nil {
		return nil, err
	}

	token, err := p.AccessToken(creds[SettingPaypalClientID], creds[SettingPaypalClientSecret])
	if err != nil {
		return nil, err
	}

	currency := creds[SettingPaypalCurrency]
	if currency == "" {
		currency = "USD"
	}
	siteURL := config.GetEnvDefault("SITE_BASE_URL", "http://localhost:3000")

	order := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"reference_id": booking.Reference,
				"description":  "Booking " + booking.Reference,
				"amount": map[string]string{
					"currency_code": currency,
					"value":         fmt.Sprintf("%.2f", booking.TotalAmount),
				},
			},
		},
		"application_context": map[string]string{
			"return_url": siteURL + "/payment/success?reference=" + booking.Reference,
			"cancel_url": siteURL + "/payment/cancelled?reference=" + booking.Reference,
		},
	}

	body, _ := json.Marshal(order)
	req, err := http.NewRequest(http.MethodPost, p.BaseURL+"/v2/checkout/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, errors.NewPaymentError("could not reach PayPal", err)
	}
	defer resp.Body.Close()

	var created paypalOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, errors.NewPaymentError("invalid response from PayPal", err)
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		message := created.Message
		if message == "" {
			message = "PayPal rejected the order"
		}
		return nil, errors.NewPaymentError(message, nil)
	}

	approvalURL := ""
	for _, link := range created.Links {
		if link.Rel == "approve" {
			approvalURL = link.Href
		}
	}
	if approvalURL == "" {
		return nil, errors.NewPaymentError("PayPal order has no approval link", nil)
	}

	return &InitiateResult{
		Provider:    p.Name(),
		ProviderRef: created.ID,
		ApprovalURL: approvalURL,
	}, nil
}

// Test runs only the OAuth handshake with caller-supplied credentials.
func (p *Paypal) Test(clientID, clientSecret string) error {
	_, err := p.AccessToken(clientID, clientSecret)
	return err
}
