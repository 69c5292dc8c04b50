package payment

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"savanna/dto"
	"savanna/errors"
	"savanna/models"
	"savanna/storage"
)

const (
	MpesaSandboxURL    = "https://sandbox.safaricom.co.ke"
	MpesaProductionURL = "https://api.safaricom.co.ke"

	// AccountReference carried on the STK push and parsed back out of the
	// callback metadata.
	bookingRefPrefix = "Booking-"
)

// Settings keys for the M-Pesa credentials.
const (
	SettingMpesaConsumerKey    = "mpesa_consumer_key"
	SettingMpesaConsumerSecret = "mpesa_consumer_secret"
	SettingMpesaShortcode      = "mpesa_shortcode"
	SettingMpesaPasskey        = "mpesa_passkey"
	SettingMpesaCallbackURL    = "mpesa_callback_url"
)

type Mpesa struct {
	store *storage.Store
	// BaseURL is swapped for an httptest server in tests.
	BaseURL string
	Client  *http.Client
}

func NewMpesa(store *storage.Store) *Mpesa {
	return &Mpesa{
		store:   store,
		BaseURL: MpesaSandboxURL,
		Client:  newHTTPClient(),
	}
}

func (m *Mpesa) Name() string {
	return "mpesa"
}

type mpesaTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

type mpesaStkResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	ErrorMessage        string `json:"errorMessage"`
}

// AccessToken runs the client-credentials grant with Basic auth.
func (m *Mpesa) AccessToken(consumerKey, consumerSecret string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, m.BaseURL+"/oauth/v1/generate?grant_type=client_credentials", nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(consumerKey, consumerSecret)

	resp, err := m.Client.Do(req)
	if err != nil {
		return "", errors.NewPaymentError("could not reach M-Pesa", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.NewPaymentError("M-Pesa rejected the credentials", fmt.Errorf("status %d", resp.StatusCode))
	}

	var token mpesaTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", errors.NewPaymentError("invalid token response from M-Pesa", err)
	}
	if token.AccessToken == "" {
		return "", errors.NewPaymentError("M-Pesa returned an empty token", nil)
	}
	return token.AccessToken, nil
}

// stkPassword is Base64(shortcode + passkey + timestamp) with the Daraja
// timestamp layout.
func stkPassword(shortcode, passkey string, ts time.Time) (password, timestamp string) {
	timestamp = ts.Format("20060102150405")
	password = base64.StdEncoding.EncodeToString([]byte(shortcode + passkey + timestamp))
	return
}

// Initiate loads the five stored credentials, exchanges them for a bearer
// token and submits the STK push. params must carry "phone".
func (m *Mpesa) Initiate(booking *models.Booking, params map[string]string) (*InitiateResult, error) {
	creds, err := m.store.SettingsMap("payment")
	if err != nil {
		return nil, err
	}
	if err := missingCredential(creds,
		SettingMpesaConsumerKey, SettingMpesaConsumerSecret,
		SettingMpesaShortcode, SettingMpesaPasskey, SettingMpesaCallbackURL); err != nil {
		return nil, err
	}

	token, err := m.AccessToken(creds[SettingMpesaConsumerKey], creds[SettingMpesaConsumerSecret])
	if err != nil {
		return nil, err
	}

	phone := params["phone"]
	if phone == "" {
		return nil, errors.NewValidationError("phone is required")
	}

	password, timestamp := stkPassword(creds[SettingMpesaShortcode], creds[SettingMpesaPasskey], time.Now())
	payload := map[string]interface{}{
		"BusinessShortCode": creds[SettingMpesaShortcode],
		"Password":          password,
		"Timestamp":         timestamp,
		"TransactionType":   "CustomerPayBillOnline",
		"Amount":            int(math.Round(booking.TotalAmount)),
		"PartyA":            phone,
		"PartyB":            creds[SettingMpesaShortcode],
		"PhoneNumber":       phone,
		"CallBackURL":       creds[SettingMpesaCallbackURL],
		"AccountReference":  fmt.Sprintf("%s%d", bookingRefPrefix, booking.ID),
		"TransactionDesc":   "Booking " + booking.Reference,
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequest(http.MethodPost, m.BaseURL+"/mpesa/stkpush/v1/processrequest", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.Client.Do(req)
	if err != nil {
		return nil, errors.NewPaymentError("could not reach M-Pesa", err)
	}
	defer resp.Body.Close()

	var stk mpesaStkResponse
	if err := json.NewDecoder(resp.Body).Decode(&stk); err != nil {
		return nil, errors.NewPaymentError("invalid response from M-Pesa", err)
	}

	if resp.StatusCode != http.StatusOK || stk.CheckoutRequestID == "" {
		message := stk.ErrorMessage
		if message == "" {
			message = stk.ResponseDescription
		}
		if message == "" {
			message = "M-Pesa rejected the payment request"
		}
		return nil, errors.NewPaymentError(message, nil)
	}

	return &InitiateResult{
		Provider:    m.Name(),
		ProviderRef: stk.CheckoutRequestID,
		Message:     "STK push sent; confirm on your phone",
	}, nil
}

// Test runs only the OAuth handshake with caller-supplied credentials. No
// charge is initiated.
func (m *Mpesa) Test(consumerKey, consumerSecret string) error {
	_, err := m.AccessToken(consumerKey, consumerSecret)
	return err
}

// ParseCallback digs the booking id out of the flattened callback metadata.
// ResultCode 0 is a successful charge, anything else a declined attempt.
func ParseCallback(payload dto.MpesaCallbackPayload) (*CallbackResult, error) {
	cb := payload.Body.StkCallback

	var accountRef string
	for _, item := range cb.CallbackMetadata.Item {
		if item.Name == "AccountReference" {
			if s, ok := item.Value.(string); ok {
				accountRef = s
			}
		}
	}
	if accountRef == "" {
		return nil, fmt.Errorf("callback has no AccountReference")
	}
	if !strings.HasPrefix(accountRef, bookingRefPrefix) {
		return nil, fmt.Errorf("unrecognized account reference %q", accountRef)
	}

	id, err := strconv.ParseUint(strings.TrimPrefix(accountRef, bookingRefPrefix), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("bad booking id in account reference %q", accountRef)
	}

	return &CallbackResult{
		BookingID: uint(id),
		Paid:      cb.ResultCode == 0,
		Detail:    cb.ResultDesc,
	}, nil
}
