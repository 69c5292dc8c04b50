package payment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"savanna/errors"
	"savanna/models"
	"savanna/storage"
)

func seedPaypalCredentials(t *testing.T, store *storage.Store, currency string) {
	t.Helper()

	creds := map[string]string{
		SettingPaypalClientID:     "client-id",
		SettingPaypalClientSecret: "client-secret",
	}
	if currency != "" {
		creds[SettingPaypalCurrency] = currency
	}
	for key, value := range creds {
		require.NoError(t, store.UpsertSetting(&models.Setting{Category: "payment", Key: key, Value: value}))
	}
}

func fakePaypal(t *testing.T, orderStatus int, orderBody map[string]interface{}) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "client-id" || pass != "client-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": "pp-token", "token_type": "Bearer"})
	})
	mux.HandleFunc("/v2/checkout/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer pp-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var order map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&order))
		assert.Equal(t, "CAPTURE", order["intent"])

		units := order["purchase_units"].([]interface{})
		unit := units[0].(map[string]interface{})
		assert.Equal(t, "SVN-TESTREF001", unit["reference_id"])
		amount := unit["amount"].(map[string]interface{})
		assert.Equal(t, "300.00", amount["value"])
		assert.Equal(t, "KES", amount["currency_code"])

		w.WriteHeader(orderStatus)
		json.NewEncoder(w).Encode(orderBody)
	})
	return httptest.NewServer(mux)
}

func TestPaypalInitiate(t *testing.T) {
	store := newTestStore(t)
	seedPaypalCredentials(t, store, "KES")

	ts := fakePaypal(t, http.StatusCreated, map[string]interface{}{
		"id":     "ORDER-1",
		"status": "CREATED",
		"links": []map[string]string{
			{"href": "https://paypal.test/self", "rel": "self"},
			{"href": "https://paypal.test/approve/ORDER-1", "rel": "approve"},
		},
	})
	defer ts.Close()

	p := NewPaypal(store)
	p.BaseURL = ts.URL

	result, err := p.Initiate(testBooking(42, 300), nil)
	require.NoError(t, err)
	assert.Equal(t, "paypal", result.Provider)
	assert.Equal(t, "ORDER-1", result.ProviderRef)
	assert.Equal(t, "https://paypal.test/approve/ORDER-1", result.ApprovalURL)
}

func TestPaypalInitiateNoApprovalLink(t *testing.T) {
	store := newTestStore(t)
	seedPaypalCredentials(t, store, "KES")

	ts := fakePaypal(t, http.StatusCreated, map[string]interface{}{
		"id":     "ORDER-2",
		"status": "CREATED",
		"links":  []map[string]string{{"href": "https://paypal.test/self", "rel": "self"}},
	})
	defer ts.Close()

	p := NewPaypal(store)
	p.BaseURL = ts.URL

	_, err := p.Initiate(testBooking(42, 300), nil)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodePaymentGateway, appErr.Code)
}

func TestPaypalInitiateMissingCredentials(t *testing.T) {
	store := newTestStore(t)

	p := NewPaypal(store)
	_, err := p.Initiate(testBooking(42, 300), nil)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodePaymentConfig, appErr.Code)
}

func TestStripeIsNotConfigured(t *testing.T) {
	s := NewStripe()
	_, err := s.Initiate(nil, nil)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodePaymentConfig, appErr.Code)
}
