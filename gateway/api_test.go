package gateway_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/jonanatree/bambora-sim/gateway"
	"github.com/jonanatree/bambora-sim/gateway/models"
)

func newRouter(policy gateway.Policy) chi.Router {
	router := chi.NewRouter()
	api := gateway.NewAPI(newSimulator(policy))
	api.AppendRoutes(router)
	return router
}

func doJSON(t *testing.T, router chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	router.ServeHTTP(w, req)
	return w
}

func TestAPI_LenientFlow(t *testing.T) {
	router := newRouter(gateway.Policy{Strict: false, CacheEnabled: true})

	var tok models.TokenizeResponse
	t.Run("tokenize card", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/scripts/tokenization/tokens", testTokenize)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tok))
		require.Equal(t, 1, tok.Code)
		require.True(t, strings.HasPrefix(tok.Token, "C-"))
	})

	var profile models.CreateProfileResponse
	t.Run("create profile", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/v1/profiles", models.CreateProfileRequest{
			Token: &models.ProfileToken{Code: tok.Token},
		})
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
		require.Equal(t, 1, profile.Code)
		require.NotEmpty(t, profile.CustomerCode)
	})

	t.Run("create payment", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/v1/payments", models.PaymentRequest{
			PaymentMethod:  "payment_profile",
			PaymentProfile: &models.PaymentProfile{CustomerCode: profile.CustomerCode, CardID: 1},
			Amount:         10.00,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var payment models.PaymentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payment))
		require.Equal(t, 10.00, payment.Amount)
		require.Equal(t, "1", payment.Approved)
		require.Equal(t, "1234", payment.Card.LastFour)
	})

	t.Run("get profile", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/v1/profiles/"+profile.CustomerCode, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got models.ProfileResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Equal(t, profile.CustomerCode, got.CustomerCode)
		require.Equal(t, "4030000010001234", got.Card.Number)
	})

	t.Run("get profile cards has no cvc key", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/v1/profiles/"+profile.CustomerCode+"/cards", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NotContains(t, w.Body.String(), `"cvc"`)
		require.Contains(t, w.Body.String(), `"card_id":1`)
	})
}

func TestAPI_StrictUnknownToken(t *testing.T) {
	router := newRouter(gateway.Policy{Strict: true, CacheEnabled: true})

	w := doJSON(t, router, http.MethodPost, "/v1/profiles", models.CreateProfileRequest{
		Token: &models.ProfileToken{Code: "C-never-issued-0001"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	require.Contains(t, errResp.Message, "C-never-issued-0001")
}

func TestAPI_LenientUnknownProfileAlwaysResponds(t *testing.T) {
	router := newRouter(gateway.Policy{Strict: false, CacheEnabled: false})

	w := doJSON(t, router, http.MethodGet, "/v1/profiles/P-made-up-code", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var first models.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	require.Equal(t, 1, first.Code)
	require.Equal(t, "P-made-up-code", first.CustomerCode)

	w = doJSON(t, router, http.MethodGet, "/v1/profiles/P-made-up-code", nil)
	var second models.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	require.NotEqual(t, first.Card.Number, second.Card.Number)
}

func TestAPI_WrongPaymentMethod(t *testing.T) {
	router := newRouter(gateway.Policy{Strict: false, CacheEnabled: true})

	w := doJSON(t, router, http.MethodPost, "/v1/payments", models.PaymentRequest{
		PaymentMethod:  "card",
		PaymentProfile: &models.PaymentProfile{CustomerCode: "P-x", CardID: 1},
		Amount:         1.00,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	require.Contains(t, errResp.Message, "payment_profile")
}

func TestAPI_MalformedBody(t *testing.T) {
	router := newRouter(gateway.Policy{Strict: false, CacheEnabled: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/scripts/tokenization/tokens", strings.NewReader("{not json"))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid request body")
}

func TestAPI_TokenizeMissingFields(t *testing.T) {
	router := newRouter(gateway.Policy{Strict: false, CacheEnabled: true})

	w := doJSON(t, router, http.MethodPost, "/scripts/tokenization/tokens", map[string]string{
		"number": "4030000010001234",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Contains(t, w.Body.String(), "required")
}
