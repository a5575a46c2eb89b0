package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"github.com/Gazi-Farhana/summer-camp-server/internal/logger"
	"github.com/Gazi-Farhana/summer-camp-server/internal/metrics"
	"github.com/Gazi-Farhana/summer-camp-server/internal/middleware"
	"github.com/Gazi-Farhana/summer-camp-server/internal/models"
	"github.com/Gazi-Farhana/summer-camp-server/internal/repository"
)

type PaymentHandler struct {
	payments repository.PaymentRepository

	// createIntent is swappable so tests do not need a Stripe account.
	createIntent func(amount int64) (string, error)
}

func NewPaymentHandler(payments repository.PaymentRepository, stripeKey string) *PaymentHandler {
	stripe.Key = stripeKey
	return &PaymentHandler{
		payments:     payments,
		createIntent: createStripeIntent,
	}
}

func createStripeIntent(amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// CreateIntent handles POST /payment-intent: a stateless pass-through
// to the payment processor. Amounts are in currency minor units.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := validation.Validate(payload.Price, validation.Min(0.0)); err != nil {
		writeError(w, http.StatusBadRequest, "price must not be negative")
		return
	}

	clientSecret, err := h.createIntent(int64(payload.Price * 100))
	if err != nil {
		logger.Error("payment intent creation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create payment intent")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

// Settle handles POST /payments: records the payment, flips the cart
// entry to enrolled, and moves one seat on the course. The payer is the
// authenticated caller, whatever the payload says.
func (h *PaymentHandler) Settle(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payment.CartID.IsZero() || payment.CourseID.IsZero() {
		writeError(w, http.StatusBadRequest, "cart_id and course_id are required")
		return
	}

	payment.Email = middleware.EmailFrom(r.Context())
	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}

	result, err := h.payments.Settle(r.Context(), payment)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			metrics.SettlementsTotal.WithLabelValues("cart_not_found").Inc()
			writeError(w, http.StatusNotFound, "cart item not found")
		case errors.Is(err, repository.ErrSeatsExhausted):
			metrics.SettlementsTotal.WithLabelValues("seats_exhausted").Inc()
			writeError(w, http.StatusConflict, "no seats available")
		default:
			metrics.SettlementsTotal.WithLabelValues("error").Inc()
			logger.Error("settlement failed", zap.Error(err),
				zap.String("cart_id", payment.CartID.Hex()),
				zap.String("course_id", payment.CourseID.Hex()))
			writeError(w, http.StatusInternalServerError, "failed to settle payment")
		}
		return
	}

	metrics.SettlementsTotal.WithLabelValues("settled").Inc()
	writeJSON(w, http.StatusOK, result)
}

// History handles GET /payments: the caller's settlements, newest
// first.
func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if !assertSelf(w, r, email) {
		return
	}

	payments, err := h.payments.ListByPayer(r.Context(), email)
	if err != nil {
		logger.Error("payment history fetch failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch payments")
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	writeJSON(w, http.StatusOK, payments)
}
