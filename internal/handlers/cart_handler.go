package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Gazi-Farhana/summer-camp-server/internal/logger"
	"github.com/Gazi-Farhana/summer-camp-server/internal/middleware"
	"github.com/Gazi-Farhana/summer-camp-server/internal/models"
	"github.com/Gazi-Farhana/summer-camp-server/internal/repository"
)

type CartHandler struct {
	cart repository.CartRepository
}

func NewCartHandler(cart repository.CartRepository) *CartHandler {
	return &CartHandler{cart: cart}
}

// Add handles POST /cart.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := validation.Validate(item.Email, validation.Required, is.Email); err != nil {
		writeError(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	// A fresh cart item is never enrolled; only a settlement flips it.
	item.Enrolled = ""

	id, err := h.cart.Insert(r.Context(), item)
	if err != nil {
		logger.Error("cart insert failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to add to cart")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"insertedId": id.Hex()})
}

// Remove handles DELETE /cart/{id}. The delete is scoped to the
// caller's own entries: a foreign id removes nothing.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cart id")
		return
	}

	deleted, err := h.cart.DeleteOwned(r.Context(), middleware.EmailFrom(r.Context()), id)
	if err != nil {
		logger.Error("cart delete failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to remove from cart")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}

// List handles GET /cart: the caller's pending selections.
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.cart.ListByOwner)
}

// ListEnrolled handles GET /cart/enrolled: entries already settled.
func (h *CartHandler) ListEnrolled(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.cart.ListEnrolled)
}

// GetOne handles GET /cart/{id}. No match answers with a null body.
func (h *CartHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if !assertSelf(w, r, email) {
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cart id")
		return
	}

	item, err := h.cart.FindOwned(r.Context(), email, id)
	if err != nil {
		logger.Error("cart fetch failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch cart item")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *CartHandler) list(w http.ResponseWriter, r *http.Request, query func(ctx context.Context, email string) ([]models.CartItem, error)) {
	email := r.URL.Query().Get("email")
	if !assertSelf(w, r, email) {
		return
	}

	items, err := query(r.Context(), email)
	if err != nil {
		logger.Error("cart listing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch cart")
		return
	}
	if items == nil {
		items = []models.CartItem{}
	}
	writeJSON(w, http.StatusOK, items)
}
