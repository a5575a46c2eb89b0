package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Gazi-Farhana/summer-camp-server/internal/logger"
	"github.com/Gazi-Farhana/summer-camp-server/internal/models"
	"github.com/Gazi-Farhana/summer-camp-server/internal/repository"
)

type UserHandler struct {
	users repository.UserRepository
}

func NewUserHandler(users repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// Register handles POST /users. Registration is idempotent: a second
// registration for the same email is a no-op, not an error.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := validation.Validate(user.Email, validation.Required, is.Email); err != nil {
		writeError(w, http.StatusBadRequest, "a valid email is required")
		return
	}

	created, err := h.users.RegisterIfAbsent(r.Context(), user)
	if err != nil {
		logger.Error("user registration failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to register user")
		return
	}
	if !created {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Already A registered Student"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"acknowledged": true})
}

// GetUsers handles GET /users (admin).
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	if !assertSelf(w, r, r.URL.Query().Get("email")) {
		return
	}

	users, err := h.users.List(r.Context())
	if err != nil {
		logger.Error("user listing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch users")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// IsAdmin handles GET /users/admin/{email}: a role probe the client
// uses to pick its dashboard.
func (h *UserHandler) IsAdmin(w http.ResponseWriter, r *http.Request) {
	h.probeRole(w, r, models.RoleAdmin)
}

// IsMentor handles GET /users/mentor/{email}. The response key stays
// "admin": existing clients read the flag there for both probes.
func (h *UserHandler) IsMentor(w http.ResponseWriter, r *http.Request) {
	h.probeRole(w, r, models.RoleMentor)
}

func (h *UserHandler) probeRole(w http.ResponseWriter, r *http.Request, role models.UserRole) {
	email := mux.Vars(r)["email"]
	if !assertSelf(w, r, email) {
		return
	}

	ok, err := h.users.HasRole(r.Context(), email, role)
	if err != nil {
		logger.Error("role probe failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to check role")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"admin": ok})
}

// Promote handles PUT /users/{id}?role=...&email=... (admin). Promoting
// an id that matches no user fails instead of inserting one.
func (h *UserHandler) Promote(w http.ResponseWriter, r *http.Request) {
	if !assertSelf(w, r, r.URL.Query().Get("email")) {
		return
	}

	role := models.UserRole(r.URL.Query().Get("role"))
	if role != models.RoleAdmin && role != models.RoleMentor {
		writeError(w, http.StatusBadRequest, "unknown role")
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.users.UpdateRole(r.Context(), id, role); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		logger.Error("role promotion failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to update role")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"modifiedCount": 1})
}
