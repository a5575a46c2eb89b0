package handlers

import (
	"encoding/json"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/Gazi-Farhana/summer-camp-server/internal/auth"
)

// TokenHandler issues session tokens for sign-ins completed by the
// identity provider on the client side.
type TokenHandler struct {
	tokens *auth.Service
}

func NewTokenHandler(tokens *auth.Service) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

type tokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (p tokenRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, validation.Required, is.Email),
	)
}

// IssueToken handles POST /jwt.
func (h *TokenHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var payload tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.tokens.GenerateJWT(payload.Email, payload.Name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
