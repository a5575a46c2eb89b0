package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gazi-Farhana/summer-camp-server/internal/auth"
	"github.com/Gazi-Farhana/summer-camp-server/internal/middleware"
	"github.com/Gazi-Farhana/summer-camp-server/internal/models"
	"github.com/Gazi-Farhana/summer-camp-server/internal/repository/memory"
)

func newRouter(tokens *auth.Service, use ...mux.MiddlewareFunc) *mux.Router {
	router := mux.NewRouter()
	sub := router.NewRoute().Subrouter()
	sub.Use(middleware.RequireAuth(tokens))
	sub.Use(use...)
	sub.HandleFunc("/guarded", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(middleware.EmailFrom(r.Context())))
	}).Methods("GET")
	return router
}

func TestRequireAuth_MissingToken(t *testing.T) {
	router := newRouter(auth.NewService("s"))

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":true,"message":"unauthorized access"}`, w.Body.String())
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	router := newRouter(auth.NewService("s"))

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	router := newRouter(auth.NewService("s"))

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ValidTokenExposesEmail(t *testing.T) {
	tokens := auth.NewService("s")
	router := newRouter(tokens)

	token, err := tokens.GenerateJWT("a@x.com", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@x.com", w.Body.String())
}

func TestRequireRole(t *testing.T) {
	store := memory.NewStore()
	_, err := store.Users().RegisterIfAbsent(context.Background(),
		models.User{Email: "admin@x.com", Role: models.RoleAdmin})
	require.NoError(t, err)
	_, err = store.Users().RegisterIfAbsent(context.Background(),
		models.User{Email: "student@x.com"})
	require.NoError(t, err)

	tokens := auth.NewService("s")
	router := newRouter(tokens, middleware.RequireRole(store.Users(), models.RoleAdmin))

	cases := []struct {
		name  string
		email string
		want  int
	}{
		{"admin passes", "admin@x.com", http.StatusOK},
		{"student forbidden", "student@x.com", http.StatusForbidden},
		{"unregistered forbidden", "ghost@x.com", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := tokens.GenerateJWT(tc.email, "")
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
			if tc.want == http.StatusForbidden {
				assert.JSONEq(t, `{"error":true,"message":"access forbidden"}`, w.Body.String())
			}
		})
	}
}

func TestRequestID_Generated(t *testing.T) {
	router := mux.NewRouter()
	router.Use(middleware.RequestID)
	router.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(middleware.GetRequestID(r.Context())))
	}).Methods("GET")

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	id := w.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, id, 36)
	assert.Equal(t, id, w.Body.String())
}

func TestRequestID_ClientProvided(t *testing.T) {
	router := mux.NewRouter()
	router.Use(middleware.RequestID)
	router.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-id-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "client-id-123", w.Header().Get(middleware.RequestIDHeader))
}
