package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Gazi-Farhana/summer-camp-server/internal/auth"
	"github.com/Gazi-Farhana/summer-camp-server/internal/models"
	"github.com/Gazi-Farhana/summer-camp-server/internal/repository/memory"
	"github.com/Gazi-Farhana/summer-camp-server/internal/routes"
)

type env struct {
	store  *memory.Store
	tokens *auth.Service
	router *mux.Router
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.NewStore()
	tokens := auth.NewService("test-secret")
	router := routes.SetupRouter(routes.Deps{
		Tokens:   tokens,
		Users:    store.Users(),
		Courses:  store.Courses(),
		Cart:     store.Cart(),
		Payments: store.Payments(),
	})
	return &env{store: store, tokens: tokens, router: router}
}

func (e *env) token(t *testing.T, email string) string {
	t.Helper()
	token, err := e.tokens.GenerateJWT(email, "")
	require.NoError(t, err)
	return token
}

func (e *env) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *env) seedUser(t *testing.T, email string, role models.UserRole) models.User {
	t.Helper()
	user := models.User{ID: primitive.NewObjectID(), Email: email, Role: role}
	created, err := e.store.Users().RegisterIfAbsent(context.Background(), user)
	require.NoError(t, err)
	require.True(t, created)
	return user
}

func (e *env) seedCourse(t *testing.T, course models.Course) models.Course {
	t.Helper()
	id, err := e.store.Courses().Insert(context.Background(), course)
	require.NoError(t, err)
	course.ID = id
	return course
}

func (e *env) seedCartItem(t *testing.T, item models.CartItem) models.CartItem {
	t.Helper()
	id, err := e.store.Cart().Insert(context.Background(), item)
	require.NoError(t, err)
	item.ID = id
	return item
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
