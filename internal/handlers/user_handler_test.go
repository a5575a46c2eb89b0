package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gazi-Farhana/summer-camp-server/internal/models"
)

func TestRegister_Idempotent(t *testing.T) {
	e := newEnv(t)

	w := e.request(t, http.MethodPost, "/users", "", map[string]string{"email": "a@x.com", "name": "Ana"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = e.request(t, http.MethodPost, "/users", "", map[string]string{"email": "a@x.com", "name": "Ana"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Already A registered Student"}`, w.Body.String())

	users, err := e.store.Users().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRegister_InvalidEmail(t *testing.T) {
	e := newEnv(t)

	w := e.request(t, http.MethodPost, "/users", "", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoleProbe(t *testing.T) {
	e := newEnv(t)
	e.seedUser(t, "admin@x.com", models.RoleAdmin)
	e.seedUser(t, "mentor@x.com", models.RoleMentor)

	w := e.request(t, http.MethodGet, "/users/admin/admin@x.com", e.token(t, "admin@x.com"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":true}`, w.Body.String())

	w = e.request(t, http.MethodGet, "/users/admin/mentor@x.com", e.token(t, "mentor@x.com"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":false}`, w.Body.String())

	w = e.request(t, http.MethodGet, "/users/mentor/mentor@x.com", e.token(t, "mentor@x.com"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":true}`, w.Body.String())
}

func TestRoleProbe_SelfMatchMismatch(t *testing.T) {
	e := newEnv(t)
	e.seedUser(t, "admin@x.com", models.RoleAdmin)

	w := e.request(t, http.MethodGet, "/users/admin/admin@x.com", e.token(t, "other@x.com"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleProbe_NoToken(t *testing.T) {
	e := newEnv(t)

	w := e.request(t, http.MethodGet, "/users/admin/a@x.com", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUsers_AdminOnly(t *testing.T) {
	e := newEnv(t)
	e.seedUser(t, "admin@x.com", models.RoleAdmin)
	e.seedUser(t, "b@x.com", "")
	e.seedUser(t, "c@x.com", "")

	w := e.request(t, http.MethodGet, "/users?email=admin@x.com", e.token(t, "admin@x.com"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var users []models.User
	decodeBody(t, w, &users)
	assert.Len(t, users, 3)

	w = e.request(t, http.MethodGet, "/users?email=b@x.com", e.token(t, "b@x.com"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetUsers_MissingEmailAnswersEmpty(t *testing.T) {
	e := newEnv(t)
	e.seedUser(t, "admin@x.com", models.RoleAdmin)

	w := e.request(t, http.MethodGet, "/users", e.token(t, "admin@x.com"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestPromote(t *testing.T) {
	e := newEnv(t)
	e.seedUser(t, "admin@x.com", models.RoleAdmin)
	student := e.seedUser(t, "student@x.com", "")

	path := "/users/" + student.ID.Hex() + "?role=mentor&email=admin@x.com"
	w := e.request(t, http.MethodPut, path, e.token(t, "admin@x.com"), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	promoted, err := e.store.Users().FindByEmail(context.Background(), "student@x.com")
	require.NoError(t, err)
	require.NotNil(t, promoted)
	assert.Equal(t, models.RoleMentor, promoted.Role)
}

func TestPromote_NonAdminForbidden(t *testing.T) {
	e := newEnv(t)
	student := e.seedUser(t, "student@x.com", "")

	path := "/users/" + student.ID.Hex() + "?role=mentor&email=student@x.com"
	w := e.request(t, http.MethodPut, path, e.token(t, "student@x.com"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	unchanged, err := e.store.Users().FindByEmail(context.Background(), "student@x.com")
	require.NoError(t, err)
	assert.Empty(t, unchanged.Role)
}

func TestPromote_AbsentUserNotFound(t *testing.T) {
	e := newEnv(t)
	e.seedUser(t, "admin@x.com", models.RoleAdmin)

	path := "/users/64f000000000000000000000?role=mentor&email=admin@x.com"
	w := e.request(t, http.MethodPut, path, e.token(t, "admin@x.com"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	users, err := e.store.Users().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestPromote_UnknownRoleRejected(t *testing.T) {
	e := newEnv(t)
	admin := e.seedUser(t, "admin@x.com", models.RoleAdmin)

	path := "/users/" + admin.ID.Hex() + "?role=superuser&email=admin@x.com"
	w := e.request(t, http.MethodPut, path, e.token(t, "admin@x.com"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
