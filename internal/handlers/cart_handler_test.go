package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Gazi-Farhana/summer-camp-server/internal/models"
)

func TestCartAddAndList(t *testing.T) {
	e := newEnv(t)
	courseID := primitive.NewObjectID()

	payload := map[string]interface{}{
		"course_id":    courseID.Hex(),
		"email":        "a@x.com",
		"course_title": "Go",
		"price":        15.0,
	}
	w := e.request(t, http.MethodPost, "/cart", "", payload)
	assert.Equal(t, http.StatusOK, w.Code)

	w = e.request(t, http.MethodGet, "/cart?email=a@x.com", e.token(t, "a@x.com"), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	decodeBody(t, w, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "Go", items[0].CourseTitle)
	assert.Empty(t, items[0].Enrolled)
}

func TestCartAdd_CannotPreEnroll(t *testing.T) {
	e := newEnv(t)

	payload := map[string]interface{}{
		"course_id": primitive.NewObjectID().Hex(),
		"email":     "a@x.com",
		"enrolled":  "enrolled",
	}
	w := e.request(t, http.MethodPost, "/cart", "", payload)
	assert.Equal(t, http.StatusOK, w.Code)

	items, err := e.store.Cart().ListEnrolled(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartList_SelfMatch(t *testing.T) {
	e := newEnv(t)
	e.seedCartItem(t, models.CartItem{Email: "a@x.com"})

	w := e.request(t, http.MethodGet, "/cart?email=a@x.com", e.token(t, "b@x.com"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.request(t, http.MethodGet, "/cart", e.token(t, "a@x.com"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCartListEnrolled_FiltersMarker(t *testing.T) {
	e := newEnv(t)
	e.seedCartItem(t, models.CartItem{Email: "a@x.com", CourseTitle: "pending"})
	e.seedCartItem(t, models.CartItem{Email: "a@x.com", CourseTitle: "done", Enrolled: models.EnrolledMarker})

	w := e.request(t, http.MethodGet, "/cart/enrolled?email=a@x.com", e.token(t, "a@x.com"), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	decodeBody(t, w, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "done", items[0].CourseTitle)
}

func TestCartGetOne(t *testing.T) {
	e := newEnv(t)
	item := e.seedCartItem(t, models.CartItem{Email: "a@x.com", CourseTitle: "Go"})

	w := e.request(t, http.MethodGet, "/cart/"+item.ID.Hex()+"?email=a@x.com", e.token(t, "a@x.com"), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.CartItem
	decodeBody(t, w, &got)
	assert.Equal(t, "Go", got.CourseTitle)
}

func TestCartGetOne_AbsentAnswersNull(t *testing.T) {
	e := newEnv(t)

	w := e.request(t, http.MethodGet, "/cart/64f000000000000000000000?email=a@x.com", e.token(t, "a@x.com"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null\n", w.Body.String())
}

func TestCartRemove_OwnEntry(t *testing.T) {
	e := newEnv(t)
	item := e.seedCartItem(t, models.CartItem{Email: "a@x.com"})

	w := e.request(t, http.MethodDelete, "/cart/"+item.ID.Hex(), e.token(t, "a@x.com"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deletedCount":1}`, w.Body.String())
}

func TestCartRemove_ForeignEntryUntouched(t *testing.T) {
	e := newEnv(t)
	item := e.seedCartItem(t, models.CartItem{Email: "a@x.com"})

	w := e.request(t, http.MethodDelete, "/cart/"+item.ID.Hex(), e.token(t, "b@x.com"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deletedCount":0}`, w.Body.String())

	items, err := e.store.Cart().ListByOwner(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartRemove_NoToken(t *testing.T) {
	e := newEnv(t)
	item := e.seedCartItem(t, models.CartItem{Email: "a@x.com"})

	w := e.request(t, http.MethodDelete, "/cart/"+item.ID.Hex(), "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
