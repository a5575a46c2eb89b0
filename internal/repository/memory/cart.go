package memory

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Gazi-Farhana/summer-camp-server/internal/models"
)

type cartStore struct {
	s *Store
}

func (c *cartStore) Insert(_ context.Context, item models.CartItem) (primitive.ObjectID, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	c.s.cart = append(c.s.cart, item)
	return item.ID, nil
}

func (c *cartStore) DeleteOwned(_ context.Context, email string, id primitive.ObjectID) (int64, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	for i := range c.s.cart {
		if c.s.cart[i].ID == id && c.s.cart[i].Email == email {
			c.s.cart = append(c.s.cart[:i], c.s.cart[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (c *cartStore) ListByOwner(_ context.Context, email string) ([]models.CartItem, error) {
	return c.filter(func(item models.CartItem) bool {
		return item.Email == email
	}), nil
}

func (c *cartStore) ListEnrolled(_ context.Context, email string) ([]models.CartItem, error) {
	return c.filter(func(item models.CartItem) bool {
		return item.Email == email && item.Enrolled == models.EnrolledMarker
	}), nil
}

func (c *cartStore) FindOwned(_ context.Context, email string, id primitive.ObjectID) (*models.CartItem, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	for _, item := range c.s.cart {
		if item.ID == id && item.Email == email {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

func (c *cartStore) filter(keep func(models.CartItem) bool) []models.CartItem {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	out := make([]models.CartItem, 0)
	for _, item := range c.s.cart {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
