// Package memory holds an in-memory implementation of the repository
// interfaces. It backs the handler tests and mirrors the semantics of
// the Mongo implementations, including the all-or-nothing settlement.
package memory

import (
	"sync"

	"github.com/Gazi-Farhana/summer-camp-server/internal/models"
	"github.com/Gazi-Farhana/summer-camp-server/internal/repository"
)

// Store owns the shared data; the per-collection views returned by
// Users, Courses, Cart, and Payments implement the repository
// interfaces over it.
type Store struct {
	mu       sync.RWMutex
	users    []models.User
	courses  []models.Course
	cart     []models.CartItem
	payments []models.Payment
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Users() repository.UserRepository {
	return &userStore{s}
}

func (s *Store) Courses() repository.CourseRepository {
	return &courseStore{s}
}

func (s *Store) Cart() repository.CartRepository {
	return &cartStore{s}
}

func (s *Store) Payments() repository.PaymentRepository {
	return &paymentStore{s}
}
