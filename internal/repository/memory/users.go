package memory

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Gazi-Farhana/summer-camp-server/internal/models"
	"github.com/Gazi-Farhana/summer-camp-server/internal/repository"
)

type userStore struct {
	s *Store
}

func (u *userStore) RegisterIfAbsent(_ context.Context, user models.User) (bool, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	for _, existing := range u.s.users {
		if existing.Email == user.Email {
			return false, nil
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	u.s.users = append(u.s.users, user)
	return true, nil
}

func (u *userStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	for _, existing := range u.s.users {
		if existing.Email == email {
			user := existing
			return &user, nil
		}
	}
	return nil, nil
}

func (u *userStore) List(_ context.Context) ([]models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	out := make([]models.User, len(u.s.users))
	copy(out, u.s.users)
	return out, nil
}

func (u *userStore) UpdateRole(_ context.Context, id primitive.ObjectID, role models.UserRole) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	for i := range u.s.users {
		if u.s.users[i].ID == id {
			u.s.users[i].Role = role
			return nil
		}
	}
	return repository.ErrNotFound
}

func (u *userStore) HasRole(_ context.Context, email string, role models.UserRole) (bool, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	for _, existing := range u.s.users {
		if existing.Email == email && existing.Role == role {
			return true, nil
		}
	}
	return false, nil
}
