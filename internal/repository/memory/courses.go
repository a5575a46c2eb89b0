package memory

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Gazi-Farhana/summer-camp-server/internal/models"
	"github.com/Gazi-Farhana/summer-camp-server/internal/repository"
)

type courseStore struct {
	s *Store
}

func (c *courseStore) Insert(_ context.Context, course models.Course) (primitive.ObjectID, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	c.s.courses = append(c.s.courses, course)
	return course.ID, nil
}

func (c *courseStore) ListApproved(_ context.Context) ([]models.Course, error) {
	return c.filter(func(course models.Course) bool {
		return course.Status == models.StatusApproved
	}), nil
}

func (c *courseStore) ListPopular(_ context.Context, limit int64) ([]models.Course, error) {
	approved := c.filter(func(course models.Course) bool {
		return course.Status == models.StatusApproved
	})
	sort.SliceStable(approved, func(i, j int) bool {
		return approved[i].Enrolled > approved[j].Enrolled
	})
	if int64(len(approved)) > limit {
		approved = approved[:limit]
	}
	return approved, nil
}

func (c *courseStore) ListAll(_ context.Context) ([]models.Course, error) {
	return c.filter(func(models.Course) bool { return true }), nil
}

func (c *courseStore) ListByMentor(_ context.Context, email string) ([]models.Course, error) {
	return c.filter(func(course models.Course) bool {
		return course.MentorEmail == email
	}), nil
}

func (c *courseStore) FindByMentor(_ context.Context, email string, id primitive.ObjectID) (*models.Course, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	for _, course := range c.s.courses {
		if course.ID == id && course.MentorEmail == email {
			found := course
			return &found, nil
		}
	}
	return nil, nil
}

func (c *courseStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Course, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	for _, course := range c.s.courses {
		if course.ID == id {
			found := course
			return &found, nil
		}
	}
	return nil, nil
}

func (c *courseStore) UpdateContent(_ context.Context, update models.CourseUpdate) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	for i := range c.s.courses {
		if c.s.courses[i].ID == update.ID && c.s.courses[i].MentorEmail == update.MentorEmail {
			c.s.courses[i].CourseTitle = update.CourseTitle
			c.s.courses[i].CourseImg = update.CourseImg
			c.s.courses[i].Price = update.Price
			c.s.courses[i].AvailableSeats = update.AvailableSeats
			return nil
		}
	}
	return repository.ErrNotFound
}

func (c *courseStore) SetStatus(_ context.Context, id primitive.ObjectID, status models.CourseStatus) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	for i := range c.s.courses {
		if c.s.courses[i].ID == id {
			c.s.courses[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func (c *courseStore) SetFeedback(_ context.Context, id primitive.ObjectID, feedback string) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	for i := range c.s.courses {
		if c.s.courses[i].ID == id {
			c.s.courses[i].Feedback = feedback
			return nil
		}
	}
	return repository.ErrNotFound
}

func (c *courseStore) filter(keep func(models.Course) bool) []models.Course {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	out := make([]models.Course, 0)
	for _, course := range c.s.courses {
		if keep(course) {
			out = append(out, course)
		}
	}
	return out
}
