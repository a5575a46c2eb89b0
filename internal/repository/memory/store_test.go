package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Gazi-Farhana/summer-camp-server/internal/models"
	"github.com/Gazi-Farhana/summer-camp-server/internal/repository"
)

func TestSettle_ConcurrentSettlementsNeverOversell(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	const seats = 3
	const attempts = 20

	courseID, err := store.Courses().Insert(ctx, models.Course{
		CourseTitle:    "Kayaking",
		Status:         models.StatusApproved,
		AvailableSeats: seats,
	})
	require.NoError(t, err)

	items := make([]models.CartItem, attempts)
	for i := range items {
		id, err := store.Cart().Insert(ctx, models.CartItem{Email: "a@x.com", CourseID: courseID})
		require.NoError(t, err)
		items[i].ID = id
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	settled, exhausted := 0, 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Payments().Settle(ctx, models.Payment{
				Email:    "a@x.com",
				CartID:   items[i].ID,
				CourseID: courseID,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				settled++
			case err == repository.ErrSeatsExhausted:
				exhausted++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, seats, settled)
	assert.Equal(t, attempts-seats, exhausted)

	course, err := store.Courses().FindByID(ctx, courseID)
	require.NoError(t, err)
	assert.Equal(t, 0, course.AvailableSeats)
	assert.Equal(t, seats, course.Enrolled)

	payments, err := store.Payments().ListByPayer(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, payments, seats)
}

func TestUpdateRole_AbsentUser(t *testing.T) {
	store := NewStore()

	err := store.Users().UpdateRole(context.Background(), primitive.NewObjectID(), models.RoleMentor)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
