package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Gazi-Farhana/summer-camp-server/internal/models"
)

// UserRepository is the role directory: one record per email.
type UserRepository interface {
	// RegisterIfAbsent inserts the user unless the email is already
	// registered. The bool reports whether an insert happened.
	RegisterIfAbsent(ctx context.Context, user models.User) (bool, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	// UpdateRole sets the role of an existing user; ErrNotFound if the
	// id matches nothing. It never inserts.
	UpdateRole(ctx context.Context, id primitive.ObjectID, role models.UserRole) error
	// HasRole reports whether the email is registered with exactly the
	// given role. Absent users have no role.
	HasRole(ctx context.Context, email string, role models.UserRole) (bool, error)
}

// CourseRepository defines methods for course catalog access.
type CourseRepository interface {
	Insert(ctx context.Context, course models.Course) (primitive.ObjectID, error)
	ListApproved(ctx context.Context) ([]models.Course, error)
	// ListPopular returns approved courses ordered by enrolled count
	// descending, at most limit entries.
	ListPopular(ctx context.Context, limit int64) ([]models.Course, error)
	ListAll(ctx context.Context) ([]models.Course, error)
	ListByMentor(ctx context.Context, email string) ([]models.Course, error)
	FindByMentor(ctx context.Context, email string, id primitive.ObjectID) (*models.Course, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	// UpdateContent edits the mentor-owned fields of an existing course.
	// The filter matches both the id and the owning mentor's email;
	// ErrNotFound if nothing matches. It never inserts.
	UpdateContent(ctx context.Context, update models.CourseUpdate) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.CourseStatus) error
	SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) error
}

// CartRepository defines methods for the cart / enrollment ledger.
type CartRepository interface {
	Insert(ctx context.Context, item models.CartItem) (primitive.ObjectID, error)
	// DeleteOwned removes the item only when it belongs to email,
	// returning the number of documents removed.
	DeleteOwned(ctx context.Context, email string, id primitive.ObjectID) (int64, error)
	ListByOwner(ctx context.Context, email string) ([]models.CartItem, error)
	ListEnrolled(ctx context.Context, email string) ([]models.CartItem, error)
	FindOwned(ctx context.Context, email string, id primitive.ObjectID) (*models.CartItem, error)
}

// SettlementResult aggregates the three sub-results of a settlement for
// observability; correctness is enforced inside Settle itself.
type SettlementResult struct {
	PaymentID     primitive.ObjectID `json:"insertedId"`
	CartModified  int64              `json:"cartModified"`
	SeatsModified int64              `json:"seatsModified"`
}

// PaymentRepository records settlements and serves payment history.
type PaymentRepository interface {
	// Settle records the payment, flips the referenced cart item to
	// enrolled, and moves one seat from available to enrolled on the
	// referenced course. The three writes happen inside one store
	// transaction: ErrNotFound if the cart item is missing,
	// ErrSeatsExhausted if the course has no seats left, and in either
	// case nothing is persisted.
	Settle(ctx context.Context, payment models.Payment) (*SettlementResult, error)
	// ListByPayer returns the payer's history, newest first.
	ListByPayer(ctx context.Context, email string) ([]models.Payment, error)
}
