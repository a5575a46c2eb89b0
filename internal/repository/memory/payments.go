package memory

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Gazi-Farhana/summer-camp-server/internal/models"
	"github.com/Gazi-Farhana/summer-camp-server/internal/repository"
)

type paymentStore struct {
	s *Store
}

// Settle holds the write lock across all three steps, so a settlement
// is observed either entirely or not at all. All checks run before the
// first mutation.
func (p *paymentStore) Settle(_ context.Context, payment models.Payment) (*repository.SettlementResult, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	cartIdx := -1
	for i := range p.s.cart {
		if p.s.cart[i].ID == payment.CartID {
			cartIdx = i
			break
		}
	}
	if cartIdx == -1 {
		return nil, repository.ErrNotFound
	}

	courseIdx := -1
	for i := range p.s.courses {
		if p.s.courses[i].ID == payment.CourseID {
			courseIdx = i
			break
		}
	}
	if courseIdx == -1 || p.s.courses[courseIdx].AvailableSeats <= 0 {
		return nil, repository.ErrSeatsExhausted
	}

	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	p.s.payments = append(p.s.payments, payment)
	p.s.cart[cartIdx].Enrolled = models.EnrolledMarker
	p.s.courses[courseIdx].AvailableSeats--
	p.s.courses[courseIdx].Enrolled++

	return &repository.SettlementResult{
		PaymentID:     payment.ID,
		CartModified:  1,
		SeatsModified: 1,
	}, nil
}

func (p *paymentStore) ListByPayer(_ context.Context, email string) ([]models.Payment, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	out := make([]models.Payment, 0)
	for _, payment := range p.s.payments {
		if payment.Email == email {
			out = append(out, payment)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}
