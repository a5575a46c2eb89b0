package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Gazi-Farhana/summer-camp-server/internal/models"
)

// MongoPaymentRepository implements PaymentRepository. Settle spans the
// payment_history, cart, and courses collections inside one session.
type MongoPaymentRepository struct {
	client   *mongo.Client
	payments *mongo.Collection
	cart     *mongo.Collection
	courses  *mongo.Collection
}

func NewMongoPaymentRepository(client *mongo.Client, dbName string) *MongoPaymentRepository {
	db := client.Database(dbName)
	return &MongoPaymentRepository{
		client:   client,
		payments: db.Collection("payment_history"),
		cart:     db.Collection("cart"),
		courses:  db.Collection("courses"),
	}
}

func (r *MongoPaymentRepository) Settle(ctx context.Context, payment models.Payment) (*SettlementResult, error) {
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}

	session, err := r.client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.payments.InsertOne(sc, payment); err != nil {
			return nil, err
		}

		cartResult, err := r.cart.UpdateOne(sc,
			bson.M{"_id": payment.CartID},
			bson.M{"$set": bson.M{"enrolled": models.EnrolledMarker}},
		)
		if err != nil {
			return nil, err
		}
		if cartResult.MatchedCount == 0 {
			return nil, ErrNotFound
		}

		// Conditional decrement: only a course with seats left matches,
		// so concurrent settlements cannot drive the count negative.
		seatResult, err := r.courses.UpdateOne(sc,
			bson.M{"_id": payment.CourseID, "available_seats": bson.M{"$gt": 0}},
			bson.M{"$inc": bson.M{"available_seats": -1, "enrolled": 1}},
		)
		if err != nil {
			return nil, err
		}
		if seatResult.MatchedCount == 0 {
			return nil, ErrSeatsExhausted
		}

		return &SettlementResult{
			PaymentID:     payment.ID,
			CartModified:  cartResult.ModifiedCount,
			SeatsModified: seatResult.ModifiedCount,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*SettlementResult), nil
}

func (r *MongoPaymentRepository) ListByPayer(ctx context.Context, email string) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.payments.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
