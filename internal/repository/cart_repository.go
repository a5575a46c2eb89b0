package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Gazi-Farhana/summer-camp-server/internal/models"
)

// MongoCartRepository implements CartRepository on the cart collection.
type MongoCartRepository struct {
	collection *mongo.Collection
}

func NewMongoCartRepository(client *mongo.Client, dbName string) *MongoCartRepository {
	return &MongoCartRepository{
		collection: client.Database(dbName).Collection("cart"),
	}
}

func (r *MongoCartRepository) Insert(ctx context.Context, item models.CartItem) (primitive.ObjectID, error) {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, item); err != nil {
		return primitive.NilObjectID, err
	}
	return item.ID, nil
}

func (r *MongoCartRepository) DeleteOwned(ctx context.Context, email string, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "email": email})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *MongoCartRepository) ListByOwner(ctx context.Context, email string) ([]models.CartItem, error) {
	return r.list(ctx, bson.M{"email": email})
}

func (r *MongoCartRepository) ListEnrolled(ctx context.Context, email string) ([]models.CartItem, error) {
	return r.list(ctx, bson.M{"email": email, "enrolled": models.EnrolledMarker})
}

func (r *MongoCartRepository) FindOwned(ctx context.Context, email string, id primitive.ObjectID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.collection.FindOne(ctx, bson.M{"email": email, "_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MongoCartRepository) list(ctx context.Context, filter bson.M) ([]models.CartItem, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.CartItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
