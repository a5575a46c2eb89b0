package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Gazi-Farhana/summer-camp-server/internal/models"
)

// MongoCourseRepository implements CourseRepository on the courses collection.
type MongoCourseRepository struct {
	collection *mongo.Collection
}

func NewMongoCourseRepository(client *mongo.Client, dbName string) *MongoCourseRepository {
	return &MongoCourseRepository{
		collection: client.Database(dbName).Collection("courses"),
	}
}

func (r *MongoCourseRepository) Insert(ctx context.Context, course models.Course) (primitive.ObjectID, error) {
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, course); err != nil {
		return primitive.NilObjectID, err
	}
	return course.ID, nil
}

func (r *MongoCourseRepository) ListApproved(ctx context.Context) ([]models.Course, error) {
	return r.list(ctx, bson.M{"status": models.StatusApproved})
}

func (r *MongoCourseRepository) ListPopular(ctx context.Context, limit int64) ([]models.Course, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "enrolled", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"status": models.StatusApproved}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err = cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *MongoCourseRepository) ListAll(ctx context.Context) ([]models.Course, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoCourseRepository) ListByMentor(ctx context.Context, email string) ([]models.Course, error) {
	return r.list(ctx, bson.M{"mentor_email": email})
}

func (r *MongoCourseRepository) FindByMentor(ctx context.Context, email string, id primitive.ObjectID) (*models.Course, error) {
	return r.findOne(ctx, bson.M{"mentor_email": email, "_id": id})
}

func (r *MongoCourseRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoCourseRepository) UpdateContent(ctx context.Context, update models.CourseUpdate) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"mentor_email": update.MentorEmail, "_id": update.ID},
		bson.M{"$set": bson.M{
			"course_title":    update.CourseTitle,
			"course_img":      update.CourseImg,
			"price":           update.Price,
			"available_seats": update.AvailableSeats,
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCourseRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status models.CourseStatus) error {
	return r.setField(ctx, id, "status", status)
}

func (r *MongoCourseRepository) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) error {
	return r.setField(ctx, id, "feedback", feedback)
}

func (r *MongoCourseRepository) setField(ctx context.Context, id primitive.ObjectID, field string, value interface{}) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{field: value}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCourseRepository) list(ctx context.Context, filter bson.M) ([]models.Course, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err = cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *MongoCourseRepository) findOne(ctx context.Context, filter bson.M) (*models.Course, error) {
	var course models.Course
	err := r.collection.FindOne(ctx, filter).Decode(&course)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}
