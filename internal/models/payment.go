package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is immutable once written by Settle.
type Payment struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	TransactionID string             `json:"transaction_id" bson:"transaction_id"`
	Price         float64            `json:"price" bson:"price"`
	Date          time.Time          `json:"date" bson:"date"`
	CartID        primitive.ObjectID `json:"cart_id" bson:"cart_id"`
	CourseID      primitive.ObjectID `json:"course_id" bson:"course_id"`
	CourseTitle   string             `json:"course_title" bson:"course_title"`
}
