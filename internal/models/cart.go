package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EnrolledMarker is the value Settle writes into a cart item once the
// matching payment has been recorded. An empty marker means "in cart".
const EnrolledMarker = "enrolled"

type CartItem struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CourseID    primitive.ObjectID `json:"course_id" bson:"course_id"`
	Email       string             `json:"email" bson:"email"`
	CourseTitle string             `json:"course_title" bson:"course_title"`
	CourseImg   string             `json:"course_img,omitempty" bson:"course_img,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	Enrolled    string             `json:"enrolled,omitempty" bson:"enrolled,omitempty"`
}
