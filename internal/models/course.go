package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CourseStatus string

const (
	StatusPending  CourseStatus = "pending"
	StatusApproved CourseStatus = "approved"
	StatusDenied   CourseStatus = "denied"
)

type Course struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CourseTitle    string             `json:"course_title" bson:"course_title"`
	CourseImg      string             `json:"course_img" bson:"course_img"`
	MentorName     string             `json:"mentor_name" bson:"mentor_name"`
	MentorEmail    string             `json:"mentor_email" bson:"mentor_email"`
	Price          float64            `json:"price" bson:"price"`
	AvailableSeats int                `json:"available_seats" bson:"available_seats"`
	Enrolled       int                `json:"enrolled" bson:"enrolled"`
	Status         CourseStatus       `json:"status" bson:"status"`
	Feedback       string             `json:"feedback,omitempty" bson:"feedback,omitempty"`
}

// CourseUpdate carries the fields a mentor may edit on an existing course.
type CourseUpdate struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id"`
	MentorEmail    string             `json:"mentor_email" bson:"mentor_email"`
	CourseTitle    string             `json:"course_title" bson:"course_title"`
	CourseImg      string             `json:"course_img" bson:"course_img"`
	Price          float64            `json:"price" bson:"price"`
	AvailableSeats int                `json:"available_seats" bson:"available_seats"`
}
