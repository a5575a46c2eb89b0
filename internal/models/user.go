package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMentor UserRole = "mentor"
	// Students carry no explicit role field; an absent role means student.
)

type User struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	PhotoURL string             `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	Role     UserRole           `json:"role,omitempty" bson:"role,omitempty"`
}
