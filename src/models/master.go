package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Master is an admin account. Password holds the bcrypt hash and is never
// serialized back to callers.
type Master struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username  string             `bson:"username" json:"username"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// MasterCredentials is the body of the admin create and login endpoints.
type MasterCredentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
