package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

// FoodRequest is a requester's claim against a FoodItem, stored in the
// "foodRequest" collection. FoodID is a soft reference: the hex id of the
// target food, with no store-enforced integrity.
type FoodRequest struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	WriteLocation string             `bson:"writeLocation,omitempty" json:"writeLocation,omitempty"`
	Reason        string             `bson:"reason,omitempty" json:"reason,omitempty"`
	Number        string             `bson:"number,omitempty" json:"number,omitempty"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Username      string             `bson:"username,omitempty" json:"username,omitempty"`
	Photo         string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Status        string             `bson:"status" json:"status"`
	FoodID        string             `bson:"food_id" json:"food_id"`
	UserEmail     string             `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	CreatedAt     time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
