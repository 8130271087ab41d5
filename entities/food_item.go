package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FoodItem is a donor-posted surplus food document in the "foods" collection.
// Field names follow the wire format the frontend already speaks.
type FoodItem struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name            string             `bson:"name,omitempty" json:"name,omitempty"`
	Email           string             `bson:"email,omitempty" json:"email,omitempty"`
	AvailableStatus bool               `bson:"available_status" json:"available_status"`
	Photo           string             `bson:"photo,omitempty" json:"photo,omitempty"`
	FoodName        string             `bson:"food_name,omitempty" json:"food_name,omitempty"`
	FoodImage       string             `bson:"food_image,omitempty" json:"food_image,omitempty"`
	FoodQuantity    int                `bson:"food_quantity,omitempty" json:"food_quantity,omitempty"`
	PickupLocation  string             `bson:"pickup_location,omitempty" json:"pickup_location,omitempty"`
	ExpireDate      string             `bson:"expire_date,omitempty" json:"expire_date,omitempty"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
