package domain

import "FoodShare-Server/entities"

var (
	MessageFailedAddRequest    = "failed to add food request"
	MessageFailedGetRequests   = "failed to retrieve food requests"
	MessageFailedAcceptRequest = "failed to accept food request"
	MessageFailedRejectRequest = "failed to reject food request"
	MessageFailedDeleteRequest = "failed to delete food request"
)

type (
	// AddFoodRequestRequest is the create schema for a food claim. Status and
	// food_id are accepted on the wire but always overwritten by the server:
	// status starts at "pending" and food_id comes from the route parameter.
	AddFoodRequestRequest struct {
		WriteLocation string `json:"writeLocation" validate:"omitempty"`
		Reason        string `json:"reason" validate:"omitempty"`
		Number        string `json:"number" validate:"omitempty"`
		Email         string `json:"email" validate:"omitempty,email"`
		Username      string `json:"username" validate:"omitempty"`
		Photo         string `json:"photo" validate:"omitempty"`
		Status        string `json:"status" validate:"omitempty"`
		FoodID        string `json:"food_id" validate:"omitempty"`
	}

	// AcceptFoodRequestRequest carries the accepting owner's email, recorded
	// on the request document alongside the status flip.
	AcceptFoodRequestRequest struct {
		UserEmail string `json:"userEmail" validate:"omitempty,email"`
	}

	// FoodRequestWithFood is a request joined with the food it references.
	// FoodDetails is explicitly null when the food has since been deleted.
	FoodRequestWithFood struct {
		entities.FoodRequest `bson:",inline"`
		FoodDetails          *entities.FoodItem `json:"foodDetails"`
	}
)
