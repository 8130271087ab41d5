package domain

var (
	MessageFailedAddFood    = "failed to add food item"
	MessageFailedUpdateFood = "failed to update food item"
	MessageFailedDeleteFood = "failed to delete food item"
	MessageFailedGetFoods   = "failed to retrieve food items"
)

type (
	// AddFoodRequest is the declarative create schema: its json tags define
	// the complete set of keys a client may send. Anything else is rejected
	// before the insert.
	AddFoodRequest struct {
		Name            string `json:"name" validate:"omitempty"`
		Email           string `json:"email" validate:"omitempty,email"`
		AvailableStatus bool   `json:"available_status"`
		Photo           string `json:"photo" validate:"omitempty"`
		FoodName        string `json:"food_name" validate:"omitempty"`
		FoodImage       string `json:"food_image" validate:"omitempty"`
		FoodQuantity    int    `json:"food_quantity" validate:"omitempty,min=0"`
		PickupLocation  string `json:"pickup_location" validate:"omitempty"`
		ExpireDate      string `json:"expire_date" validate:"omitempty"`
		Notes           string `json:"notes" validate:"omitempty"`
	}

	// UpdateFoodRequest is the mutable subset. Owner identity fields (name,
	// email, photo) are immutable after creation and deliberately absent.
	UpdateFoodRequest struct {
		AvailableStatus bool   `json:"available_status"`
		FoodName        string `json:"food_name" validate:"omitempty"`
		FoodImage       string `json:"food_image" validate:"omitempty"`
		FoodQuantity    int    `json:"food_quantity" validate:"omitempty,min=0"`
		PickupLocation  string `json:"pickup_location" validate:"omitempty"`
		ExpireDate      string `json:"expire_date" validate:"omitempty"`
		Notes           string `json:"notes" validate:"omitempty"`
	}
)
