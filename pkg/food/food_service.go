package food

import (
	"context"

	"FoodShare-Server/domain"
	"FoodShare-Server/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type (
	FoodService interface {
		AddFood(ctx context.Context, req domain.AddFoodRequest) (domain.InsertResult, error)
		GetAvailableFoods(ctx context.Context) ([]entities.FoodItem, error)
		GetAllFoods(ctx context.Context) ([]entities.FoodItem, error)
		GetFoodByID(ctx context.Context, id string) (*entities.FoodItem, error)
		GetMyFoods(ctx context.Context, email string) ([]entities.FoodItem, error)
		UpdateFood(ctx context.Context, id string, fields map[string]interface{}) (domain.UpdateResult, error)
		DeleteFood(ctx context.Context, id string) (domain.DeleteResult, error)
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{foodRepository: foodRepository}
}

func (s *foodService) AddFood(ctx context.Context, req domain.AddFoodRequest) (domain.InsertResult, error) {
	foodItem := &entities.FoodItem{
		Name:            req.Name,
		Email:           req.Email,
		AvailableStatus: req.AvailableStatus,
		Photo:           req.Photo,
		FoodName:        req.FoodName,
		FoodImage:       req.FoodImage,
		FoodQuantity:    req.FoodQuantity,
		PickupLocation:  req.PickupLocation,
		ExpireDate:      req.ExpireDate,
		Notes:           req.Notes,
	}

	res, err := s.foodRepository.InsertFood(ctx, foodItem)
	if err != nil {
		return domain.InsertResult{}, err
	}

	insertedID := ""
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		insertedID = oid.Hex()
	}
	return domain.InsertResult{Acknowledged: true, InsertedID: insertedID}, nil
}

func (s *foodService) GetAvailableFoods(ctx context.Context) ([]entities.FoodItem, error) {
	return s.foodRepository.GetFoods(ctx, true)
}

func (s *foodService) GetAllFoods(ctx context.Context) ([]entities.FoodItem, error) {
	return s.foodRepository.GetFoods(ctx, false)
}

func (s *foodService) GetFoodByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	return s.foodRepository.GetFoodByID(ctx, id)
}

func (s *foodService) GetMyFoods(ctx context.Context, email string) ([]entities.FoodItem, error) {
	return s.foodRepository.GetFoodsByOwner(ctx, email)
}

func (s *foodService) UpdateFood(ctx context.Context, id string, fields map[string]interface{}) (domain.UpdateResult, error) {
	set := bson.M{}
	for key, value := range fields {
		set[key] = value
	}

	res, err := s.foodRepository.UpdateFood(ctx, id, set)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (s *foodService) DeleteFood(ctx context.Context, id string) (domain.DeleteResult, error) {
	res, err := s.foodRepository.DeleteFood(ctx, id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return domain.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
