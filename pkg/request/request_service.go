package request

import (
	"context"

	"FoodShare-Server/domain"
	"FoodShare-Server/entities"
	"FoodShare-Server/pkg/food"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type (
	RequestService interface {
		AddRequest(ctx context.Context, foodID string, req domain.AddFoodRequestRequest) (domain.InsertResult, error)
		GetRequestsByFood(ctx context.Context, foodID string) ([]entities.FoodRequest, error)
		GetAllRequestsByFood(ctx context.Context, foodID string) ([]entities.FoodRequest, error)
		GetMyRequests(ctx context.Context, email string) ([]domain.FoodRequestWithFood, error)
		AcceptRequest(ctx context.Context, id string, userEmail string) (domain.UpdateResult, error)
		RejectRequest(ctx context.Context, id string) (domain.UpdateResult, error)
		DeleteRequest(ctx context.Context, id string) (domain.DeleteResult, error)
	}

	requestService struct {
		requestRepository RequestRepository
		foodRepository    food.FoodRepository
		log               *zap.Logger
	}
)

func NewRequestService(requestRepository RequestRepository, foodRepository food.FoodRepository, log *zap.Logger) RequestService {
	return &requestService{
		requestRepository: requestRepository,
		foodRepository:    foodRepository,
		log:               log.Named("request-service"),
	}
}

// AddRequest stores a new claim against the food named by the route. Status
// and food_id are system-assigned here; whatever the client sent for them is
// discarded. The food id is a soft reference and is not checked to exist.
func (s *requestService) AddRequest(ctx context.Context, foodID string, req domain.AddFoodRequestRequest) (domain.InsertResult, error) {
	request := &entities.FoodRequest{
		WriteLocation: req.WriteLocation,
		Reason:        req.Reason,
		Number:        req.Number,
		Email:         req.Email,
		Username:      req.Username,
		Photo:         req.Photo,
		Status:        entities.RequestStatusPending,
		FoodID:        foodID,
	}

	res, err := s.requestRepository.InsertRequest(ctx, request)
	if err != nil {
		return domain.InsertResult{}, err
	}

	insertedID := ""
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		insertedID = oid.Hex()
	}
	return domain.InsertResult{Acknowledged: true, InsertedID: insertedID}, nil
}

func (s *requestService) GetRequestsByFood(ctx context.Context, foodID string) ([]entities.FoodRequest, error) {
	return s.requestRepository.GetRequestsByFood(ctx, foodID, false)
}

func (s *requestService) GetAllRequestsByFood(ctx context.Context, foodID string) ([]entities.FoodRequest, error) {
	if _, err := primitive.ObjectIDFromHex(foodID); err != nil {
		return nil, domain.ErrInvalidObjectID
	}
	return s.requestRepository.GetRequestsByFood(ctx, foodID, true)
}

// GetMyRequests is an application-level join: one point lookup per request.
// A request whose food has been deleted keeps its row with foodDetails null.
func (s *requestService) GetMyRequests(ctx context.Context, email string) ([]domain.FoodRequestWithFood, error) {
	requests, err := s.requestRepository.GetRequestsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	joined := make([]domain.FoodRequestWithFood, 0, len(requests))
	for _, req := range requests {
		foodItem, err := s.foodRepository.GetFoodByID(ctx, req.FoodID)
		if err != nil {
			return nil, err
		}
		joined = append(joined, domain.FoodRequestWithFood{
			FoodRequest: req,
			FoodDetails: foodItem,
		})
	}
	return joined, nil
}

// AcceptRequest runs two guarded writes in sequence: flip the request to
// accepted while it is still pending, then close the food's availability
// while it is still open. There is no transaction and no rollback; a crash
// between the writes leaves an accepted request against a still-open item.
func (s *requestService) AcceptRequest(ctx context.Context, id string, userEmail string) (domain.UpdateResult, error) {
	request, err := s.requestRepository.GetRequestByID(ctx, id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	if request == nil {
		return domain.UpdateResult{Acknowledged: true}, nil
	}

	res, err := s.requestRepository.MarkAccepted(ctx, id, userEmail)
	if err != nil {
		return domain.UpdateResult{}, err
	}

	if res.ModifiedCount > 0 {
		if _, err := s.foodRepository.CloseAvailability(ctx, request.FoodID); err != nil {
			// Status is already accepted at this point; surface the failure
			// without undoing it.
			s.log.Error("food availability update failed after accept",
				zap.String("request_id", id),
				zap.String("food_id", request.FoodID),
				zap.Error(err),
			)
			return domain.UpdateResult{}, err
		}
	}

	return domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (s *requestService) RejectRequest(ctx context.Context, id string) (domain.UpdateResult, error) {
	res, err := s.requestRepository.MarkRejected(ctx, id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (s *requestService) DeleteRequest(ctx context.Context, id string) (domain.DeleteResult, error) {
	res, err := s.requestRepository.DeleteRequest(ctx, id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return domain.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
