package request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"FoodShare-Server/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type (
	RequestRepository interface {
		InsertRequest(ctx context.Context, request *entities.FoodRequest) (*mongo.InsertOneResult, error)
		GetRequestsByFood(ctx context.Context, foodID string, newestFirst bool) ([]entities.FoodRequest, error)
		GetRequestsByEmail(ctx context.Context, email string) ([]entities.FoodRequest, error)
		GetRequestByID(ctx context.Context, id string) (*entities.FoodRequest, error)
		MarkAccepted(ctx context.Context, id string, userEmail string) (*mongo.UpdateResult, error)
		MarkRejected(ctx context.Context, id string) (*mongo.UpdateResult, error)
		DeleteRequest(ctx context.Context, id string) (*mongo.DeleteResult, error)
	}

	requestRepository struct {
		collection *mongo.Collection
		log        *zap.Logger
	}
)

func NewRequestRepository(db *mongo.Database, log *zap.Logger) RequestRepository {
	return &requestRepository{
		collection: db.Collection("foodRequest"),
		log:        log.Named("request-repository"),
	}
}

func (r *requestRepository) InsertRequest(ctx context.Context, request *entities.FoodRequest) (*mongo.InsertOneResult, error) {
	request.CreatedAt = time.Now()

	res, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to insert food request: %w", err)
	}
	return res, nil
}

func (r *requestRepository) GetRequestsByFood(ctx context.Context, foodID string, newestFirst bool) ([]entities.FoodRequest, error) {
	opts := options.Find()
	if newestFirst {
		opts.SetSort(bson.D{{Key: "created_at", Value: -1}})
	}

	cursor, err := r.collection.Find(ctx, bson.M{"food_id": foodID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find requests for food %s: %w", foodID, err)
	}
	defer cursor.Close(ctx)

	requests := []entities.FoodRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode requests: %w", err)
	}
	return requests, nil
}

func (r *requestRepository) GetRequestsByEmail(ctx context.Context, email string) ([]entities.FoodRequest, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to find requests for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	requests := []entities.FoodRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode requests: %w", err)
	}
	return requests, nil
}

func (r *requestRepository) GetRequestByID(ctx context.Context, id string) (*entities.FoodRequest, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var request entities.FoodRequest
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&request); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find request %s: %w", id, err)
	}
	return &request, nil
}

// MarkAccepted transitions the request to accepted only from pending. A
// request already accepted or rejected matches nothing and stays untouched.
func (r *requestRepository) MarkAccepted(ctx context.Context, id string, userEmail string) (*mongo.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &mongo.UpdateResult{}, nil
	}

	set := bson.M{"status": entities.RequestStatusAccepted}
	if userEmail != "" {
		set["userEmail"] = userEmail
	}

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID, "status": entities.RequestStatusPending},
		bson.M{"$set": set},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to accept request %s: %w", id, err)
	}
	return res, nil
}

func (r *requestRepository) MarkRejected(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &mongo.UpdateResult{}, nil
	}

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID, "status": entities.RequestStatusPending},
		bson.M{"$set": bson.M{"status": entities.RequestStatusRejected}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reject request %s: %w", id, err)
	}
	return res, nil
}

func (r *requestRepository) DeleteRequest(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &mongo.DeleteResult{}, nil
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete request %s: %w", id, err)
	}
	return res, nil
}
