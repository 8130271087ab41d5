package food

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
	FoodRepository interface {
		InsertFood(ctx context.Context, foodItem *entities.FoodItem) (*mongo.InsertOneResult, error)
		GetFoods(ctx context.Context, availableOnly bool) ([]entities.FoodItem, error)
		GetFoodByID(ctx context.Context, id string) (*entities.FoodItem, error)
		GetFoodsByOwner(ctx context.Context, email string) ([]entities.FoodItem, error)
		UpdateFood(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error)
		DeleteFood(ctx context.Context, id string) (*mongo.DeleteResult, error)
		CloseAvailability(ctx context.Context, id string) (*mongo.UpdateResult, error)
	}

	foodRepository struct {
		collection *mongo.Collection
		log        *zap.Logger
	}
)

func NewFoodRepository(db *mongo.Database, log *zap.Logger) FoodRepository {
	return &foodRepository{
		collection: db.Collection("foods"),
		log:        log.Named("food-repository"),
	}
}

func (r *foodRepository) InsertFood(ctx context.Context, foodItem *entities.FoodItem) (*mongo.InsertOneResult, error) {
	foodItem.CreatedAt = time.Now()

	res, err := r.collection.InsertOne(ctx, foodItem)
	if err != nil {
		return nil, fmt.Errorf("failed to insert food: %w", err)
	}
	return res, nil
}

func (r *foodRepository) GetFoods(ctx context.Context, availableOnly bool) ([]entities.FoodItem, error) {
	filter := bson.M{}
	if availableOnly {
		filter["available_status"] = true
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find foods: %w", err)
	}
	defer cursor.Close(ctx)

	foods := []entities.FoodItem{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, fmt.Errorf("failed to decode foods: %w", err)
	}
	return foods, nil
}

// GetFoodByID returns nil without an error when the id is malformed or
// unmatched; the API echoes that through as a null body.
func (r *foodRepository) GetFoodByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var foodItem entities.FoodItem
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&foodItem); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find food %s: %w", id, err)
	}
	return &foodItem, nil
}

func (r *foodRepository) GetFoodsByOwner(ctx context.Context, email string) ([]entities.FoodItem, error) {
	// Descending _id stands in for insertion order: newest first.
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find foods for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	foods := []entities.FoodItem{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, fmt.Errorf("failed to decode foods: %w", err)
	}
	return foods, nil
}

func (r *foodRepository) UpdateFood(ctx context.Context, id string, fields bson.M) (*mongo.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &mongo.UpdateResult{}, nil
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to update food %s: %w", id, err)
	}
	return res, nil
}

// DeleteFood is idempotent: a malformed or unmatched id yields a zero-effect
// result, not an error.
func (r *foodRepository) DeleteFood(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &mongo.DeleteResult{}, nil
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete food %s: %w", id, err)
	}
	return res, nil
}

// CloseAvailability flips available_status to false only while it is still
// true, so concurrent accepts against the same item cannot both claim it.
func (r *foodRepository) CloseAvailability(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &mongo.UpdateResult{}, nil
	}

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID, "available_status": true},
		bson.M{"$set": bson.M{"available_status": false}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to close availability of food %s: %w", id, err)
	}

	if res.ModifiedCount == 0 {
		r.log.Warn("availability already closed", zap.String("food_id", id))
	}
	return res, nil
}
