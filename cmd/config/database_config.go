package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"FoodShare-Server/internal/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const databaseName = "foodShareDB"

// MongoDB wraps the process-wide client. It is constructed once at startup,
// injected into the repositories, and disconnected on shutdown.
type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
	log    *zap.Logger
}

func ConnectDB(log *zap.Logger) (*MongoDB, error) {
	logger := log.Named("mongodb")

	cluster := utils.GetConfig("DB_CLUSTER")
	uri := fmt.Sprintf(
		"mongodb+srv://%s:%s@%s.scnhrfl.mongodb.net/?retryWrites=true&w=majority&appName=%s",
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASS"),
		cluster,
		capitalize(cluster),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.Info("Connected to MongoDB", zap.String("cluster", cluster))

	return &MongoDB{
		client: client,
		db:     client.Database(databaseName),
		log:    logger,
	}, nil
}

func (m *MongoDB) Database() *mongo.Database {
	return m.db
}

func (m *MongoDB) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	m.log.Info("Closing MongoDB connection")
	return m.client.Disconnect(ctx)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
