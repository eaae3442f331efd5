package database

import (
	"context"
	"fmt"
	"time"

	"urbannest-properties/pkg/config"
	"urbannest-properties/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var DB *mongo.Database

func InitDB(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.Database.URI).
		SetConnectTimeout(10 * time.Second).
		SetMaxPoolSize(100)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	MongoClient = client
	DB = client.Database(cfg.Database.DBName)

	if err := createIndexes(ctx); err != nil {
		logger.GlobalLogger.Errorf("Failed to create indexes: %v", err)
	}

	logger.GlobalLogger.Println("MongoDB connected successfully")
	return nil
}

// createIndexes builds the property search indexes. The unique index on the
// natural id backs the duplicate-id conflict on create and the import upsert.
func createIndexes(ctx context.Context) error {
	properties := DB.Collection("properties")
	_, err := properties.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "title", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "state", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "city", Value: 1},
				{Key: "state", Value: 1},
				{Key: "type", Value: 1},
				{Key: "listingType", Value: 1},
				{Key: "price", Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: "amenities", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "tags", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "createdBy", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	})
	if err != nil {
		return err
	}

	users := DB.Collection("users")
	_, err = users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	favorites := DB.Collection("favorites")
	_, err = favorites.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "propertyId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func CloseDB() {
	if MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := MongoClient.Disconnect(ctx); err != nil {
			logger.GlobalLogger.Errorf("Error closing MongoDB: %v", err)
		} else {
			logger.GlobalLogger.Println("MongoDB connection closed")
		}
	}
}
