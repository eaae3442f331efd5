package repositories

import (
	"context"
	"time"

	"urbannest-properties/internal/models"
	"urbannest-properties/pkg/database"
	"urbannest-properties/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type recommendationRepository struct {
	collection *mongo.Collection
}

func NewRecommendationRepository() RecommendationRepository {
	return &recommendationRepository{
		collection: database.DB.Collection("recommendations"),
	}
}

func (r *recommendationRepository) Insert(ctx context.Context, recommendation *models.Recommendation) error {
	recommendation.ID = primitive.NewObjectID()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, recommendation)
	metrics.MongoOperationDuration.WithLabelValues("insert", "recommendations").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", "recommendations").Inc()
		return err
	}
	return nil
}

func (r *recommendationRepository) FindByRecipient(ctx context.Context, recipientID primitive.ObjectID) ([]models.Recommendation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{"recipientId": recipientID}, opts)
	metrics.MongoOperationDuration.WithLabelValues("find", "recommendations").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "recommendations").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var recommendations []models.Recommendation
	start = time.Now()
	err = cursor.All(ctx, &recommendations)
	metrics.MongoOperationDuration.WithLabelValues("cursor_all", "recommendations").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "recommendations").Inc()
		return nil, err
	}
	return recommendations, nil
}
