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
)

type favoriteRepository struct {
	collection *mongo.Collection
}

func NewFavoriteRepository() FavoriteRepository {
	return &favoriteRepository{
		collection: database.DB.Collection("favorites"),
	}
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, propertyID primitive.ObjectID) (bool, error) {
	start := time.Now()
	count, err := r.collection.CountDocuments(ctx, bson.M{"userId": userID, "propertyId": propertyID})
	metrics.MongoOperationDuration.WithLabelValues("count_documents", "favorites").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("count_documents", "favorites").Inc()
		return false, err
	}
	return count > 0, nil
}

func (r *favoriteRepository) Insert(ctx context.Context, favorite *models.Favorite) error {
	favorite.ID = primitive.NewObjectID()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, favorite)
	metrics.MongoOperationDuration.WithLabelValues("insert", "favorites").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", "favorites").Inc()
		return err
	}
	return nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, propertyID primitive.ObjectID) error {
	start := time.Now()
	result, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID, "propertyId": propertyID})
	metrics.MongoOperationDuration.WithLabelValues("delete_one", "favorites").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("delete_one", "favorites").Inc()
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *favoriteRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Favorite, error) {
	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	metrics.MongoOperationDuration.WithLabelValues("find", "favorites").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "favorites").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var favorites []models.Favorite
	start = time.Now()
	err = cursor.All(ctx, &favorites)
	metrics.MongoOperationDuration.WithLabelValues("cursor_all", "favorites").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "favorites").Inc()
		return nil, err
	}
	return favorites, nil
}
