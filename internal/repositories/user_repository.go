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

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository() UserRepository {
	return &userRepository{
		collection: database.DB.Collection("users"),
	}
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	start := time.Now()
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Not found
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", "users").Inc()
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	metrics.MongoOperationDuration.WithLabelValues("find", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "users").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	start = time.Now()
	err = cursor.All(ctx, &users)
	metrics.MongoOperationDuration.WithLabelValues("cursor_all", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "users").Inc()
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	start := time.Now()
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Not found
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", "users").Inc()
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, user)
	metrics.MongoOperationDuration.WithLabelValues("insert", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", "users").Inc()
		return err
	}
	return nil
}
