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
	"golang.org/x/sync/errgroup"
)

type propertyRepository struct {
	collection *mongo.Collection
}

func NewPropertyRepository() PropertyRepository {
	return &propertyRepository{
		collection: database.DB.Collection("properties"),
	}
}

func (r *propertyRepository) FindByInternalID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	start := time.Now()
	var property models.Property
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Not found
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", "properties").Inc()
		return nil, err
	}
	return &property, nil
}

// Search runs the count and the page fetch concurrently against the same
// filter document.
func (r *propertyRepository) Search(ctx context.Context, filters *models.ListFilters) ([]models.Property, int64, error) {
	query := BuildListQuery(filters)
	findOptions := BuildFindOptions(filters)

	var (
		total      int64
		properties []models.Property
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		start := time.Now()
		count, err := r.collection.CountDocuments(gctx, query)
		metrics.MongoOperationDuration.WithLabelValues("count_documents", "properties").Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.MongoErrorsTotal.WithLabelValues("count_documents", "properties").Inc()
			return err
		}
		total = count
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		cursor, err := r.collection.Find(gctx, query, findOptions)
		metrics.MongoOperationDuration.WithLabelValues("find", "properties").Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.MongoErrorsTotal.WithLabelValues("find", "properties").Inc()
			return err
		}
		defer cursor.Close(gctx)

		start = time.Now()
		err = cursor.All(gctx, &properties)
		metrics.MongoOperationDuration.WithLabelValues("cursor_all", "properties").Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "properties").Inc()
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

func (r *propertyRepository) FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Property, error) {
	query := bson.M{"$or": []bson.M{
		{"createdBy": owner},
		{"createdBy": owner.Hex()},
	}}

	start := time.Now()
	cursor, err := r.collection.Find(ctx, query)
	metrics.MongoOperationDuration.WithLabelValues("find", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "properties").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	start = time.Now()
	err = cursor.All(ctx, &properties)
	metrics.MongoOperationDuration.WithLabelValues("cursor_all", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "properties").Inc()
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) Insert(ctx context.Context, property *models.Property) error {
	property.ID = primitive.NewObjectID()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, property)
	metrics.MongoOperationDuration.WithLabelValues("insert", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", "properties").Inc()
		return err
	}
	return nil
}

func (r *propertyRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.PropertyUpdate) (*models.Property, error) {
	set := update.SetDocument()
	set["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	start := time.Now()
	var updated models.Property
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	metrics.MongoOperationDuration.WithLabelValues("find_one_and_update", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Not found
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one_and_update", "properties").Inc()
		return nil, err
	}
	return &updated, nil
}

func (r *propertyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	start := time.Now()
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	metrics.MongoOperationDuration.WithLabelValues("delete_one", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("delete_one", "properties").Inc()
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *propertyRepository) BulkUpsertOnAbsence(ctx context.Context, properties []models.Property) (int64, int64, error) {
	writes := make([]mongo.WriteModel, 0, len(properties))
	for i := range properties {
		doc := properties[i]
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"id": doc.PropertyID}).
			SetUpdate(bson.M{"$setOnInsert": doc}).
			SetUpsert(true))
	}

	start := time.Now()
	result, err := r.collection.BulkWrite(ctx, writes)
	metrics.MongoOperationDuration.WithLabelValues("bulk_write", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("bulk_write", "properties").Inc()
		return 0, 0, err
	}
	return result.UpsertedCount, result.ModifiedCount, nil
}
