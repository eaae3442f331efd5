package repositories

import (
	"context"
	"regexp"
	"time"

	"urbannest-properties/internal/models"
	"urbannest-properties/pkg/database"
	"urbannest-properties/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type marketRepository struct {
	collection *mongo.Collection
}

func NewMarketRepository() MarketRepository {
	return &marketRepository{
		collection: database.DB.Collection("properties"),
	}
}

// marketMatch selects comparable listings. Documents missing a price or area
// would skew the averages, so both fields must be present.
func marketMatch(city, propertyType string) bson.M {
	match := bson.M{
		"price":    bson.M{"$exists": true, "$ne": nil},
		"areaSqFt": bson.M{"$exists": true, "$ne": nil},
	}
	if city != "" {
		match["city"] = caseInsensitive(regexp.QuoteMeta(city))
	}
	if propertyType != "" {
		match["type"] = propertyType
	}
	return match
}

// Summary aggregates price and size statistics for comparable listings.
// Price per square foot skips documents without a positive area.
func (r *marketRepository) Summary(ctx context.Context, city, propertyType string) (*models.MarketSummary, error) {
	pipeline := []bson.M{
		{"$match": marketMatch(city, propertyType)},
		{"$group": bson.M{
			"_id":      nil,
			"avgPrice": bson.M{"$avg": "$price"},
			"minPrice": bson.M{"$min": "$price"},
			"maxPrice": bson.M{"$max": "$price"},
			"avgPricePerSqFt": bson.M{"$avg": bson.M{
				"$cond": bson.A{
					bson.M{"$gt": bson.A{"$areaSqFt", 0}},
					bson.M{"$divide": bson.A{"$price", "$areaSqFt"}},
					nil,
				},
			}},
			"count":        bson.M{"$sum": 1},
			"avgBedrooms":  bson.M{"$avg": "$bedrooms"},
			"avgBathrooms": bson.M{"$avg": "$bathrooms"},
			"avgArea":      bson.M{"$avg": "$areaSqFt"},
		}},
	}

	start := time.Now()
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	metrics.MongoOperationDuration.WithLabelValues("aggregate", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("aggregate", "properties").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.MarketSummary
	if err := cursor.All(ctx, &results); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "properties").Inc()
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil // No comparable listings
	}
	return &results[0], nil
}

func (r *marketRepository) TopAmenities(ctx context.Context, city, propertyType string, limit int) ([]models.AmenityStat, error) {
	match := marketMatch(city, propertyType)
	match["amenities"] = bson.M{"$exists": true, "$ne": bson.A{}}

	pipeline := []bson.M{
		{"$match": match},
		{"$unwind": "$amenities"},
		{"$group": bson.M{
			"_id":      "$amenities",
			"count":    bson.M{"$sum": 1},
			"avgPrice": bson.M{"$avg": "$price"},
		}},
		{"$sort": bson.M{"count": -1}},
		{"$limit": limit},
	}

	start := time.Now()
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	metrics.MongoOperationDuration.WithLabelValues("aggregate", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("aggregate", "properties").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var stats []models.AmenityStat
	if err := cursor.All(ctx, &stats); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "properties").Inc()
		return nil, err
	}
	return stats, nil
}

func (r *marketRepository) RecentListings(ctx context.Context, city, propertyType string, since time.Time, limit int) ([]models.Property, error) {
	match := marketMatch(city, propertyType)
	match["createdAt"] = bson.M{"$gte": since}

	pipeline := []bson.M{
		{"$match": match},
		{"$sort": bson.M{"createdAt": -1}},
		{"$limit": limit},
	}

	start := time.Now()
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	metrics.MongoOperationDuration.WithLabelValues("aggregate", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("aggregate", "properties").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "properties").Inc()
		return nil, err
	}
	return properties, nil
}
