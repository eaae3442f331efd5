package repositories

import (
	"context"
	"time"

	"urbannest-properties/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyRepository defines the persistent-store operations for properties.
// Lookups return (nil, nil) when no document matches.
type PropertyRepository interface {
	FindByInternalID(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	Search(ctx context.Context, filters *models.ListFilters) ([]models.Property, int64, error)
	FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Property, error)
	Insert(ctx context.Context, property *models.Property) error
	Update(ctx context.Context, id primitive.ObjectID, update *models.PropertyUpdate) (*models.Property, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// BulkUpsertOnAbsence inserts each property whose natural id is not yet
	// present and leaves existing documents untouched. Returns the inserted
	// and modified counts reported by the store.
	BulkUpsertOnAbsence(ctx context.Context, properties []models.Property) (int64, int64, error)
}

// PropertyCache is the cache-aside store for listing pages and detail entries.
// Get operations return (nil, nil) on a miss; faults are returned as errors
// and must be treated as misses by callers.
type PropertyCache interface {
	GetList(ctx context.Context, key string) (*models.PropertyListResult, error)
	SetList(ctx context.Context, key string, result *models.PropertyListResult) error
	GetDetail(ctx context.Context, key string) (*models.PropertyView, error)
	SetDetail(ctx context.Context, key string, view *models.PropertyView) error
	InvalidateLists(ctx context.Context) error
	InvalidateDetails(ctx context.Context) error
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type FavoriteRepository interface {
	Exists(ctx context.Context, userID, propertyID primitive.ObjectID) (bool, error)
	Insert(ctx context.Context, favorite *models.Favorite) error
	Delete(ctx context.Context, userID, propertyID primitive.ObjectID) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Favorite, error)
}

type RecommendationRepository interface {
	Insert(ctx context.Context, recommendation *models.Recommendation) error
	FindByRecipient(ctx context.Context, recipientID primitive.ObjectID) ([]models.Recommendation, error)
}

// MarketRepository computes comparative market statistics over the property
// collection for the evaluation service.
type MarketRepository interface {
	Summary(ctx context.Context, city, propertyType string) (*models.MarketSummary, error)
	TopAmenities(ctx context.Context, city, propertyType string, limit int) ([]models.AmenityStat, error)
	RecentListings(ctx context.Context, city, propertyType string, since time.Time, limit int) ([]models.Property, error)
}
