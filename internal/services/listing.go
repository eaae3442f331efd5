package services

import (
	"context"
	"net/url"

	"urbannest-properties/internal/apperrors"
	"urbannest-properties/internal/models"
	"urbannest-properties/internal/repositories"
	"urbannest-properties/pkg/cache"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListingService serves the read side of the property catalog with a
// cache-aside Redis layer in front of the store.
type ListingService struct {
	properties repositories.PropertyRepository
	users      repositories.UserRepository
	cache      repositories.PropertyCache
}

func NewListingService(
	properties repositories.PropertyRepository,
	users repositories.UserRepository,
	propertyCache repositories.PropertyCache,
) *ListingService {
	return &ListingService{
		properties: properties,
		users:      users,
		cache:      propertyCache,
	}
}

// List returns one page of properties matching the raw query parameters.
// The cache key is derived from the parameters before parsing, so every
// distinct parameter combination caches independently; a cache fault falls
// through to the store.
func (s *ListingService) List(ctx context.Context, params url.Values) (*models.PropertyListResult, error) {
	filters, err := models.ParseListFilters(params)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	key := cache.ListKey(params)
	if cached, cacheErr := s.cache.GetList(ctx, key); cacheErr == nil && cached != nil {
		return cached, nil
	}

	properties, total, err := s.properties.Search(ctx, filters)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	views, err := s.expandOwners(ctx, properties)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	pages := 0
	if filters.Limit > 0 {
		pages = int((total + int64(filters.Limit) - 1) / int64(filters.Limit))
	}

	result := &models.PropertyListResult{
		Properties: views,
		Total:      total,
		Page:       filters.Page,
		Pages:      pages,
	}

	_ = s.cache.SetList(ctx, key, result)
	return result, nil
}

// GetByID returns a single property by its store id, with the owner expanded.
// A malformed id reads as not found rather than a client error, matching the
// list endpoint's treatment of unknown ids.
func (s *ListingService) GetByID(ctx context.Context, id string) (*models.PropertyView, error) {
	key := cache.PropertyKey(id)
	if cached, cacheErr := s.cache.GetDetail(ctx, key); cacheErr == nil && cached != nil {
		return cached, nil
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("Property not found")
	}

	property, err := s.properties.FindByInternalID(ctx, oid)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if property == nil {
		return nil, apperrors.NotFound("Property not found")
	}

	views, err := s.expandOwners(ctx, []models.Property{*property})
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	view := &views[0]

	_ = s.cache.SetDetail(ctx, key, view)
	return view, nil
}

// MyProperties lists everything owned by the caller, owner expanded, without
// touching the cache.
func (s *ListingService) MyProperties(ctx context.Context, owner primitive.ObjectID) ([]models.PropertyView, error) {
	properties, err := s.properties.FindByOwner(ctx, owner)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	views, err := s.expandOwners(ctx, properties)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return views, nil
}

// expandOwners resolves the distinct owner ids of a result page in one query
// and attaches name/email projections. Owners that no longer exist leave a
// nil reference.
func (s *ListingService) expandOwners(ctx context.Context, properties []models.Property) ([]models.PropertyView, error) {
	seen := make(map[primitive.ObjectID]bool)
	ids := make([]primitive.ObjectID, 0, len(properties))
	for _, p := range properties {
		if !p.CreatedBy.IsZero() && !seen[p.CreatedBy] {
			seen[p.CreatedBy] = true
			ids = append(ids, p.CreatedBy)
		}
	}

	owners := make(map[primitive.ObjectID]*models.OwnerRef)
	if len(ids) > 0 {
		users, err := s.users.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range users {
			owners[users[i].ID] = &models.OwnerRef{
				ID:    users[i].ID,
				Name:  users[i].Name,
				Email: users[i].Email,
			}
		}
	}

	views := make([]models.PropertyView, 0, len(properties))
	for _, p := range properties {
		views = append(views, models.PropertyView{
			Property:  p,
			CreatedBy: owners[p.CreatedBy],
		})
	}
	return views, nil
}
