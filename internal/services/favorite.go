package services

import (
	"context"
	"net/http"
	"time"

	"urbannest-properties/internal/apperrors"
	"urbannest-properties/internal/models"
	"urbannest-properties/internal/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FavoriteService struct {
	favorites  repositories.FavoriteRepository
	properties repositories.PropertyRepository
	listings   *ListingService
}

func NewFavoriteService(
	favorites repositories.FavoriteRepository,
	properties repositories.PropertyRepository,
	listings *ListingService,
) *FavoriteService {
	return &FavoriteService{favorites: favorites, properties: properties, listings: listings}
}

func (s *FavoriteService) Add(ctx context.Context, userID primitive.ObjectID, propertyID string) error {
	oid, err := primitive.ObjectIDFromHex(propertyID)
	if err != nil {
		return apperrors.NotFound("Property not found")
	}

	property, err := s.properties.FindByInternalID(ctx, oid)
	if err != nil {
		return apperrors.Internal(err)
	}
	if property == nil {
		return apperrors.NotFound("Property not found")
	}

	exists, err := s.favorites.Exists(ctx, userID, oid)
	if err != nil {
		return apperrors.Internal(err)
	}
	if exists {
		return apperrors.NewAppError(apperrors.ErrCodeDuplicateFavorite, "Property already in favorites", http.StatusConflict, nil)
	}

	favorite := &models.Favorite{
		UserID:     userID,
		PropertyID: oid,
		CreatedAt:  time.Now(),
	}
	if err := s.favorites.Insert(ctx, favorite); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID primitive.ObjectID, propertyID string) error {
	oid, err := primitive.ObjectIDFromHex(propertyID)
	if err != nil {
		return apperrors.NotFound("Favorite not found")
	}
	if err := s.favorites.Delete(ctx, userID, oid); err != nil {
		if err == mongo.ErrNoDocuments {
			return apperrors.NotFound("Favorite not found")
		}
		return apperrors.Internal(err)
	}
	return nil
}

// List returns the caller's favorited properties with owners expanded.
// Favorites pointing at deleted properties are skipped.
func (s *FavoriteService) List(ctx context.Context, userID primitive.ObjectID) ([]models.PropertyView, error) {
	favorites, err := s.favorites.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	properties := make([]models.Property, 0, len(favorites))
	for _, fav := range favorites {
		property, err := s.properties.FindByInternalID(ctx, fav.PropertyID)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		if property != nil {
			properties = append(properties, *property)
		}
	}

	views, err := s.listings.expandOwners(ctx, properties)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return views, nil
}
