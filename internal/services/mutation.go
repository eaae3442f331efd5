package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"urbannest-properties/internal/apperrors"
	"urbannest-properties/internal/models"
	"urbannest-properties/internal/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MutationService owns the write side of the catalog: create, update and
// delete, each followed by a purge of both cache key families so no stale
// page or detail entry survives a mutation.
type MutationService struct {
	properties repositories.PropertyRepository
	cache      repositories.PropertyCache
}

func NewMutationService(properties repositories.PropertyRepository, propertyCache repositories.PropertyCache) *MutationService {
	return &MutationService{properties: properties, cache: propertyCache}
}

func validateRequired(p *models.Property) error {
	switch {
	case p.PropertyID == "":
		return apperrors.Validation("id is required")
	case p.Title == "":
		return apperrors.Validation("title is required")
	case p.Type == "":
		return apperrors.Validation("type is required")
	case p.Price <= 0:
		return apperrors.Validation("price must be greater than zero")
	case p.State == "":
		return apperrors.Validation("state is required")
	case p.City == "":
		return apperrors.Validation("city is required")
	}
	return nil
}

func (s *MutationService) Create(ctx context.Context, property *models.Property, owner primitive.ObjectID) (*models.Property, error) {
	if err := validateRequired(property); err != nil {
		return nil, err
	}

	now := time.Now()
	property.CreatedBy = owner
	property.CreatedAt = now
	property.UpdatedAt = now

	if err := s.properties.Insert(ctx, property); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.NewAppError(
				apperrors.ErrCodeDuplicateID,
				fmt.Sprintf("Property with ID %s already exists", property.PropertyID),
				http.StatusBadRequest,
				err,
			)
		}
		return nil, apperrors.Internal(err)
	}

	s.invalidate(ctx)
	return property, nil
}

func (s *MutationService) Update(ctx context.Context, id string, update *models.PropertyUpdate, caller primitive.ObjectID) (*models.Property, error) {
	property, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if property.CreatedBy != caller {
		return nil, apperrors.NotAuthorized("You are not authorized to update this property")
	}

	updated, err := s.properties.Update(ctx, property.ID, update)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if updated == nil {
		return nil, apperrors.NotFound("Property not found")
	}

	s.invalidate(ctx)
	return updated, nil
}

func (s *MutationService) Delete(ctx context.Context, id string, caller primitive.ObjectID) error {
	property, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if property.CreatedBy != caller {
		return apperrors.NotAuthorized("You are not authorized to delete this property")
	}

	if err := s.properties.Delete(ctx, property.ID); err != nil {
		if err == mongo.ErrNoDocuments {
			return apperrors.NotFound("Property not found")
		}
		return apperrors.Internal(err)
	}

	s.invalidate(ctx)
	return nil
}

// load resolves a route id to an owned document. Not-found is reported before
// any ownership decision so unauthorized callers cannot probe for existence
// differences.
func (s *MutationService) load(ctx context.Context, id string) (*models.Property, error) {
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
	return property, nil
}

func (s *MutationService) invalidate(ctx context.Context) {
	_ = s.cache.InvalidateLists(ctx)
	_ = s.cache.InvalidateDetails(ctx)
}
