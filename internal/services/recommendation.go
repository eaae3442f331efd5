package services

import (
	"context"
	"time"

	"urbannest-properties/internal/apperrors"
	"urbannest-properties/internal/models"
	"urbannest-properties/internal/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RecommendationService struct {
	recommendations repositories.RecommendationRepository
	properties      repositories.PropertyRepository
	users           repositories.UserRepository
}

func NewRecommendationService(
	recommendations repositories.RecommendationRepository,
	properties repositories.PropertyRepository,
	users repositories.UserRepository,
) *RecommendationService {
	return &RecommendationService{
		recommendations: recommendations,
		properties:      properties,
		users:           users,
	}
}

// Recommend shares a property with another registered user, addressed by
// email.
func (s *RecommendationService) Recommend(ctx context.Context, recommender primitive.ObjectID, propertyID string, req *models.RecommendRequest) error {
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

	recipient, err := s.users.FindByEmail(ctx, req.RecipientEmail)
	if err != nil {
		return apperrors.Internal(err)
	}
	if recipient == nil {
		return apperrors.NotFound("Recipient user not found")
	}

	recommendation := &models.Recommendation{
		RecommenderID: recommender,
		RecipientID:   recipient.ID,
		PropertyID:    oid,
		Message:       req.Message,
		CreatedAt:     time.Now(),
	}
	if err := s.recommendations.Insert(ctx, recommendation); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// Received lists the recommendations addressed to the caller, newest first.
func (s *RecommendationService) Received(ctx context.Context, recipient primitive.ObjectID) ([]models.Recommendation, error) {
	recommendations, err := s.recommendations.FindByRecipient(ctx, recipient)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return recommendations, nil
}
