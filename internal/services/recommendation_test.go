package services

import (
	"context"
	"testing"

	"urbannest-properties/internal/apperrors"
	"urbannest-properties/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) Insert(ctx context.Context, recommendation *models.Recommendation) error {
	args := m.Called(ctx, recommendation)
	return args.Error(0)
}

func (m *MockRecommendationRepository) FindByRecipient(ctx context.Context, recipientID primitive.ObjectID) ([]models.Recommendation, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recommendation), args.Error(1)
}

func TestRecommendToRegisteredUser(t *testing.T) {
	recommendations := new(MockRecommendationRepository)
	properties := new(MockPropertyRepository)
	users := new(MockUserRepository)
	service := NewRecommendationService(recommendations, properties, users)
	ctx := context.Background()

	recommender := primitive.NewObjectID()
	recipient := primitive.NewObjectID()
	propertyID := primitive.NewObjectID()

	properties.On("FindByInternalID", ctx, propertyID).Return(&models.Property{ID: propertyID}, nil)
	users.On("FindByEmail", ctx, "ravi@example.com").Return(&models.User{ID: recipient, Email: "ravi@example.com"}, nil)
	recommendations.On("Insert", ctx, mock.MatchedBy(func(r *models.Recommendation) bool {
		return r.RecommenderID == recommender &&
			r.RecipientID == recipient &&
			r.PropertyID == propertyID &&
			r.Message == "Check this out"
	})).Return(nil)

	err := service.Recommend(ctx, recommender, propertyID.Hex(), &models.RecommendRequest{
		RecipientEmail: "ravi@example.com",
		Message:        "Check this out",
	})

	require.NoError(t, err)
	recommendations.AssertExpectations(t)
}

func TestRecommendUnknownRecipient(t *testing.T) {
	recommendations := new(MockRecommendationRepository)
	properties := new(MockPropertyRepository)
	users := new(MockUserRepository)
	service := NewRecommendationService(recommendations, properties, users)
	ctx := context.Background()

	propertyID := primitive.NewObjectID()
	properties.On("FindByInternalID", ctx, propertyID).Return(&models.Property{ID: propertyID}, nil)
	users.On("FindByEmail", ctx, "ghost@example.com").Return(nil, nil)

	err := service.Recommend(ctx, primitive.NewObjectID(), propertyID.Hex(), &models.RecommendRequest{
		RecipientEmail: "ghost@example.com",
	})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
	assert.Equal(t, "Recipient user not found", appErr.UserMessage)
	recommendations.AssertNotCalled(t, "Insert")
}

func TestReceivedRecommendations(t *testing.T) {
	recommendations := new(MockRecommendationRepository)
	properties := new(MockPropertyRepository)
	users := new(MockUserRepository)
	service := NewRecommendationService(recommendations, properties, users)
	ctx := context.Background()

	recipient := primitive.NewObjectID()
	expected := []models.Recommendation{{RecipientID: recipient, Message: "See this"}}
	recommendations.On("FindByRecipient", ctx, recipient).Return(expected, nil)

	got, err := service.Received(ctx, recipient)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}
