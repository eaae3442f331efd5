package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"urbannest-properties/internal/apperrors"
	"urbannest-properties/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEvaluationFixture() (*EvaluationService, *MockMarketRepository, *MockTextGenerator) {
	market := new(MockMarketRepository)
	generator := new(MockTextGenerator)
	return NewEvaluationService(market, generator), market, generator
}

func evaluationRequest() *models.EvaluationRequest {
	return &models.EvaluationRequest{
		Price:     5000000,
		AreaSqFt:  1000,
		City:      "Pune",
		State:     "Maharashtra",
		Type:      "Apartment",
		Bedrooms:  3,
		Bathrooms: 2,
		Amenities: []string{"pool", "gym"},
	}
}

func TestEvaluateBuildsPromptFromMarketData(t *testing.T) {
	service, market, generator := newEvaluationFixture()
	ctx := context.Background()

	summary := &models.MarketSummary{
		AvgPrice:        4800000,
		AvgPricePerSqFt: 4000,
		MinPrice:        2000000,
		MaxPrice:        9000000,
		Count:           37,
		AvgBedrooms:     2.4,
		AvgBathrooms:    1.8,
		AvgArea:         1100,
	}
	amenities := []models.AmenityStat{
		{Amenity: "pool", Count: 20, AvgPrice: 5200000},
		{Amenity: "gym", Count: 15, AvgPrice: 4900000},
	}
	recent := []models.Property{
		{Price: 4700000, AreaSqFt: 950, Bedrooms: 2, Bathrooms: 2, Rating: 4.1, IsVerified: true},
	}

	market.On("Summary", mock.Anything, "Pune", "Apartment").Return(summary, nil)
	market.On("TopAmenities", mock.Anything, "Pune", "Apartment", 10).Return(amenities, nil)
	market.On("RecentListings", mock.Anything, "Pune", "Apartment", mock.Anything, 5).Return(recent, nil)

	var capturedPrompt string
	generator.On("GenerateText", ctx, mock.MatchedBy(func(prompt string) bool {
		capturedPrompt = prompt
		return true
	})).Return("Detailed analysis", nil)

	result, err := service.Evaluate(ctx, evaluationRequest())

	require.NoError(t, err)
	assert.Equal(t, "Detailed analysis", result)

	assert.Contains(t, capturedPrompt, "PROPERTY DETAILS:")
	assert.Contains(t, capturedPrompt, "₹5,000,000")
	assert.Contains(t, capturedPrompt, "Price per sq.ft: ₹5000.00")
	assert.Contains(t, capturedPrompt, "Location: Pune, Maharashtra")
	assert.Contains(t, capturedPrompt, "Average price in Pune for Apartment: ₹4,800,000")
	assert.Contains(t, capturedPrompt, "Total similar properties in market: 37")
	// 5000 vs 4000 per sq.ft: 25% above market
	assert.Contains(t, capturedPrompt, "25.0% above market average")
	assert.Contains(t, capturedPrompt, "1. pool: 20 properties (avg price: ₹5,200,000)")
	assert.Contains(t, capturedPrompt, "RECENT MARKET ACTIVITY (Last 30 days):")
	assert.Contains(t, capturedPrompt, "2B/2B | Rating: 4.1 | Verified")
	assert.Contains(t, capturedPrompt, "BUY/HOLD/AVOID")
}

func TestEvaluateNoComparablesRendersNeutral(t *testing.T) {
	service, market, generator := newEvaluationFixture()
	ctx := context.Background()

	market.On("Summary", mock.Anything, "Pune", "Apartment").Return(nil, nil)
	market.On("TopAmenities", mock.Anything, "Pune", "Apartment", 10).Return([]models.AmenityStat{}, nil)
	market.On("RecentListings", mock.Anything, "Pune", "Apartment", mock.Anything, 5).Return([]models.Property{}, nil)

	var capturedPrompt string
	generator.On("GenerateText", ctx, mock.MatchedBy(func(prompt string) bool {
		capturedPrompt = prompt
		return true
	})).Return("ok", nil)

	_, err := service.Evaluate(ctx, evaluationRequest())

	require.NoError(t, err)
	assert.Contains(t, capturedPrompt, "Average price in Pune for Apartment: ₹N/A")
	assert.Contains(t, capturedPrompt, "0% below market average")
	assert.Contains(t, capturedPrompt, "Market range: ₹N/A - ₹N/A")
	assert.Contains(t, capturedPrompt, "Total similar properties in market: 0")
}

func TestEvaluateZeroAreaDoesNotDivide(t *testing.T) {
	service, market, generator := newEvaluationFixture()
	ctx := context.Background()

	market.On("Summary", mock.Anything, "Pune", "Apartment").Return(nil, nil)
	market.On("TopAmenities", mock.Anything, "Pune", "Apartment", 10).Return([]models.AmenityStat{}, nil)
	market.On("RecentListings", mock.Anything, "Pune", "Apartment", mock.Anything, 5).Return([]models.Property{}, nil)
	generator.On("GenerateText", ctx, mock.Anything).Return("ok", nil)

	req := evaluationRequest()
	req.AreaSqFt = 0

	_, err := service.Evaluate(ctx, req)
	require.NoError(t, err)

	prompt := generator.Calls[0].Arguments.String(1)
	assert.Contains(t, prompt, "Price per sq.ft: ₹0.00")
	assert.False(t, strings.Contains(prompt, "Inf"), "prompt must not contain an infinity")
}

func TestEvaluateGeneratorFailure(t *testing.T) {
	service, market, generator := newEvaluationFixture()
	ctx := context.Background()

	market.On("Summary", mock.Anything, "Pune", "Apartment").Return(nil, nil)
	market.On("TopAmenities", mock.Anything, "Pune", "Apartment", 10).Return([]models.AmenityStat{}, nil)
	market.On("RecentListings", mock.Anything, "Pune", "Apartment", mock.Anything, 5).Return([]models.Property{}, nil)
	generator.On("GenerateText", ctx, mock.Anything).Return("", errors.New("quota exceeded"))

	_, err := service.Evaluate(ctx, evaluationRequest())

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeEvaluationFailed, appErr.Code)
	assert.Equal(t, "AI evaluation failed", appErr.UserMessage)
}

func TestEvaluateMarketQueryFailure(t *testing.T) {
	service, market, generator := newEvaluationFixture()

	market.On("Summary", mock.Anything, "Pune", "Apartment").Return(nil, errors.New("aggregate failed"))
	market.On("TopAmenities", mock.Anything, "Pune", "Apartment", 10).Return([]models.AmenityStat{}, nil).Maybe()
	market.On("RecentListings", mock.Anything, "Pune", "Apartment", mock.Anything, 5).Return([]models.Property{}, nil).Maybe()

	_, err := service.Evaluate(context.Background(), evaluationRequest())

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeInternal, appErr.Code)
	generator.AssertNotCalled(t, "GenerateText")
}
