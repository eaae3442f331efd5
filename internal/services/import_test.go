package services

import (
	"context"
	"testing"

	"urbannest-properties/internal/apperrors"
	"urbannest-properties/internal/importer"
	"urbannest-properties/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const importHeader = "id,title,type,price,state,city,areaSqFt,bedrooms,bathrooms,amenities,furnished,availableFrom,listedBy,tags,colorTheme,rating,isVerified,listingType\n"

func newImportFixture() (*ImportService, *MockPropertyRepository, *MockPropertyCache) {
	repo := new(MockPropertyRepository)
	propertyCache := new(MockPropertyCache)
	return NewImportService(repo, propertyCache), repo, propertyCache
}

func TestImportCSVUpsertsAndPurgesListsOnly(t *testing.T) {
	service, repo, propertyCache := newImportFixture()
	ctx := context.Background()
	owner := primitive.NewObjectID()

	data := []byte(importHeader +
		"PROP1,Flat A,Apartment,100000,Goa,Panaji,500,1,1,pool,No,2025-01-01,Owner,,#fff,4.0,true,rent\n" +
		"PROP2,Flat B,Apartment,200000,Goa,Panaji,800,2,1,,No,2025-01-01,Owner,,#fff,4.2,false,sale\n")

	repo.On("BulkUpsertOnAbsence", ctx, mock.MatchedBy(func(properties []models.Property) bool {
		return len(properties) == 2 &&
			properties[0].PropertyID == "PROP1" &&
			properties[0].CreatedBy == owner
	})).Return(int64(1), int64(0), nil)
	propertyCache.On("InvalidateLists", ctx).Return(nil)

	result, err := service.ImportCSV(ctx, data, owner)

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.InsertedCount)
	assert.Equal(t, int64(0), result.ModifiedCount)
	propertyCache.AssertExpectations(t)
	propertyCache.AssertNotCalled(t, "InvalidateDetails")
}

func TestImportCSVRejectsWholeBatchOnInvalidRow(t *testing.T) {
	service, repo, propertyCache := newImportFixture()

	data := []byte(importHeader +
		"PROP1,Flat A,Apartment,100000,Goa,Panaji,500,1,1,,No,2025-01-01,Owner,,#fff,4.0,true,rent\n" +
		"PROP2,Flat B,Apartment,0,Goa,Panaji,800,2,1,,No,2025-01-01,Owner,,#fff,4.2,false,sale\n")

	_, err := service.ImportCSV(context.Background(), data, primitive.NewObjectID())

	var validationErr *importer.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"PROP2"}, validationErr.InvalidRows)
	repo.AssertNotCalled(t, "BulkUpsertOnAbsence")
	propertyCache.AssertNotCalled(t, "InvalidateLists")
}

func TestImportCSVEmptyFile(t *testing.T) {
	service, _, _ := newImportFixture()

	_, err := service.ImportCSV(context.Background(), []byte(importHeader), primitive.NewObjectID())

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidationFailed, appErr.Code)
}

func TestImportFromMissingFile(t *testing.T) {
	service, _, _ := newImportFixture()

	_, err := service.ImportFromFile(context.Background(), "/nonexistent/file.csv", primitive.NewObjectID())

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeInternal, appErr.Code)
}

func TestImportCSVIdempotentRerun(t *testing.T) {
	service, repo, propertyCache := newImportFixture()
	ctx := context.Background()
	owner := primitive.NewObjectID()

	data := []byte(importHeader +
		"PROP1,Flat A,Apartment,100000,Goa,Panaji,500,1,1,,No,2025-01-01,Owner,,#fff,4.0,true,rent\n")

	// Second run of the same file: the store reports nothing inserted and
	// nothing modified.
	repo.On("BulkUpsertOnAbsence", ctx, mock.Anything).Return(int64(0), int64(0), nil)
	propertyCache.On("InvalidateLists", ctx).Return(nil)

	result, err := service.ImportCSV(ctx, data, owner)

	require.NoError(t, err)
	assert.Equal(t, int64(0), result.InsertedCount)
	assert.Equal(t, int64(0), result.ModifiedCount)
}
