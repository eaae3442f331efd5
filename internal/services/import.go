package services

import (
	"context"
	"os"
	"time"

	"urbannest-properties/internal/apperrors"
	"urbannest-properties/internal/importer"
	"urbannest-properties/internal/models"
	"urbannest-properties/internal/repositories"
	"urbannest-properties/pkg/logger"
	"urbannest-properties/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImportService runs the CSV bulk-import pipeline: parse, validate the whole
// batch, then upsert on the natural id so re-importing the same file never
// duplicates or overwrites existing listings.
type ImportService struct {
	properties repositories.PropertyRepository
	cache      repositories.PropertyCache
}

func NewImportService(properties repositories.PropertyRepository, propertyCache repositories.PropertyCache) *ImportService {
	return &ImportService{properties: properties, cache: propertyCache}
}

func (s *ImportService) ImportCSV(ctx context.Context, data []byte, owner primitive.ObjectID) (*models.ImportResult, error) {
	rows, err := importer.Parse(data)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if len(rows) == 0 {
		return nil, apperrors.Validation("CSV file contains no data rows")
	}

	if err := importer.Validate(rows); err != nil {
		metrics.ImportedRowsTotal.WithLabelValues("rejected").Add(float64(len(rows)))
		return nil, err
	}

	properties := importer.Map(rows, owner, time.Now())
	inserted, modified, err := s.properties.BulkUpsertOnAbsence(ctx, properties)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	metrics.ImportedRowsTotal.WithLabelValues("inserted").Add(float64(inserted))
	metrics.ImportedRowsTotal.WithLabelValues("skipped").Add(float64(int64(len(rows)) - inserted))

	// Imports only add documents, so listing pages go stale but cached
	// details stay valid: only the list key family is purged.
	_ = s.cache.InvalidateLists(ctx)

	logger.GlobalLogger.Printf("CSV import: %d rows, %d inserted, %d modified", len(rows), inserted, modified)
	return &models.ImportResult{
		Message:       "Properties imported successfully",
		InsertedCount: inserted,
		ModifiedCount: modified,
	}, nil
}

// ImportFromFile imports the configured server-side CSV file.
func (s *ImportService) ImportFromFile(ctx context.Context, path string, owner primitive.ObjectID) (*models.ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return s.ImportCSV(ctx, data, owner)
}
