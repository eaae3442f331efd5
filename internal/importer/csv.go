package importer

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"urbannest-properties/internal/models"

	"github.com/gocarina/gocsv"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Row is one CSV record of a property export.
type Row struct {
	PropertyID    string   `csv:"id"`
	Title         string   `csv:"title"`
	Type          string   `csv:"type"`
	Price         float64  `csv:"price"`
	State         string   `csv:"state"`
	City          string   `csv:"city"`
	AreaSqFt      float64  `csv:"areaSqFt"`
	Bedrooms      int      `csv:"bedrooms"`
	Bathrooms     int      `csv:"bathrooms"`
	Amenities     PipeList `csv:"amenities"`
	Furnished     string   `csv:"furnished"`
	AvailableFrom FlexDate `csv:"availableFrom"`
	ListedBy      string   `csv:"listedBy"`
	Tags          PipeList `csv:"tags"`
	ColorTheme    string   `csv:"colorTheme"`
	Rating        float64  `csv:"rating"`
	IsVerified    FlexBool `csv:"isVerified"`
	ListingType   string   `csv:"listingType"`
}

// ValidationError rejects a whole batch, carrying the natural ids (or row
// positions for rows without one) of every record missing a required field.
type ValidationError struct {
	InvalidRows []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid rows: %s", strings.Join(e.InvalidRows, ", "))
}

// Parse decodes CSV bytes into rows, tolerating a UTF-8 byte order mark.
func Parse(data []byte) ([]Row, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var rows []Row
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return rows, nil
}

// Validate checks every row for the required fields. A single bad row fails
// the batch: imports are all-or-nothing so a partial file never lands.
func Validate(rows []Row) error {
	var invalid []string
	for i, row := range rows {
		if row.PropertyID == "" || row.Title == "" || row.Type == "" ||
			row.Price == 0 || row.State == "" || row.City == "" {
			id := row.PropertyID
			if id == "" {
				id = fmt.Sprintf("row %d", i+2) // +2: header line and 1-based count
			}
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		return &ValidationError{InvalidRows: invalid}
	}
	return nil
}

// Map converts validated rows into properties owned by the importing user,
// stamped with a shared import time.
func Map(rows []Row, owner primitive.ObjectID, now time.Time) []models.Property {
	properties := make([]models.Property, 0, len(rows))
	for _, row := range rows {
		properties = append(properties, models.Property{
			PropertyID:    row.PropertyID,
			Title:         row.Title,
			Type:          row.Type,
			Price:         row.Price,
			State:         row.State,
			City:          row.City,
			AreaSqFt:      row.AreaSqFt,
			Bedrooms:      row.Bedrooms,
			Bathrooms:     row.Bathrooms,
			Amenities:     row.Amenities,
			Furnished:     row.Furnished,
			AvailableFrom: row.AvailableFrom.Time,
			ListedBy:      row.ListedBy,
			Tags:          row.Tags,
			ColorTheme:    row.ColorTheme,
			Rating:        row.Rating,
			IsVerified:    bool(row.IsVerified),
			ListingType:   row.ListingType,
			CreatedBy:     owner,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return properties
}

// Template returns a one-row sample CSV matching the import layout.
func Template() ([]byte, error) {
	sample := []Row{{
		PropertyID:    "PROP1000",
		Title:         "Sunny 2BHK Apartment",
		Type:          "Apartment",
		Price:         4500000,
		State:         "Karnataka",
		City:          "Bengaluru",
		AreaSqFt:      1150,
		Bedrooms:      2,
		Bathrooms:     2,
		Amenities:     PipeList{"pool", "gym", "parking"},
		Furnished:     "Semi",
		AvailableFrom: FlexDate{Time: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
		ListedBy:      "Owner",
		Tags:          PipeList{"near-metro", "family-friendly"},
		ColorTheme:    "#6ab45e",
		Rating:        4.3,
		IsVerified:    true,
		ListingType:   "sale",
	}}
	return gocsv.MarshalBytes(&sample)
}
