package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property is the central listing record. PropertyID is the caller-supplied
// natural id ("PROP…"), unique across the collection and immutable after
// creation; ID is the internal store identity.
type Property struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PropertyID    string             `bson:"id" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Type          string             `bson:"type" json:"type"`
	Price         float64            `bson:"price" json:"price"`
	State         string             `bson:"state" json:"state"`
	City          string             `bson:"city" json:"city"`
	AreaSqFt      float64            `bson:"areaSqFt" json:"areaSqFt"`
	Bedrooms      int                `bson:"bedrooms" json:"bedrooms"`
	Bathrooms     int                `bson:"bathrooms" json:"bathrooms"`
	Amenities     []string           `bson:"amenities" json:"amenities"`
	Furnished     string             `bson:"furnished" json:"furnished"`
	AvailableFrom time.Time          `bson:"availableFrom" json:"availableFrom"`
	ListedBy      string             `bson:"listedBy" json:"listedBy"`
	Tags          []string           `bson:"tags" json:"tags"`
	ColorTheme    string             `bson:"colorTheme" json:"colorTheme"`
	Rating        float64            `bson:"rating" json:"rating"`
	IsVerified    bool               `bson:"isVerified" json:"isVerified"`
	ListingType   string             `bson:"listingType" json:"listingType"`
	CreatedBy     primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OwnerRef is the owner projection attached to property responses.
type OwnerRef struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

// PropertyView is a Property with its owner expanded to name/email.
// The outer CreatedBy shadows the embedded raw reference in the JSON output.
type PropertyView struct {
	Property
	CreatedBy *OwnerRef `json:"createdBy"`
}

// PropertyListResult is the stable list response contract.
type PropertyListResult struct {
	Properties []PropertyView `json:"properties"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Pages      int            `json:"pages"`
}

// PropertyUpdate carries the mutable fields of an update request. Nil fields
// are left untouched.
type PropertyUpdate struct {
	Title         *string    `json:"title"`
	Type          *string    `json:"type"`
	Price         *float64   `json:"price"`
	State         *string    `json:"state"`
	City          *string    `json:"city"`
	AreaSqFt      *float64   `json:"areaSqFt"`
	Bedrooms      *int       `json:"bedrooms"`
	Bathrooms     *int       `json:"bathrooms"`
	Amenities     []string   `json:"amenities"`
	Furnished     *string    `json:"furnished"`
	AvailableFrom *time.Time `json:"availableFrom"`
	ListedBy      *string    `json:"listedBy"`
	Tags          []string   `json:"tags"`
	ColorTheme    *string    `json:"colorTheme"`
	Rating        *float64   `json:"rating"`
	IsVerified    *bool      `json:"isVerified"`
	ListingType   *string    `json:"listingType"`
}

// SetDocument builds the $set payload from the non-nil fields.
func (u *PropertyUpdate) SetDocument() bson.M {
	set := bson.M{}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Type != nil {
		set["type"] = *u.Type
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.State != nil {
		set["state"] = *u.State
	}
	if u.City != nil {
		set["city"] = *u.City
	}
	if u.AreaSqFt != nil {
		set["areaSqFt"] = *u.AreaSqFt
	}
	if u.Bedrooms != nil {
		set["bedrooms"] = *u.Bedrooms
	}
	if u.Bathrooms != nil {
		set["bathrooms"] = *u.Bathrooms
	}
	if u.Amenities != nil {
		set["amenities"] = u.Amenities
	}
	if u.Furnished != nil {
		set["furnished"] = *u.Furnished
	}
	if u.AvailableFrom != nil {
		set["availableFrom"] = *u.AvailableFrom
	}
	if u.ListedBy != nil {
		set["listedBy"] = *u.ListedBy
	}
	if u.Tags != nil {
		set["tags"] = u.Tags
	}
	if u.ColorTheme != nil {
		set["colorTheme"] = *u.ColorTheme
	}
	if u.Rating != nil {
		set["rating"] = *u.Rating
	}
	if u.IsVerified != nil {
		set["isVerified"] = *u.IsVerified
	}
	if u.ListingType != nil {
		set["listingType"] = *u.ListingType
	}
	return set
}

// ImportResult reports the outcome of a CSV bulk import.
type ImportResult struct {
	Message       string `json:"message"`
	InsertedCount int64  `json:"insertedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
}
