package repositories

import (
	"regexp"

	"urbannest-properties/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func caseInsensitive(pattern string) primitive.Regex {
	return primitive.Regex{Pattern: pattern, Options: "i"}
}

// BuildListQuery translates parsed listing filters into a Mongo filter
// document. Filters compose with AND; each search term must match at least
// one of title, state or city.
func BuildListQuery(f *models.ListFilters) bson.M {
	query := bson.M{}
	var and []bson.M

	if f.Location != "" {
		loc := caseInsensitive(regexp.QuoteMeta(f.Location))
		and = append(and, bson.M{"$or": []bson.M{
			{"city": loc},
			{"state": loc},
		}})
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		query["price"] = price
	}

	if f.MinArea != nil || f.MaxArea != nil {
		area := bson.M{}
		if f.MinArea != nil {
			area["$gte"] = *f.MinArea
		}
		if f.MaxArea != nil {
			area["$lte"] = *f.MaxArea
		}
		query["areaSqFt"] = area
	}

	if f.Bedrooms != nil {
		query["bedrooms"] = *f.Bedrooms
	}
	if f.Bathrooms != nil {
		query["bathrooms"] = *f.Bathrooms
	}

	if f.Type != "" {
		query["type"] = f.Type
	}
	if f.Status != "" {
		query["listingType"] = f.Status
	}

	if len(f.Amenities) > 0 {
		query["amenities"] = bson.M{"$all": f.Amenities}
	}

	for _, term := range f.SearchTerms {
		re := caseInsensitive(regexp.QuoteMeta(term))
		and = append(and, bson.M{"$or": []bson.M{
			{"title": re},
			{"state": re},
			{"city": re},
		}})
	}

	if f.CreatedBy != "" {
		if oid, err := primitive.ObjectIDFromHex(f.CreatedBy); err == nil {
			// Owner may be stored either as an ObjectID or as its hex
			// string, depending on how the document entered the store.
			and = append(and, bson.M{"$or": []bson.M{
				{"createdBy": oid},
				{"createdBy": f.CreatedBy},
			}})
		} else {
			query["createdBy"] = f.CreatedBy
		}
	}

	if len(and) > 0 {
		query["$and"] = and
	}

	return query
}

// BuildFindOptions returns the pagination and ordering options for a listing
// query.
func BuildFindOptions(f *models.ListFilters) *options.FindOptions {
	opts := options.Find().
		SetSkip(int64(f.Skip())).
		SetLimit(int64(f.Limit))

	if f.SortBy != "" {
		direction := 1
		if f.SortDesc {
			direction = -1
		}
		opts.SetSort(bson.D{{Key: f.SortBy, Value: direction}})
	}

	return opts
}
