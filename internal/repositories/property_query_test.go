package repositories

import (
	"testing"

	"urbannest-properties/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestBuildListQueryEmpty(t *testing.T) {
	query := BuildListQuery(&models.ListFilters{})
	assert.Empty(t, query)
}

func TestBuildListQueryPriceRange(t *testing.T) {
	query := BuildListQuery(&models.ListFilters{
		MinPrice: floatPtr(100000),
		MaxPrice: floatPtr(500000),
	})

	price, ok := query["price"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, 100000.0, price["$gte"])
	assert.Equal(t, 500000.0, price["$lte"])
}

func TestBuildListQueryOpenEndedPriceRange(t *testing.T) {
	query := BuildListQuery(&models.ListFilters{MinPrice: floatPtr(250000)})

	price, ok := query["price"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, 250000.0, price["$gte"])
	_, hasLte := price["$lte"]
	assert.False(t, hasLte)
}

func TestBuildListQueryExactCounts(t *testing.T) {
	query := BuildListQuery(&models.ListFilters{
		Bedrooms:  intPtr(3),
		Bathrooms: intPtr(2),
		Type:      "Villa",
		Status:    "rent",
	})

	assert.Equal(t, 3, query["bedrooms"])
	assert.Equal(t, 2, query["bathrooms"])
	assert.Equal(t, "Villa", query["type"])
	assert.Equal(t, "rent", query["listingType"])
}

func TestBuildListQueryAmenitiesAll(t *testing.T) {
	query := BuildListQuery(&models.ListFilters{Amenities: []string{"pool", "gym"}})

	amenities, ok := query["amenities"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, []string{"pool", "gym"}, amenities["$all"])
}

func TestBuildListQuerySearchAndOfPerTermOrs(t *testing.T) {
	query := BuildListQuery(&models.ListFilters{SearchTerms: []string{"sea", "view"}})

	and, ok := query["$and"].([]bson.M)
	require.True(t, ok)
	require.Len(t, and, 2)

	for i, term := range []string{"sea", "view"} {
		or, ok := and[i]["$or"].([]bson.M)
		require.True(t, ok)
		require.Len(t, or, 3)

		fields := make([]string, 0, 3)
		for _, clause := range or {
			for field, value := range clause {
				fields = append(fields, field)
				re, ok := value.(primitive.Regex)
				require.True(t, ok)
				assert.Equal(t, term, re.Pattern)
				assert.Equal(t, "i", re.Options)
			}
		}
		assert.ElementsMatch(t, []string{"title", "state", "city"}, fields)
	}
}

func TestBuildListQuerySearchEscapesRegexMeta(t *testing.T) {
	query := BuildListQuery(&models.ListFilters{SearchTerms: []string{"2BHK+"}})

	and := query["$and"].([]bson.M)
	or := and[0]["$or"].([]bson.M)
	re := or[0]["title"].(primitive.Regex)
	assert.Equal(t, `2BHK\+`, re.Pattern)
}

func TestBuildListQueryCreatedByDualForm(t *testing.T) {
	hex := "665f1c2e9b1d4c0012345678"
	query := BuildListQuery(&models.ListFilters{CreatedBy: hex})

	and, ok := query["$and"].([]bson.M)
	require.True(t, ok)
	require.Len(t, and, 1)

	or, ok := and[0]["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 2)

	oid, _ := primitive.ObjectIDFromHex(hex)
	assert.Equal(t, oid, or[0]["createdBy"])
	assert.Equal(t, hex, or[1]["createdBy"])
}

func TestBuildListQueryCreatedByNonHex(t *testing.T) {
	query := BuildListQuery(&models.ListFilters{CreatedBy: "legacy-user-7"})
	assert.Equal(t, "legacy-user-7", query["createdBy"])
	_, hasAnd := query["$and"]
	assert.False(t, hasAnd)
}

func TestBuildListQueryLocationMatchesCityOrState(t *testing.T) {
	query := BuildListQuery(&models.ListFilters{Location: "pune"})

	and := query["$and"].([]bson.M)
	require.Len(t, and, 1)
	or := and[0]["$or"].([]bson.M)
	require.Len(t, or, 2)
	assert.Equal(t, primitive.Regex{Pattern: "pune", Options: "i"}, or[0]["city"])
	assert.Equal(t, primitive.Regex{Pattern: "pune", Options: "i"}, or[1]["state"])
}

func TestBuildListQueryCombinedAndClauses(t *testing.T) {
	query := BuildListQuery(&models.ListFilters{
		Location:    "pune",
		SearchTerms: []string{"sea"},
		CreatedBy:   "665f1c2e9b1d4c0012345678",
	})

	and, ok := query["$and"].([]bson.M)
	require.True(t, ok)
	assert.Len(t, and, 3)
}

func TestBuildFindOptions(t *testing.T) {
	opts := BuildFindOptions(&models.ListFilters{
		Page:     3,
		Limit:    20,
		SortBy:   "price",
		SortDesc: true,
	})

	require.NotNil(t, opts.Skip)
	assert.Equal(t, int64(40), *opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(20), *opts.Limit)

	sort, ok := opts.Sort.(bson.D)
	require.True(t, ok)
	require.Len(t, sort, 1)
	assert.Equal(t, "price", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
}

func TestBuildFindOptionsNoSort(t *testing.T) {
	opts := BuildFindOptions(&models.ListFilters{Page: 1, Limit: 10})
	assert.Nil(t, opts.Sort)
}
