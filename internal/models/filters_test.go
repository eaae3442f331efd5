package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListFiltersDefaults(t *testing.T) {
	f, err := ParseListFilters(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.Limit)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.Bedrooms)
	assert.Empty(t, f.Amenities)
	assert.Empty(t, f.SearchTerms)
}

func TestParseListFiltersFullSet(t *testing.T) {
	values, err := url.ParseQuery("location=Pune&minPrice=100000&maxPrice=500000&bedrooms=3&bathrooms=2&minArea=800&maxArea=2000&type=Apartment&status=rent&amenities=pool,%20gym%20,&search=sea%20view&createdBy=665f1c2e9b1d4c0012345678&sortBy=price&sortOrder=desc&page=3&limit=25")
	require.NoError(t, err)

	f, err := ParseListFilters(values)
	require.NoError(t, err)

	assert.Equal(t, "Pune", f.Location)
	require.NotNil(t, f.MinPrice)
	assert.Equal(t, 100000.0, *f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, 500000.0, *f.MaxPrice)
	require.NotNil(t, f.Bedrooms)
	assert.Equal(t, 3, *f.Bedrooms)
	require.NotNil(t, f.Bathrooms)
	assert.Equal(t, 2, *f.Bathrooms)
	require.NotNil(t, f.MinArea)
	assert.Equal(t, 800.0, *f.MinArea)
	assert.Equal(t, "Apartment", f.Type)
	assert.Equal(t, "rent", f.Status)
	assert.Equal(t, []string{"pool", "gym"}, f.Amenities)
	assert.Equal(t, []string{"sea", "view"}, f.SearchTerms)
	assert.Equal(t, "665f1c2e9b1d4c0012345678", f.CreatedBy)
	assert.Equal(t, "price", f.SortBy)
	assert.True(t, f.SortDesc)
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 25, f.Limit)
}

func TestParseListFiltersBadCoercion(t *testing.T) {
	cases := map[string]url.Values{
		"minPrice": {"minPrice": {"cheap"}},
		"maxPrice": {"maxPrice": {"1e3x"}},
		"bedrooms": {"bedrooms": {"three"}},
		"page":     {"page": {"first"}},
		"limit":    {"limit": {"many"}},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseListFilters(values)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestParseListFiltersNonPositivePageAndLimitFallBack(t *testing.T) {
	f, err := ParseListFilters(url.Values{"page": {"0"}, "limit": {"-5"}})
	require.NoError(t, err)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.Limit)
}

func TestSkip(t *testing.T) {
	f := &ListFilters{Page: 4, Limit: 25}
	assert.Equal(t, 75, f.Skip())
}
