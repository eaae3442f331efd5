package models

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cast"
)

// ListFilters is the typed filter set for a property-listing request. Nil
// pointers mean the parameter was absent and imposes no constraint.
type ListFilters struct {
	Location    string
	MinPrice    *float64
	MaxPrice    *float64
	Bedrooms    *int
	Bathrooms   *int
	MinArea     *float64
	MaxArea     *float64
	Type        string
	Status      string
	Amenities   []string
	SearchTerms []string
	CreatedBy   string
	SortBy      string
	SortDesc    bool
	Page        int
	Limit       int
}

// ParseListFilters performs the single validated-parse step from raw query
// parameters to a typed filter set. A numeric parameter that fails coercion
// is an error, never a silently dropped filter.
func ParseListFilters(values url.Values) (*ListFilters, error) {
	f := &ListFilters{
		Location:  values.Get("location"),
		Type:      values.Get("type"),
		Status:    values.Get("status"),
		CreatedBy: values.Get("createdBy"),
		SortBy:    values.Get("sortBy"),
		SortDesc:  values.Get("sortOrder") == "desc",
		Page:      1,
		Limit:     10,
	}

	var err error
	if f.MinPrice, err = parseFloat(values, "minPrice"); err != nil {
		return nil, err
	}
	if f.MaxPrice, err = parseFloat(values, "maxPrice"); err != nil {
		return nil, err
	}
	if f.MinArea, err = parseFloat(values, "minArea"); err != nil {
		return nil, err
	}
	if f.MaxArea, err = parseFloat(values, "maxArea"); err != nil {
		return nil, err
	}
	if f.Bedrooms, err = parseInt(values, "bedrooms"); err != nil {
		return nil, err
	}
	if f.Bathrooms, err = parseInt(values, "bathrooms"); err != nil {
		return nil, err
	}

	if raw := values.Get("page"); raw != "" {
		page, err := cast.ToIntE(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid page parameter %q: %v", raw, err)
		}
		if page > 0 {
			f.Page = page
		}
	}
	if raw := values.Get("limit"); raw != "" {
		limit, err := cast.ToIntE(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid limit parameter %q: %v", raw, err)
		}
		if limit > 0 {
			f.Limit = limit
		}
	}

	if raw := values.Get("amenities"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				f.Amenities = append(f.Amenities, a)
			}
		}
	}
	if raw := values.Get("search"); raw != "" {
		f.SearchTerms = strings.Fields(raw)
	}

	return f, nil
}

// Skip returns the number of documents to skip for the 1-based page.
func (f *ListFilters) Skip() int {
	return (f.Page - 1) * f.Limit
}

func parseFloat(values url.Values, name string) (*float64, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter %q: %v", name, raw, err)
	}
	return &v, nil
}

func parseInt(values url.Values, name string) (*int, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := cast.ToIntE(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter %q: %v", name, raw, err)
	}
	return &v, nil
}
