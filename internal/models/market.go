package models

// MarketSummary aggregates comparable listings (same city, same type).
// A zero Count means no comparable market data; all derived figures stay at
// their neutral zero values in that case.
type MarketSummary struct {
	AvgPrice        float64 `bson:"avgPrice"`
	AvgPricePerSqFt float64 `bson:"avgPricePerSqFt"`
	MinPrice        float64 `bson:"minPrice"`
	MaxPrice        float64 `bson:"maxPrice"`
	Count           int64   `bson:"count"`
	AvgBedrooms     float64 `bson:"avgBedrooms"`
	AvgBathrooms    float64 `bson:"avgBathrooms"`
	AvgArea         float64 `bson:"avgArea"`
}

// AmenityStat is one amenity's frequency and average price among comparables.
type AmenityStat struct {
	Amenity  string  `bson:"_id"`
	Count    int64   `bson:"count"`
	AvgPrice float64 `bson:"avgPrice"`
}

// EvaluationRequest carries the candidate property for market evaluation.
type EvaluationRequest struct {
	Price       float64  `json:"price"`
	AreaSqFt    float64  `json:"areaSqFt"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Type        string   `json:"type"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
}

type EvaluationResponse struct {
	Success bool   `json:"success"`
	Result  string `json:"result"`
}
