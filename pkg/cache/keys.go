package cache

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// TTL applied to every listing and detail cache entry.
const Expiration = 3600 // seconds

// Glob patterns covering the listing and detail keyspaces.
const (
	ListPattern   = "properties:*"
	DetailPattern = "property:*"
)

// ListKey derives the cache key for a property-listing request. The query
// parameters are serialized as a JSON object; json.Marshal sorts map keys
// lexicographically, so semantically identical requests with differently
// ordered query strings produce byte-identical keys.
func ListKey(params url.Values) string {
	flat := make(map[string]string, len(params))
	for name, values := range params {
		if len(values) > 0 {
			flat[name] = values[0]
		}
	}
	data, err := json.Marshal(flat)
	if err != nil {
		// map[string]string cannot fail to marshal
		return "properties:{}"
	}
	return "properties:" + string(data)
}

// PropertyKey derives the cache key for a property detail entry.
func PropertyKey(id string) string {
	return fmt.Sprintf("property:%s", id)
}
