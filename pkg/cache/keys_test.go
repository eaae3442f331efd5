package cache

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListKeyDeterministicAcrossParamOrder(t *testing.T) {
	a, err := url.ParseQuery("page=2&minPrice=100000&city=Pune&sortBy=price")
	assert.NoError(t, err)
	b, err := url.ParseQuery("sortBy=price&city=Pune&page=2&minPrice=100000")
	assert.NoError(t, err)

	assert.Equal(t, ListKey(a), ListKey(b))
}

func TestListKeyDistinguishesParamValues(t *testing.T) {
	a := url.Values{"page": {"1"}}
	b := url.Values{"page": {"2"}}

	assert.NotEqual(t, ListKey(a), ListKey(b))
}

func TestListKeyEmptyParams(t *testing.T) {
	assert.Equal(t, "properties:{}", ListKey(url.Values{}))
}

func TestListKeyPrefix(t *testing.T) {
	key := ListKey(url.Values{"search": {"pune apartment"}})
	assert.Contains(t, key, "properties:")
	assert.Contains(t, key, "pune apartment")
}

func TestPropertyKey(t *testing.T) {
	assert.Equal(t, "property:665f1c2e9b1d4c0012345678", PropertyKey("665f1c2e9b1d4c0012345678"))
}
