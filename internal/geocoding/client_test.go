package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parisResponse = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [2.3522, 48.8566]},
			"properties": {
				"name": "Paris",
				"city": "Paris",
				"postcode": "75001",
				"context": "75, Paris, Île-de-France"
			}
		},
		{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [4.8357, 45.764]},
			"properties": {
				"name": "Lyon",
				"postcode": "69001",
				"context": "69, Rhône, Auvergne-Rhône-Alpes"
			}
		}
	]
}`

func TestSearch_MapsFeaturesToCities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/", r.URL.Path)
		assert.Equal(t, "paris", r.URL.Query().Get("q"))
		assert.Equal(t, "municipality", r.URL.Query().Get("type"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Write([]byte(parisResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)
	cities := client.Search(context.Background(), "paris")

	require.Len(t, cities, 2)
	assert.Equal(t, "Paris", cities[0].Name)
	assert.Equal(t, "75001", cities[0].PostalCode)
	assert.Equal(t, "Paris", cities[0].Department)
	assert.InDelta(t, 48.8566, cities[0].Coordinate.Latitude, 1e-6)
	assert.InDelta(t, 2.3522, cities[0].Coordinate.Longitude, 1e-6)

	// Falls back to the name property when city is absent.
	assert.Equal(t, "Lyon", cities[1].Name)
	assert.Equal(t, "Rhône", cities[1].Department)
}

func TestSearch_UpstreamErrorDegradesToEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)
	cities := client.Search(context.Background(), "paris")

	assert.NotNil(t, cities)
	assert.Empty(t, cities)
}

func TestSearch_UnreachableHostDegradesToEmptyList(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", nil, nil)
	cities := client.Search(context.Background(), "paris")

	assert.Empty(t, cities)
}

func TestSearch_MalformedResponseDegradesToEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)

	assert.Empty(t, client.Search(context.Background(), "paris"))
}

func TestSearch_BlankQueryShortCircuits(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)

	assert.Empty(t, client.Search(context.Background(), "   "))
	assert.False(t, called)
}

func TestSearch_SecondLookupServedFromCache(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(parisResponse))
	}))
	defer server.Close()

	cache := NewLayeredCache(nil, NewMemoryCache(testTTL))
	client := NewClient(server.URL, cache, nil)

	first := client.Search(context.Background(), "Paris")
	second := client.Search(context.Background(), "Paris")

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}
