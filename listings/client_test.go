package listings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(serverURL string) *Client {
	return &Client{
		scrapeakKey:  "test-scrapeak-key",
		rapidAPIKey:  "test-rapidapi-key",
		scrapeakURL:  serverURL,
		zillowAltURL: serverURL,
		redfinURL:    serverURL,
		httpClient:   &http.Client{Timeout: 5 * time.Second},
	}
}

func TestFetchZillow_Success(t *testing.T) {
	mockResponse := map[string]any{
		"data": map[string]any{
			"cat1": map[string]any{
				"searchResults": map[string]any{
					"mapResults": []any{
						map[string]any{
							"zpid": "19472195",
							"hdpData": map[string]any{
								"homeInfo": map[string]any{
									"price":         420000,
									"streetAddress": "742 Evergreen Ter",
								},
							},
						},
					},
				},
			},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-scrapeak-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "https://www.zillow.com/fresno-ca/", r.URL.Query().Get("url"))

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(mockResponse)
	}))
	defer server.Close()

	client := testClient(server.URL)
	rows, err := client.FetchZillow(context.Background(), "https://www.zillow.com/fresno-ca/")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Nested objects come back flattened with dotted keys.
	assert.Equal(t, "19472195", rows[0]["zpid"])
	assert.Equal(t, float64(420000), rows[0]["hdpData.homeInfo.price"])
	assert.Equal(t, "742 Evergreen Ter", rows[0]["hdpData.homeInfo.streetAddress"])
}

func TestFetchZillowAlt_Success(t *testing.T) {
	mockResponse := map[string]any{
		"Results": []any{
			map[string]any{"zpid": "100", "hdpData": map[string]any{"homeInfo": map[string]any{"price": 350000}}},
			map[string]any{"zpid": "101", "hdpData": map[string]any{"homeInfo": map[string]any{"price": 360000}}},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-rapidapi-key", r.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, "zillow-working-api.p.rapidapi.com", r.Header.Get("X-RapidAPI-Host"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(mockResponse)
	}))
	defer server.Close()

	client := testClient(server.URL)
	rows, err := client.FetchZillowAlt(context.Background(), "https://www.zillow.com/fresno-ca/", 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, float64(360000), rows[1]["hdpData.homeInfo.price"])
}

func TestFetchRedfin_HomesDirect(t *testing.T) {
	mockResponse := map[string]any{
		"data": map[string]any{
			"homes": []any{
				map[string]any{
					"listingId": "187654321",
					"price":     map[string]any{"value": 385000},
				},
			},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "redfin-com-data.p.rapidapi.com", r.Header.Get("X-RapidAPI-Host"))
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(mockResponse)
	}))
	defer server.Close()

	client := testClient(server.URL)
	rows, err := client.FetchRedfin(context.Background(), "https://www.redfin.com/city/7937/CA/Fresno")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(385000), rows[0]["price.value"])
}

func TestFetchRedfin_GISFallback(t *testing.T) {
	mockResponse := map[string]any{
		"data": map[string]any{
			"meta": map[string]any{"status": "ok"},
			"gis?al=1": map[string]any{
				"homes": []any{
					map[string]any{"listingId": "42", "price": map[string]any{"value": 250000}},
				},
			},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(mockResponse)
	}))
	defer server.Close()

	client := testClient(server.URL)
	rows, err := client.FetchRedfin(context.Background(), "https://www.redfin.com/anywhere")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(250000), rows[0]["price.value"])
}

func TestFetch_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"invalid api key"}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.FetchZillow(context.Background(), "https://www.zillow.com/fresno-ca/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestFetchZillow_CacheHit(t *testing.T) {
	hits := 0
	mockResponse := map[string]any{
		"data": map[string]any{
			"cat1": map[string]any{
				"searchResults": map[string]any{
					"mapResults": []any{
						map[string]any{"zpid": "1", "hdpData": map[string]any{"homeInfo": map[string]any{"price": 100000}}},
					},
				},
			},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(mockResponse)
	}))
	defer server.Close()

	client := testClient(server.URL)
	client.UseCache(NewMemoryCache())

	ctx := context.Background()
	first, err := client.FetchZillow(ctx, "https://www.zillow.com/fresno-ca/")
	require.NoError(t, err)
	second, err := client.FetchZillow(ctx, "https://www.zillow.com/fresno-ca/")
	require.NoError(t, err)

	assert.Equal(t, 1, hits)
	assert.Equal(t, first, second)

	// A different search URL misses the cache.
	_, err = client.FetchZillow(ctx, "https://www.zillow.com/clovis-ca/")
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}

func TestMemoryCache(t *testing.T) {
	t.Parallel()

	c := NewMemoryCache()

	_, ok := c.Get("missing")
	assert.False(t, ok)

	require.NoError(t, c.Set("k", "v"))
	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestFlattenRows(t *testing.T) {
	t.Parallel()

	rows := []any{
		map[string]any{
			"a": "top",
			"b": map[string]any{
				"c": 1.5,
				"d": map[string]any{"e": "deep"},
			},
		},
		"not a map", // skipped
	}

	out := flattenRows(rows)
	require.Len(t, out, 1)
	assert.Equal(t, "top", out[0]["a"])
	assert.Equal(t, 1.5, out[0]["b.c"])
	assert.Equal(t, "deep", out[0]["b.d.e"])
}
