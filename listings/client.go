// Package listings fetches property search results from the external listing
// providers and hands them over as flattened rows for normalization. It is
// glue around the analysis core; the core packages never import it.
package listings

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const (
	// ScrapeakURL is the Scrapeak Zillow scraper endpoint.
	ScrapeakURL = "https://app.scrapeak.com/v1/scrapers/zillow/listing"
	// ZillowAltURL is the RapidAPI "working API" Zillow search endpoint.
	ZillowAltURL = "https://zillow-working-api.p.rapidapi.com/search/byurl"
	// RedfinURL is the RapidAPI Redfin search endpoint.
	RedfinURL = "https://redfin-com-data.p.rapidapi.com/property/search-url"

	zillowAltHost = "zillow-working-api.p.rapidapi.com"
	redfinHost    = "redfin-com-data.p.rapidapi.com"
)

// Client talks to the listing providers.
type Client struct {
	scrapeakKey string
	rapidAPIKey string

	scrapeakURL  string
	zillowAltURL string
	redfinURL    string

	httpClient *http.Client
	cache      Cache
}

// NewClient creates a listings client with the given provider keys.
func NewClient(scrapeakKey, rapidAPIKey string) *Client {
	return &Client{
		scrapeakKey:  scrapeakKey,
		rapidAPIKey:  rapidAPIKey,
		scrapeakURL:  ScrapeakURL,
		zillowAltURL: ZillowAltURL,
		redfinURL:    RedfinURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// UseCache installs a response cache. Without one every call hits the network.
func (c *Client) UseCache(cache Cache) {
	c.cache = cache
}

// FetchZillow fetches a Zillow search via Scrapeak and returns one flattened
// row per listing.
func (c *Client) FetchZillow(ctx context.Context, searchURL string) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("api_key", c.scrapeakKey)
	params.Set("url", searchURL)

	body, err := c.get(ctx, "zillow|"+searchURL, c.scrapeakURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("fetch zillow listings: %w", err)
	}

	var payload struct {
		Data struct {
			Cat1 struct {
				SearchResults struct {
					MapResults []any `json:"mapResults"`
				} `json:"searchResults"`
			} `json:"cat1"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("fetch zillow listings: decode response: %w", err)
	}

	return flattenRows(payload.Data.Cat1.SearchResults.MapResults), nil
}

// FetchZillowAlt fetches a Zillow search through the RapidAPI working API.
// Pages start at 1.
func (c *Client) FetchZillowAlt(ctx context.Context, searchURL string, page int) ([]map[string]any, error) {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("url", searchURL)
	params.Set("page", fmt.Sprintf("%d", page))

	headers := map[string]string{
		"X-RapidAPI-Key":  c.rapidAPIKey,
		"X-RapidAPI-Host": zillowAltHost,
	}

	key := fmt.Sprintf("zillow-alt|%d|%s", page, searchURL)
	body, err := c.get(ctx, key, c.zillowAltURL+"?"+params.Encode(), headers)
	if err != nil {
		return nil, fmt.Errorf("fetch zillow listings (working api): %w", err)
	}

	var payload struct {
		Results []any `json:"Results"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("fetch zillow listings (working api): decode response: %w", err)
	}

	return flattenRows(payload.Results), nil
}

// FetchRedfin fetches a Redfin search through RapidAPI. Redfin answers with
// homes either directly under data.homes or nested under a GIS query key.
func (c *Client) FetchRedfin(ctx context.Context, searchURL string) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("url", searchURL)

	headers := map[string]string{
		"X-RapidAPI-Key":  c.rapidAPIKey,
		"X-RapidAPI-Host": redfinHost,
	}

	body, err := c.get(ctx, "redfin|"+searchURL, c.redfinURL+"?"+params.Encode(), headers)
	if err != nil {
		return nil, fmt.Errorf("fetch redfin listings: %w", err)
	}

	var payload struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("fetch redfin listings: decode response: %w", err)
	}

	homes, err := redfinHomes(payload.Data)
	if err != nil {
		return nil, fmt.Errorf("fetch redfin listings: %w", err)
	}

	return flattenRows(homes), nil
}

func redfinHomes(data map[string]json.RawMessage) ([]any, error) {
	if raw, ok := data["homes"]; ok {
		var homes []any
		if err := json.Unmarshal(raw, &homes); err != nil {
			return nil, fmt.Errorf("decode homes: %w", err)
		}
		return homes, nil
	}

	// Sorted so a response with several GIS keys picks the same one each run.
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !strings.HasPrefix(k, "gis?a") {
			continue
		}
		var section struct {
			Homes []any `json:"homes"`
		}
		if err := json.Unmarshal(data[k], &section); err != nil {
			continue
		}
		if len(section.Homes) > 0 {
			return section.Homes, nil
		}
	}

	return nil, nil
}

// get fetches a URL, consulting the cache first and storing fresh responses.
func (c *Client) get(ctx context.Context, cacheKey, apiURL string, headers map[string]string) ([]byte, error) {
	if c.cache != nil {
		if cached, ok := c.cache.Get(cacheKey); ok {
			return []byte(cached), nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if c.cache != nil {
		// Best effort; the fetch already succeeded.
		_ = c.cache.Set(cacheKey, string(body))
	}

	return body, nil
}

// flattenRows flattens each row's nested objects into dot-joined keys
// ("hdpData.homeInfo.price"), the shape the normalizers expect.
func flattenRows(rows []any) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		m, ok := row.(map[string]any)
		if !ok {
			continue
		}
		flat := make(map[string]any)
		flattenInto(flat, "", m)
		out = append(out, flat)
	}
	return out
}

func flattenInto(dst map[string]any, prefix string, src map[string]any) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if child, ok := v.(map[string]any); ok {
			flattenInto(dst, key, child)
			continue
		}
		dst[key] = v
	}
}
