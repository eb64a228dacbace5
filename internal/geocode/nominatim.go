package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://nominatim.openstreetmap.org"
	defaultTimeout = 5 * time.Second
	userAgent      = "staybook/1.0"
)

// ErrNoResult means the service answered but found nothing for the query.
// Transport and non-200 failures are returned as ordinary errors.
var ErrNoResult = errors.New("geocode: no result")

// Location is a forward-geocoding result.
type Location struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Country string  `json:"country"`
}

// Client resolves free-text addresses against the Nominatim API. Results are
// cached when a Cache is configured; Nominatim rate-limits aggressively and
// search queries repeat the same few addresses.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *Cache
}

func NewClient(baseURL string, cache *Cache) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		cache:   cache,
	}
}

type searchResult struct {
	Lat     string `json:"lat"`
	Lon     string `json:"lon"`
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Country string `json:"country"`
	} `json:"address"`
}

// Forward resolves an address to coordinates plus city and country.
func (c *Client) Forward(ctx context.Context, address string) (*Location, error) {
	cacheKey := "geocode:fwd:" + address

	if c.cache != nil {
		var cached Location
		if ok, err := c.cache.Get(ctx, cacheKey, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("addressdetails", "1")

	var results []searchResult
	if err := c.getJSON(ctx, c.baseURL+"/search?"+q.Encode(), &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNoResult
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: bad longitude %q: %w", results[0].Lon, err)
	}

	addr := results[0].Address
	city := addr.City
	if city == "" {
		city = addr.Town
	}
	if city == "" {
		city = addr.Village
	}

	loc := &Location{Lat: lat, Lon: lon, City: city, Country: addr.Country}

	if c.cache != nil {
		// Best effort; a failed cache write must not fail the lookup.
		_ = c.cache.Set(ctx, cacheKey, loc)
	}

	return loc, nil
}

type reverseResult struct {
	DisplayName string `json:"display_name"`
}

// Reverse resolves coordinates to a display address.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("format", "json")

	var result reverseResult
	if err := c.getJSON(ctx, c.baseURL+"/reverse?"+q.Encode(), &result); err != nil {
		return "", err
	}
	if result.DisplayName == "" {
		return "", ErrNoResult
	}
	return result.DisplayName, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocode: service returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
