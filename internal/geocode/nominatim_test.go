package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchBody = `[{"lat":"48.1486","lon":"17.1077","address":{"city":"Bratislava","country":"Slovakia"}}]`

func TestForward_ParsesFirstResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		w.Write([]byte(searchBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	loc, err := c.Forward(context.Background(), "Bratislava")
	require.NoError(t, err)

	assert.InDelta(t, 48.1486, loc.Lat, 1e-9)
	assert.InDelta(t, 17.1077, loc.Lon, 1e-9)
	assert.Equal(t, "Bratislava", loc.City)
	assert.Equal(t, "Slovakia", loc.Country)
}

func TestForward_CityFallsBackToTownAndVillage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"48.0","lon":"17.0","address":{"village":"Rusovce","country":"Slovakia"}}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	loc, err := c.Forward(context.Background(), "Rusovce")
	require.NoError(t, err)
	assert.Equal(t, "Rusovce", loc.City)
}

func TestForward_EmptyResponseIsErrNoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.Forward(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestForward_CacheSkipsSecondRequest(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(searchBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, NewCache(rdb, time.Hour))

	first, err := c.Forward(context.Background(), "Bratislava")
	require.NoError(t, err)

	second, err := c.Forward(context.Background(), "Bratislava")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), hits.Load(), "second lookup must be served from cache")
}

func TestReverse_ReturnsDisplayName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		w.Write([]byte(`{"display_name":"Hlavné námestie, Bratislava, Slovakia"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	addr, err := c.Reverse(context.Background(), 48.1486, 17.1077)
	require.NoError(t, err)
	assert.Contains(t, addr, "Bratislava")
}

func TestForward_ServerErrorIsNotNoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.Forward(context.Background(), "Bratislava")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoResult)
}
