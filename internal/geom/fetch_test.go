package geom

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyWorld = `{
	"type": "FeatureCollection",
	"features": [
		{"type": "Feature", "properties": {"name": "Isle"},
		 "geometry": {"type": "Polygon", "coordinates": [[[0,0],[4,0],[4,4],[0,0]]]}}
	]
}`

func TestFetchBasemapDownloadsAndCaches(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(tinyWorld))
	}))
	defer srv.Close()

	cache := filepath.Join(t.TempDir(), "cache", "world.geojson")

	bm, err := FetchBasemap(context.Background(), srv.URL, cache)
	require.NoError(t, err)
	require.Len(t, bm.Shapes, 1)
	assert.Equal(t, int32(1), hits.Load())

	// the cached copy is on disk and preferred on the next call
	_, err = os.Stat(cache)
	require.NoError(t, err)

	bm, err = FetchBasemap(context.Background(), srv.URL, cache)
	require.NoError(t, err)
	assert.Len(t, bm.Shapes, 1)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetchBasemapCorruptCacheFallsThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tinyWorld))
	}))
	defer srv.Close()

	cache := filepath.Join(t.TempDir(), "world.geojson")
	require.NoError(t, os.WriteFile(cache, []byte("garbage"), 0o644))

	bm, err := FetchBasemap(context.Background(), srv.URL, cache)
	require.NoError(t, err)
	assert.Len(t, bm.Shapes, 1)

	// the good download replaced the corrupt cache
	data, err := os.ReadFile(cache)
	require.NoError(t, err)
	assert.JSONEq(t, tinyWorld, string(data))
}

func TestFetchBasemapHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := FetchBasemap(context.Background(), srv.URL, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestFetchBasemapNoCachePath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tinyWorld))
	}))
	defer srv.Close()

	bm, err := FetchBasemap(context.Background(), srv.URL, "")
	require.NoError(t, err)
	assert.Len(t, bm.Shapes, 1)
}
