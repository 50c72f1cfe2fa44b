package api

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/telemetrahq/telemetra-cli/models"
)

func TestSearchFeedsQueryExact(t *testing.T) {
	var gotQuery map[string][]string
	ctx := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data": [], "total": 0}`))
	})

	lat, lon, distance := 51.5237, -0.0765, 5.5
	_, err := SearchFeeds(ctx, &FeedSearchOptions{
		Query:        "air quality",
		Type:         "datasource",
		Tags:         "sensor,outdoor",
		Limit:        25,
		Page:         2,
		Latitude:     &lat,
		Longitude:    &lon,
		Distance:     &distance,
		DistanceUnit: "km",
	})
	assert.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"q":             {"air quality"},
		"type":          {"datasource"},
		"tags":          {"sensor,outdoor"},
		"limit":         {"25"},
		"page":          {"2"},
		"latitude":      {"51.5237"},
		"longitude":     {"-0.0765"},
		"distance":      {"5.5"},
		"distance_unit": {"km"},
	}, gotQuery)
}

func TestSearchFeedsGeoFilterKeys(t *testing.T) {
	var gotQuery map[string][]string
	ctx := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data": []}`))
	})

	lat, lon := 51.5237, -0.0765
	_, err := SearchFeeds(ctx, &FeedSearchOptions{Latitude: &lat, Longitude: &lon})
	assert.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"latitude":  {"51.5237"},
		"longitude": {"-0.0765"},
	}, gotQuery)
}

func TestSearchFeedsZeroCoordinates(t *testing.T) {
	var gotQuery map[string][]string
	ctx := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data": []}`))
	})

	// The equator and prime meridian are valid search centers, as is a
	// zero radius.
	lat, lon, distance := 0.0, 0.0, 0.0
	_, err := SearchFeeds(ctx, &FeedSearchOptions{Latitude: &lat, Longitude: &lon, Distance: &distance})
	assert.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"latitude":  {"0"},
		"longitude": {"0"},
		"distance":  {"0"},
	}, gotQuery)
}

func TestSearchFeedsOmitsUnsetFilters(t *testing.T) {
	var gotQuery map[string][]string
	ctx := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data": []}`))
	})

	_, err := SearchFeeds(ctx, &FeedSearchOptions{Tags: "indoor"})
	assert.NoError(t, err)
	assert.Equal(t, map[string][]string{"tags": {"indoor"}}, gotQuery)
}

func TestFetchFeedsMatchesEmptySearch(t *testing.T) {
	var uris []string
	ctx := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		uris = append(uris, r.URL.RequestURI())
		w.Write([]byte(`{"data": []}`))
	})

	_, err := FetchFeeds(ctx)
	assert.NoError(t, err)
	_, err = SearchFeeds(ctx, nil)
	assert.NoError(t, err)
	_, err = SearchFeeds(ctx, &FeedSearchOptions{})
	assert.NoError(t, err)

	assert.Equal(t, []string{"/v2/feeds", "/v2/feeds", "/v2/feeds"}, uris)
}

func TestFetchFeedInfo(t *testing.T) {
	ctx := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/feeds/feed-1", r.URL.Path)
		w.Write([]byte(`{"id": "feed-1", "name": "Rooftop weather", "status": "live", "visibility": "public", "tags": ["weather"]}`))
	})

	feed, err := FetchFeedInfo(ctx, "feed-1")
	assert.NoError(t, err)
	assert.Equal(t, "feed-1", feed.ID)
	assert.Equal(t, "Rooftop weather", feed.Name)
	assert.Equal(t, []string{"weather"}, feed.Tags)
}

func TestFetchFeedLocationNoContent(t *testing.T) {
	ctx := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	location, err := FetchFeedLocation(ctx, "feed-1")
	assert.NoError(t, err)
	assert.Nil(t, location)
}

func TestFetchFeedLocation(t *testing.T) {
	ctx := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/feeds/feed-1/location", r.URL.Path)
		w.Write([]byte(`{"name": "roof", "lat": 51.5237, "lon": -0.0765, "exposure": "outdoor"}`))
	})

	location, err := FetchFeedLocation(ctx, "feed-1")
	assert.NoError(t, err)
	assert.Equal(t, "roof", location.Name)
	assert.Equal(t, 51.5237, location.Latitude)
	assert.Equal(t, "outdoor", location.Exposure)
}

func TestUpdateFeedLocation(t *testing.T) {
	ctx := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v2/feeds/feed-1/location", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name": "roof", "lat": 51.5237, "lon": -0.0765}`, string(body))
		w.WriteHeader(http.StatusOK)
	})

	err := UpdateFeedLocation(ctx, "feed-1", models.Location{Name: "roof", Latitude: 51.5237, Longitude: -0.0765})
	assert.NoError(t, err)
}

func TestPublishDatapointsBody(t *testing.T) {
	ctx := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/feeds/feed-1", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"values": {"temp": [{"at": "2023-01-01T00:00:00Z", "value": "21"}]}}`, string(body))
		w.WriteHeader(http.StatusOK)
	})

	at, _ := time.Parse(time.RFC3339, "2023-01-01T00:00:00Z")
	err := PublishDatapoints(ctx, "feed-1", map[string][]models.Datapoint{
		"temp": {{At: at, Value: "21"}},
	})
	assert.NoError(t, err)
}

func TestCreateFeedKeyDelegates(t *testing.T) {
	type captured struct {
		method string
		path   string
		body   string
	}
	var requests []captured
	ctx := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, captured{r.Method, r.URL.RequestURI(), string(body)})
		w.Write([]byte(`{"key": "abc", "label": "x"}`))
	})

	_, err := CreateFeedKey(ctx, "feed-1", KeyCreateOptions{Label: "x"})
	assert.NoError(t, err)
	_, err = CreateKey(ctx, KeyCreateOptions{Label: "x", Feed: "feed-1"})
	assert.NoError(t, err)

	assert.Len(t, requests, 2)
	assert.Equal(t, requests[0], requests[1])
}

func TestFetchFeedAccessLog(t *testing.T) {
	ctx := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/feeds/feed-1/log", r.URL.Path)
		w.Write([]byte(`{"data": [{"at": "2023-01-01T00:00:00Z", "method": "GET", "path": "/v2/feeds/feed-1", "status": 200}]}`))
	})

	entries, err := FetchFeedAccessLog(ctx, "feed-1")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "GET", entries[0].Method)
	assert.Equal(t, 200, entries[0].Status)
}

func TestDeleteFeed(t *testing.T) {
	ctx := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v2/feeds/feed-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, DeleteFeed(ctx, "feed-1"))
}

func TestFetchFeedInfoErrorStatus(t *testing.T) {
	ctx := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"summary": "feed not found"}`))
	})

	_, err := FetchFeedInfo(ctx, "nope")
	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}
