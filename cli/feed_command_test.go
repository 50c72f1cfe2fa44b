package cli

import (
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/telemetrahq/telemetra-cli/api"
	"github.com/telemetrahq/telemetra-cli/context"
	"github.com/telemetrahq/telemetra-cli/models"
)

// captureOutput runs f with os.Stdout redirected to a pipe and returns
// everything written to it.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	out, _ := io.ReadAll(r)
	return string(out)
}

func testConfig(t *testing.T) *Config {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return &Config{}
}

func TestFeedLs(t *testing.T) {
	config := testConfig(t)

	var gotCtx *context.Context
	mock := &MockAPIClient{
		FetchFeedsFunc: func(ctx *context.Context) ([]models.Feed, error) {
			gotCtx = ctx
			return []models.Feed{
				{ID: "feed-1", Name: "Weather Station", Status: "live", Visibility: "public", UpdatedAt: time.Now()},
				{ID: "feed-2", Name: "Greenhouse", Status: "frozen", Visibility: "private", UpdatedAt: time.Now()},
			}, nil
		},
	}

	var err error
	output := captureOutput(func() {
		err = feedLs(nil, config, mock)
	})

	assert.NoError(t, err)
	assert.NotNil(t, gotCtx)
	assert.Contains(t, output, "Feeds")
	assert.Contains(t, output, "feed-1")
	assert.Contains(t, output, "Weather Station")
	assert.Contains(t, output, "Greenhouse")
}

func TestFeedLsEmpty(t *testing.T) {
	config := testConfig(t)

	mock := &MockAPIClient{
		FetchFeedsFunc: func(ctx *context.Context) ([]models.Feed, error) {
			return nil, nil
		},
	}

	var err error
	output := captureOutput(func() {
		err = feedLs(nil, config, mock)
	})

	assert.NoError(t, err)
	assert.Contains(t, output, "No feeds found")
}

func TestFeedLsError(t *testing.T) {
	config := testConfig(t)

	mock := &MockAPIClient{
		FetchFeedsFunc: func(ctx *context.Context) ([]models.Feed, error) {
			return nil, errors.New("boom")
		},
	}

	err := feedLs(nil, config, mock)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestFeedSearchPassesOptions(t *testing.T) {
	config := testConfig(t)
	f := &FeedConfig{Query: "air quality", Tags: "co2", Limit: 5, Lat: "51.5", Lon: "-0.12", Distance: "10"}

	var gotOptions *api.FeedSearchOptions
	mock := &MockAPIClient{
		SearchFeedsFunc: func(ctx *context.Context, options *api.FeedSearchOptions) ([]models.Feed, error) {
			gotOptions = options
			return nil, nil
		},
	}

	var err error
	captureOutput(func() {
		err = feedSearch(nil, config, f, mock)
	})

	assert.NoError(t, err)
	assert.NotNil(t, gotOptions)
	assert.Equal(t, "air quality", gotOptions.Query)
	assert.Equal(t, "co2", gotOptions.Tags)
	assert.Equal(t, 5, gotOptions.Limit)
	assert.NotNil(t, gotOptions.Latitude)
	assert.Equal(t, 51.5, *gotOptions.Latitude)
	assert.NotNil(t, gotOptions.Longitude)
	assert.Equal(t, -0.12, *gotOptions.Longitude)
	assert.NotNil(t, gotOptions.Distance)
	assert.Equal(t, 10.0, *gotOptions.Distance)
}

func TestFeedSearchZeroCoordinates(t *testing.T) {
	config := testConfig(t)
	f := &FeedConfig{Lat: "0", Lon: "0", Distance: "0"}

	var gotOptions *api.FeedSearchOptions
	mock := &MockAPIClient{
		SearchFeedsFunc: func(ctx *context.Context, options *api.FeedSearchOptions) ([]models.Feed, error) {
			gotOptions = options
			return nil, nil
		},
	}

	var err error
	captureOutput(func() {
		err = feedSearch(nil, config, f, mock)
	})

	assert.NoError(t, err)
	assert.NotNil(t, gotOptions.Latitude)
	assert.Equal(t, 0.0, *gotOptions.Latitude)
	assert.NotNil(t, gotOptions.Longitude)
	assert.Equal(t, 0.0, *gotOptions.Longitude)
	assert.NotNil(t, gotOptions.Distance)
	assert.Equal(t, 0.0, *gotOptions.Distance)
}

func TestFeedSearchOmittedGeoFlags(t *testing.T) {
	config := testConfig(t)
	f := &FeedConfig{Query: "weather"}

	var gotOptions *api.FeedSearchOptions
	mock := &MockAPIClient{
		SearchFeedsFunc: func(ctx *context.Context, options *api.FeedSearchOptions) ([]models.Feed, error) {
			gotOptions = options
			return nil, nil
		},
	}

	var err error
	captureOutput(func() {
		err = feedSearch(nil, config, f, mock)
	})

	assert.NoError(t, err)
	assert.Nil(t, gotOptions.Latitude)
	assert.Nil(t, gotOptions.Longitude)
	assert.Nil(t, gotOptions.Distance)
}

func TestFeedSearchBadLatitude(t *testing.T) {
	config := testConfig(t)
	f := &FeedConfig{Lat: "north"}

	err := feedSearch(nil, config, f, &MockAPIClient{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "lat")
}

func TestFeedInfo(t *testing.T) {
	config := testConfig(t)
	config.FeedID = "feed-1"
	f := &FeedConfig{}

	mock := &MockAPIClient{
		FetchFeedInfoFunc: func(ctx *context.Context, feedID string) (*models.Feed, error) {
			assert.Equal(t, "feed-1", feedID)
			return &models.Feed{
				ID:         "feed-1",
				Name:       "Weather Station",
				Status:     "live",
				Visibility: "public",
				Datastreams: []models.Datastream{
					{Name: "temperature", CurrentValue: "21.5", At: time.Now()},
				},
			}, nil
		},
	}

	var err error
	output := captureOutput(func() {
		err = feedInfo(nil, config, f, mock)
	})

	assert.NoError(t, err)
	assert.Contains(t, output, "Information for Feed feed-1")
	assert.Contains(t, output, "Weather Station")
	assert.Contains(t, output, "Datastreams")
	assert.Contains(t, output, "temperature")
}

func TestFeedInfoAsJSON(t *testing.T) {
	config := testConfig(t)
	config.FeedID = "feed-1"
	f := &FeedConfig{AsJSON: true}

	mock := &MockAPIClient{
		FetchFeedInfoFunc: func(ctx *context.Context, feedID string) (*models.Feed, error) {
			return &models.Feed{ID: "feed-1", Name: "Weather Station"}, nil
		},
	}

	var err error
	output := captureOutput(func() {
		err = feedInfo(nil, config, f, mock)
	})

	assert.NoError(t, err)
	assert.Contains(t, output, `"id": "feed-1"`)
	assert.Contains(t, output, `"name": "Weather Station"`)
}

func TestFeedAdd(t *testing.T) {
	config := testConfig(t)
	f := &FeedConfig{Name: "Greenhouse", Description: "South wall", Tags: "garden, indoor", Private: true}

	var gotOptions api.FeedCreateOptions
	mock := &MockAPIClient{
		CreateFeedFunc: func(ctx *context.Context, options api.FeedCreateOptions) (*models.Feed, error) {
			gotOptions = options
			return &models.Feed{ID: "feed-9", Name: options.Name}, nil
		},
	}

	var err error
	output := captureOutput(func() {
		err = feedAdd(nil, config, f, mock)
	})

	assert.NoError(t, err)
	assert.Equal(t, "Greenhouse", gotOptions.Name)
	assert.Equal(t, []string{"garden", "indoor"}, gotOptions.Tags)
	assert.Equal(t, "private", gotOptions.Visibility)
	assert.Contains(t, output, "Feed feed-9 created successfully")
}

func TestFeedPublish(t *testing.T) {
	config := testConfig(t)
	config.FeedID = "feed-1"
	f := &FeedConfig{Values: `{"temperature": [{"at": "2023-01-01T00:00:00Z", "value": "21"}]}`}

	var gotValues map[string][]models.Datapoint
	mock := &MockAPIClient{
		PublishDatapointsFunc: func(ctx *context.Context, feedID string, values map[string][]models.Datapoint) error {
			assert.Equal(t, "feed-1", feedID)
			gotValues = values
			return nil
		},
	}

	var err error
	output := captureOutput(func() {
		err = feedPublish(nil, config, f, mock)
	})

	assert.NoError(t, err)
	assert.Len(t, gotValues["temperature"], 1)
	assert.Equal(t, "21", gotValues["temperature"][0].Value)
	assert.Contains(t, output, "Published 1 datapoint(s) to 1 stream(s) of feed feed-1")
}

func TestFeedPublishInvalidJSON(t *testing.T) {
	config := testConfig(t)
	config.FeedID = "feed-1"
	f := &FeedConfig{Values: "not json"}

	err := feedPublish(nil, config, f, &MockAPIClient{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid values JSON")
}

func TestFeedLocationNotSet(t *testing.T) {
	config := testConfig(t)
	config.FeedID = "feed-1"

	mock := &MockAPIClient{
		FetchFeedLocationFunc: func(ctx *context.Context, feedID string) (*models.Location, error) {
			return nil, nil
		},
	}

	var err error
	output := captureOutput(func() {
		err = feedLocation(nil, config, mock)
	})

	assert.NoError(t, err)
	assert.Contains(t, output, "Feed feed-1 has no location set")
}

func TestFeedSetLocation(t *testing.T) {
	config := testConfig(t)
	config.FeedID = "feed-1"
	f := &FeedConfig{Latitude: 40.44, Longitude: -79.99, LocationName: "Roof", Exposure: "outdoor"}

	var gotLocation models.Location
	mock := &MockAPIClient{
		UpdateFeedLocationFunc: func(ctx *context.Context, feedID string, location models.Location) error {
			gotLocation = location
			return nil
		},
	}

	var err error
	output := captureOutput(func() {
		err = feedSetLocation(nil, config, f, mock)
	})

	assert.NoError(t, err)
	assert.Equal(t, 40.44, gotLocation.Latitude)
	assert.Equal(t, -79.99, gotLocation.Longitude)
	assert.Equal(t, "Roof", gotLocation.Name)
	assert.Equal(t, "outdoor", gotLocation.Exposure)
	assert.Contains(t, output, "Location of feed feed-1 updated")
}

func TestFeedLog(t *testing.T) {
	config := testConfig(t)
	config.FeedID = "feed-1"

	mock := &MockAPIClient{
		FetchFeedAccessLogFunc: func(ctx *context.Context, feedID string) ([]models.AccessLogEntry, error) {
			return []models.AccessLogEntry{
				{At: time.Now(), Method: "GET", Path: "/v2/feeds/feed-1", Status: 200, APIKey: "abc123"},
			}, nil
		},
	}

	var err error
	output := captureOutput(func() {
		err = feedLog(nil, config, mock)
	})

	assert.NoError(t, err)
	assert.Contains(t, output, "Access log for Feed feed-1")
	assert.Contains(t, output, "GET")
	assert.Contains(t, output, "/v2/feeds/feed-1")
}
