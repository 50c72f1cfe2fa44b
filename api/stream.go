package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/telemetrahq/telemetra-cli/context"
	"github.com/telemetrahq/telemetra-cli/models"
)

type StreamsResponse struct {
	Streams []models.Datastream `json:"data"`
}

type DatapointsResponse struct {
	Datapoints []models.Datapoint `json:"data"`
}

// StreamValuesOptions filter a stream's value history. A nil options value
// requests the default window with an empty query string.
type StreamValuesOptions struct {
	Start time.Time
	End   time.Time
	Limit int
}

func (o *StreamValuesOptions) values() url.Values {
	query := url.Values{}
	if o == nil {
		return query
	}
	if !o.Start.IsZero() {
		query.Set("start", o.Start.UTC().Format(time.RFC3339))
	}
	if !o.End.IsZero() {
		query.Set("end", o.End.UTC().Format(time.RFC3339))
	}
	if o.Limit > 0 {
		query.Set("limit", strconv.Itoa(o.Limit))
	}
	return query
}

type StreamUpsertOptions struct {
	Unit         *models.Unit `json:"unit,omitempty"`
	Tags         []string     `json:"tags,omitempty"`
	CurrentValue string       `json:"current_value,omitempty"`
	MinValue     string       `json:"min_value,omitempty"`
	MaxValue     string       `json:"max_value,omitempty"`
}

// BuildFetchStreams builds the HTTP request for listing a feed's streams
func BuildFetchStreams(ctx *context.Context, feedID string) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodGet,
		Path:       "/feeds/{feed}/datastreams",
		PathParams: map[string]string{"feed": feedID},
	})
}

// FetchStreams retrieves all datastreams under a feed
func FetchStreams(ctx *context.Context, feedID string) ([]models.Datastream, error) {
	req, err := BuildFetchStreams(ctx, feedID)
	if err != nil {
		return nil, fmt.Errorf("error building fetch streams request: %w", err)
	}

	var streamsResponse StreamsResponse
	if err := doRequest(req, &streamsResponse); err != nil {
		return nil, err
	}

	return streamsResponse.Streams, nil
}

// BuildFetchStreamInfo builds the HTTP request for fetching a single stream
func BuildFetchStreamInfo(ctx *context.Context, feedID, streamName string) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodGet,
		Path:       "/feeds/{feed}/datastreams/{stream}",
		PathParams: map[string]string{"feed": feedID, "stream": streamName},
	})
}

// FetchStreamInfo retrieves a single datastream
func FetchStreamInfo(ctx *context.Context, feedID, streamName string) (*models.Datastream, error) {
	req, err := BuildFetchStreamInfo(ctx, feedID, streamName)
	if err != nil {
		return nil, fmt.Errorf("error building fetch stream info request: %w", err)
	}

	var stream models.Datastream
	if err := doRequest(req, &stream); err != nil {
		return nil, err
	}

	return &stream, nil
}

// BuildFetchStreamValues builds the HTTP request for listing a stream's values
func BuildFetchStreamValues(ctx *context.Context, feedID, streamName string, options *StreamValuesOptions) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodGet,
		Path:       "/feeds/{feed}/datastreams/{stream}/datapoints",
		PathParams: map[string]string{"feed": feedID, "stream": streamName},
		Query:      options.values(),
	})
}

// FetchStreamValues retrieves a stream's datapoints, most recent first.
// Passing nil options requests the server's default window.
func FetchStreamValues(ctx *context.Context, feedID, streamName string, options *StreamValuesOptions) ([]models.Datapoint, error) {
	req, err := BuildFetchStreamValues(ctx, feedID, streamName, options)
	if err != nil {
		return nil, fmt.Errorf("error building fetch stream values request: %w", err)
	}

	var datapointsResponse DatapointsResponse
	if err := doRequest(req, &datapointsResponse); err != nil {
		return nil, err
	}

	return datapointsResponse.Datapoints, nil
}

// BuildUpsertStream builds the HTTP request for updating a stream
func BuildUpsertStream(ctx *context.Context, feedID, streamName string, options StreamUpsertOptions) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodPut,
		Path:       "/feeds/{feed}/datastreams/{stream}",
		PathParams: map[string]string{"feed": feedID, "stream": streamName},
		Body:       options,
	})
}

// UpsertStream updates a datastream's properties. The platform creates the
// stream when it does not exist yet.
func UpsertStream(ctx *context.Context, feedID, streamName string, options StreamUpsertOptions) (*models.Datastream, error) {
	req, err := BuildUpsertStream(ctx, feedID, streamName, options)
	if err != nil {
		return nil, fmt.Errorf("error building upsert stream request: %w", err)
	}

	var stream models.Datastream
	if err := doRequest(req, &stream); err != nil {
		return nil, err
	}

	return &stream, nil
}

// BuildRemoveStream builds the HTTP request for deleting a stream
func BuildRemoveStream(ctx *context.Context, feedID, streamName string) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodDelete,
		Path:       "/feeds/{feed}/datastreams/{stream}",
		PathParams: map[string]string{"feed": feedID, "stream": streamName},
	})
}

// RemoveStream deletes a datastream and all of its values
func RemoveStream(ctx *context.Context, feedID, streamName string) error {
	req, err := BuildRemoveStream(ctx, feedID, streamName)
	if err != nil {
		return fmt.Errorf("error building remove stream request: %w", err)
	}

	return doRequest(req, nil)
}
