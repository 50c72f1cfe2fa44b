package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/telemetrahq/telemetra-cli/context"
	"github.com/telemetrahq/telemetra-cli/models"
)

type FeedsResponse struct {
	Feeds []models.Feed `json:"data"`
	Total int           `json:"total"`
}

type AccessLogResponse struct {
	Entries []models.AccessLogEntry `json:"data"`
}

// FeedSearchOptions are the optional feed search filters. Fields left at
// their zero value are omitted from the query string entirely.
type FeedSearchOptions struct {
	Query        string
	Type         string // blueprint, batch or datasource
	Tags         string // comma-separated
	Limit        int
	Page         int
	Latitude     *float64
	Longitude    *float64
	Distance     *float64
	DistanceUnit string // miles, mi or km
}

func (o *FeedSearchOptions) values() url.Values {
	query := url.Values{}
	if o == nil {
		return query
	}
	if o.Query != "" {
		query.Set("q", o.Query)
	}
	if o.Type != "" {
		query.Set("type", o.Type)
	}
	if o.Tags != "" {
		query.Set("tags", o.Tags)
	}
	if o.Limit > 0 {
		query.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Page > 0 {
		query.Set("page", strconv.Itoa(o.Page))
	}
	if o.Latitude != nil {
		query.Set("latitude", strconv.FormatFloat(*o.Latitude, 'f', -1, 64))
	}
	if o.Longitude != nil {
		query.Set("longitude", strconv.FormatFloat(*o.Longitude, 'f', -1, 64))
	}
	if o.Distance != nil {
		query.Set("distance", strconv.FormatFloat(*o.Distance, 'f', -1, 64))
	}
	if o.DistanceUnit != "" {
		query.Set("distance_unit", o.DistanceUnit)
	}
	return query
}

type FeedCreateOptions struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Visibility  string           `json:"visibility,omitempty"`
	Location    *models.Location `json:"location,omitempty"`
}

type FeedUpdateOptions struct {
	Name        string           `json:"name,omitempty"`
	Description string           `json:"description,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Visibility  string           `json:"visibility,omitempty"`
	Location    *models.Location `json:"location,omitempty"`
}

// BuildSearchFeeds builds the HTTP request for searching feeds
func BuildSearchFeeds(ctx *context.Context, options *FeedSearchOptions) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method: http.MethodGet,
		Path:   "/feeds",
		Query:  options.values(),
	})
}

// SearchFeeds retrieves feeds matching the given filters. A nil options
// value lists everything.
func SearchFeeds(ctx *context.Context, options *FeedSearchOptions) ([]models.Feed, error) {
	req, err := BuildSearchFeeds(ctx, options)
	if err != nil {
		return nil, fmt.Errorf("error building search feeds request: %w", err)
	}

	var feedsResponse FeedsResponse
	if err := doRequest(req, &feedsResponse); err != nil {
		return nil, err
	}

	return feedsResponse.Feeds, nil
}

// FetchFeeds retrieves all feeds. It is search with no filters.
func FetchFeeds(ctx *context.Context) ([]models.Feed, error) {
	return SearchFeeds(ctx, nil)
}

// BuildFetchFeedInfo builds the HTTP request for fetching a single feed
func BuildFetchFeedInfo(ctx *context.Context, feedID string) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodGet,
		Path:       "/feeds/{feed}",
		PathParams: map[string]string{"feed": feedID},
	})
}

// FetchFeedInfo retrieves a single feed
func FetchFeedInfo(ctx *context.Context, feedID string) (*models.Feed, error) {
	req, err := BuildFetchFeedInfo(ctx, feedID)
	if err != nil {
		return nil, fmt.Errorf("error building fetch feed info request: %w", err)
	}

	var feed models.Feed
	if err := doRequest(req, &feed); err != nil {
		return nil, err
	}

	return &feed, nil
}

// BuildCreateFeed builds the HTTP request for creating a feed
func BuildCreateFeed(ctx *context.Context, options FeedCreateOptions) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method: http.MethodPost,
		Path:   "/feeds",
		Body:   options,
	})
}

// CreateFeed creates a new feed
func CreateFeed(ctx *context.Context, options FeedCreateOptions) (*models.Feed, error) {
	req, err := BuildCreateFeed(ctx, options)
	if err != nil {
		return nil, fmt.Errorf("error building create feed request: %w", err)
	}

	var feed models.Feed
	if err := doRequest(req, &feed); err != nil {
		return nil, err
	}

	return &feed, nil
}

// BuildUpdateFeed builds the HTTP request for updating a feed
func BuildUpdateFeed(ctx *context.Context, feedID string, options FeedUpdateOptions) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodPut,
		Path:       "/feeds/{feed}",
		PathParams: map[string]string{"feed": feedID},
		Body:       options,
	})
}

// UpdateFeed updates an existing feed
func UpdateFeed(ctx *context.Context, feedID string, options FeedUpdateOptions) (*models.Feed, error) {
	req, err := BuildUpdateFeed(ctx, feedID, options)
	if err != nil {
		return nil, fmt.Errorf("error building update feed request: %w", err)
	}

	var feed models.Feed
	if err := doRequest(req, &feed); err != nil {
		return nil, err
	}

	return &feed, nil
}

// BuildDeleteFeed builds the HTTP request for deleting a feed
func BuildDeleteFeed(ctx *context.Context, feedID string) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodDelete,
		Path:       "/feeds/{feed}",
		PathParams: map[string]string{"feed": feedID},
	})
}

// DeleteFeed deletes a feed
func DeleteFeed(ctx *context.Context, feedID string) error {
	req, err := BuildDeleteFeed(ctx, feedID)
	if err != nil {
		return fmt.Errorf("error building delete feed request: %w", err)
	}

	return doRequest(req, nil)
}

// BuildFetchFeedAccessLog builds the HTTP request for fetching a feed's access log
func BuildFetchFeedAccessLog(ctx *context.Context, feedID string) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodGet,
		Path:       "/feeds/{feed}/log",
		PathParams: map[string]string{"feed": feedID},
	})
}

// FetchFeedAccessLog retrieves the access log entries for a feed
func FetchFeedAccessLog(ctx *context.Context, feedID string) ([]models.AccessLogEntry, error) {
	req, err := BuildFetchFeedAccessLog(ctx, feedID)
	if err != nil {
		return nil, fmt.Errorf("error building fetch access log request: %w", err)
	}

	var logResponse AccessLogResponse
	if err := doRequest(req, &logResponse); err != nil {
		return nil, err
	}

	return logResponse.Entries, nil
}

// BuildFetchFeedLocation builds the HTTP request for fetching a feed's location
func BuildFetchFeedLocation(ctx *context.Context, feedID string) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodGet,
		Path:       "/feeds/{feed}/location",
		PathParams: map[string]string{"feed": feedID},
	})
}

// FetchFeedLocation retrieves a feed's location. A feed with no location
// set answers 204, which is a valid result: both return values are nil.
func FetchFeedLocation(ctx *context.Context, feedID string) (*models.Location, error) {
	req, err := BuildFetchFeedLocation(ctx, feedID)
	if err != nil {
		return nil, fmt.Errorf("error building fetch feed location request: %w", err)
	}

	var location *models.Location
	if err := doRequest(req, &location); err != nil {
		return nil, err
	}

	return location, nil
}

// BuildUpdateFeedLocation builds the HTTP request for updating a feed's location
func BuildUpdateFeedLocation(ctx *context.Context, feedID string, location models.Location) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodPut,
		Path:       "/feeds/{feed}/location",
		PathParams: map[string]string{"feed": feedID},
		Body:       location,
	})
}

// UpdateFeedLocation replaces a feed's location
func UpdateFeedLocation(ctx *context.Context, feedID string, location models.Location) error {
	req, err := BuildUpdateFeedLocation(ctx, feedID, location)
	if err != nil {
		return fmt.Errorf("error building update feed location request: %w", err)
	}

	return doRequest(req, nil)
}

// BuildPublishDatapoints builds the HTTP request for publishing datapoints
// to multiple streams of a feed in one call.
func BuildPublishDatapoints(ctx *context.Context, feedID string, values map[string][]models.Datapoint) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodPost,
		Path:       "/feeds/{feed}",
		PathParams: map[string]string{"feed": feedID},
		Body:       map[string]map[string][]models.Datapoint{"values": values},
	})
}

// PublishDatapoints posts datapoints for one or more streams of a feed.
// The mapping goes from stream name to an ordered sequence of datapoints.
func PublishDatapoints(ctx *context.Context, feedID string, values map[string][]models.Datapoint) error {
	req, err := BuildPublishDatapoints(ctx, feedID, values)
	if err != nil {
		return fmt.Errorf("error building publish datapoints request: %w", err)
	}

	return doRequest(req, nil)
}

// FetchFeedKeys retrieves the keys scoped to a feed
func FetchFeedKeys(ctx *context.Context, feedID string) ([]models.Key, error) {
	return FetchKeys(ctx, &KeyListOptions{Feed: feedID})
}

// CreateFeedKey creates a key scoped to a feed. It delegates to CreateKey
// with the feed injected into the options.
func CreateFeedKey(ctx *context.Context, feedID string, options KeyCreateOptions) (*models.Key, error) {
	options.Feed = feedID
	return CreateKey(ctx, options)
}

// UpdateFeedKey updates a key scoped to a feed. It delegates to UpdateKey
// with the feed injected into the options.
func UpdateFeedKey(ctx *context.Context, feedID, token string, options KeyUpdateOptions) (*models.Key, error) {
	options.Feed = feedID
	return UpdateKey(ctx, token, options)
}
