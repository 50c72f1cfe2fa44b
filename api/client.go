package api

import (
	"github.com/telemetrahq/telemetra-cli/context"
	"github.com/telemetrahq/telemetra-cli/models"
)

type Client struct{}

func NewClient() *Client {
	return &Client{}
}

// Implement Feed methods
func (c *Client) SearchFeeds(ctx *context.Context, options *FeedSearchOptions) ([]models.Feed, error) {
	return SearchFeeds(ctx, options)
}

func (c *Client) FetchFeeds(ctx *context.Context) ([]models.Feed, error) {
	return FetchFeeds(ctx)
}

func (c *Client) FetchFeedInfo(ctx *context.Context, feedID string) (*models.Feed, error) {
	return FetchFeedInfo(ctx, feedID)
}

func (c *Client) CreateFeed(ctx *context.Context, options FeedCreateOptions) (*models.Feed, error) {
	return CreateFeed(ctx, options)
}

func (c *Client) UpdateFeed(ctx *context.Context, feedID string, options FeedUpdateOptions) (*models.Feed, error) {
	return UpdateFeed(ctx, feedID, options)
}

func (c *Client) DeleteFeed(ctx *context.Context, feedID string) error {
	return DeleteFeed(ctx, feedID)
}

func (c *Client) FetchFeedAccessLog(ctx *context.Context, feedID string) ([]models.AccessLogEntry, error) {
	return FetchFeedAccessLog(ctx, feedID)
}

func (c *Client) FetchFeedLocation(ctx *context.Context, feedID string) (*models.Location, error) {
	return FetchFeedLocation(ctx, feedID)
}

func (c *Client) UpdateFeedLocation(ctx *context.Context, feedID string, location models.Location) error {
	return UpdateFeedLocation(ctx, feedID, location)
}

func (c *Client) PublishDatapoints(ctx *context.Context, feedID string, values map[string][]models.Datapoint) error {
	return PublishDatapoints(ctx, feedID, values)
}

func (c *Client) FetchFeedKeys(ctx *context.Context, feedID string) ([]models.Key, error) {
	return FetchFeedKeys(ctx, feedID)
}

func (c *Client) CreateFeedKey(ctx *context.Context, feedID string, options KeyCreateOptions) (*models.Key, error) {
	return CreateFeedKey(ctx, feedID, options)
}

func (c *Client) UpdateFeedKey(ctx *context.Context, feedID, token string, options KeyUpdateOptions) (*models.Key, error) {
	return UpdateFeedKey(ctx, feedID, token, options)
}

// Implement Stream methods
func (c *Client) FetchStreams(ctx *context.Context, feedID string) ([]models.Datastream, error) {
	return FetchStreams(ctx, feedID)
}

func (c *Client) FetchStreamInfo(ctx *context.Context, feedID, streamName string) (*models.Datastream, error) {
	return FetchStreamInfo(ctx, feedID, streamName)
}

func (c *Client) FetchStreamValues(ctx *context.Context, feedID, streamName string, options *StreamValuesOptions) ([]models.Datapoint, error) {
	return FetchStreamValues(ctx, feedID, streamName, options)
}

func (c *Client) UpsertStream(ctx *context.Context, feedID, streamName string, options StreamUpsertOptions) (*models.Datastream, error) {
	return UpsertStream(ctx, feedID, streamName, options)
}

func (c *Client) RemoveStream(ctx *context.Context, feedID, streamName string) error {
	return RemoveStream(ctx, feedID, streamName)
}

// Implement Trigger methods
func (c *Client) FetchTriggers(ctx *context.Context, feedID string) ([]models.Trigger, error) {
	return FetchTriggers(ctx, feedID)
}

func (c *Client) FetchTriggerInfo(ctx *context.Context, feedID, triggerID string) (*models.Trigger, error) {
	return FetchTriggerInfo(ctx, feedID, triggerID)
}

func (c *Client) CreateTrigger(ctx *context.Context, feedID string, options TriggerCreateOptions) (*models.Trigger, error) {
	return CreateTrigger(ctx, feedID, options)
}

func (c *Client) UpdateTrigger(ctx *context.Context, feedID, triggerID string, options TriggerUpdateOptions) (*models.Trigger, error) {
	return UpdateTrigger(ctx, feedID, triggerID, options)
}

func (c *Client) TestTrigger(ctx *context.Context, feedID, triggerID string) error {
	return TestTrigger(ctx, feedID, triggerID)
}

func (c *Client) DeleteTrigger(ctx *context.Context, feedID, triggerID string) error {
	return DeleteTrigger(ctx, feedID, triggerID)
}

// Implement Key methods
func (c *Client) FetchKeys(ctx *context.Context, options *KeyListOptions) ([]models.Key, error) {
	return FetchKeys(ctx, options)
}

func (c *Client) FetchKeyInfo(ctx *context.Context, token string) (*models.Key, error) {
	return FetchKeyInfo(ctx, token)
}

func (c *Client) CreateKey(ctx *context.Context, options KeyCreateOptions) (*models.Key, error) {
	return CreateKey(ctx, options)
}

func (c *Client) UpdateKey(ctx *context.Context, token string, options KeyUpdateOptions) (*models.Key, error) {
	return UpdateKey(ctx, token, options)
}

func (c *Client) DeleteKey(ctx *context.Context, token string) error {
	return DeleteKey(ctx, token)
}

// Implement Category methods
func (c *Client) FetchCategoryFeeds(ctx *context.Context, category Category) ([]models.Feed, error) {
	return FetchCategoryFeeds(ctx, category)
}

func (c *Client) FetchCategoryFeedInfo(ctx *context.Context, category Category, id string) (*models.Feed, error) {
	return FetchCategoryFeedInfo(ctx, category, id)
}

func (c *Client) CreateCategoryFeed(ctx *context.Context, category Category, options FeedCreateOptions) (*models.Feed, error) {
	return CreateCategoryFeed(ctx, category, options)
}

func (c *Client) UpdateCategoryFeed(ctx *context.Context, category Category, id string, options FeedUpdateOptions) (*models.Feed, error) {
	return UpdateCategoryFeed(ctx, category, id, options)
}

func (c *Client) DeleteCategoryFeed(ctx *context.Context, category Category, id string) error {
	return DeleteCategoryFeed(ctx, category, id)
}

// Implement status method
func (c *Client) FetchStatus(ctx *context.Context) (*models.Status, error) {
	return FetchStatus(ctx)
}
