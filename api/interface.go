package api

import (
	"github.com/telemetrahq/telemetra-cli/context"
	"github.com/telemetrahq/telemetra-cli/models"
)

type API interface {
	// Feed methods
	SearchFeeds(ctx *context.Context, options *FeedSearchOptions) ([]models.Feed, error)
	FetchFeeds(ctx *context.Context) ([]models.Feed, error)
	FetchFeedInfo(ctx *context.Context, feedID string) (*models.Feed, error)
	CreateFeed(ctx *context.Context, options FeedCreateOptions) (*models.Feed, error)
	UpdateFeed(ctx *context.Context, feedID string, options FeedUpdateOptions) (*models.Feed, error)
	DeleteFeed(ctx *context.Context, feedID string) error
	FetchFeedAccessLog(ctx *context.Context, feedID string) ([]models.AccessLogEntry, error)
	FetchFeedLocation(ctx *context.Context, feedID string) (*models.Location, error)
	UpdateFeedLocation(ctx *context.Context, feedID string, location models.Location) error
	PublishDatapoints(ctx *context.Context, feedID string, values map[string][]models.Datapoint) error
	FetchFeedKeys(ctx *context.Context, feedID string) ([]models.Key, error)
	CreateFeedKey(ctx *context.Context, feedID string, options KeyCreateOptions) (*models.Key, error)
	UpdateFeedKey(ctx *context.Context, feedID, token string, options KeyUpdateOptions) (*models.Key, error)

	// Stream methods
	FetchStreams(ctx *context.Context, feedID string) ([]models.Datastream, error)
	FetchStreamInfo(ctx *context.Context, feedID, streamName string) (*models.Datastream, error)
	FetchStreamValues(ctx *context.Context, feedID, streamName string, options *StreamValuesOptions) ([]models.Datapoint, error)
	UpsertStream(ctx *context.Context, feedID, streamName string, options StreamUpsertOptions) (*models.Datastream, error)
	RemoveStream(ctx *context.Context, feedID, streamName string) error

	// Trigger methods
	FetchTriggers(ctx *context.Context, feedID string) ([]models.Trigger, error)
	FetchTriggerInfo(ctx *context.Context, feedID, triggerID string) (*models.Trigger, error)
	CreateTrigger(ctx *context.Context, feedID string, options TriggerCreateOptions) (*models.Trigger, error)
	UpdateTrigger(ctx *context.Context, feedID, triggerID string, options TriggerUpdateOptions) (*models.Trigger, error)
	TestTrigger(ctx *context.Context, feedID, triggerID string) error
	DeleteTrigger(ctx *context.Context, feedID, triggerID string) error

	// Key methods
	FetchKeys(ctx *context.Context, options *KeyListOptions) ([]models.Key, error)
	FetchKeyInfo(ctx *context.Context, token string) (*models.Key, error)
	CreateKey(ctx *context.Context, options KeyCreateOptions) (*models.Key, error)
	UpdateKey(ctx *context.Context, token string, options KeyUpdateOptions) (*models.Key, error)
	DeleteKey(ctx *context.Context, token string) error

	// Category methods (batches, blueprints, datasources)
	FetchCategoryFeeds(ctx *context.Context, category Category) ([]models.Feed, error)
	FetchCategoryFeedInfo(ctx *context.Context, category Category, id string) (*models.Feed, error)
	CreateCategoryFeed(ctx *context.Context, category Category, options FeedCreateOptions) (*models.Feed, error)
	UpdateCategoryFeed(ctx *context.Context, category Category, id string, options FeedUpdateOptions) (*models.Feed, error)
	DeleteCategoryFeed(ctx *context.Context, category Category, id string) error

	// Platform status
	FetchStatus(ctx *context.Context) (*models.Status, error)
}
