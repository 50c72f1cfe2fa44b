package cli

import (
	"github.com/telemetrahq/telemetra-cli/api"
	"github.com/telemetrahq/telemetra-cli/context"
	"github.com/telemetrahq/telemetra-cli/models"
)

// MockAPIClient implements api.API for command tests. Unset funcs return
// zero values.
type MockAPIClient struct {
	SearchFeedsFunc        func(ctx *context.Context, options *api.FeedSearchOptions) ([]models.Feed, error)
	FetchFeedsFunc         func(ctx *context.Context) ([]models.Feed, error)
	FetchFeedInfoFunc      func(ctx *context.Context, feedID string) (*models.Feed, error)
	CreateFeedFunc         func(ctx *context.Context, options api.FeedCreateOptions) (*models.Feed, error)
	UpdateFeedFunc         func(ctx *context.Context, feedID string, options api.FeedUpdateOptions) (*models.Feed, error)
	DeleteFeedFunc         func(ctx *context.Context, feedID string) error
	FetchFeedAccessLogFunc func(ctx *context.Context, feedID string) ([]models.AccessLogEntry, error)
	FetchFeedLocationFunc  func(ctx *context.Context, feedID string) (*models.Location, error)
	UpdateFeedLocationFunc func(ctx *context.Context, feedID string, location models.Location) error
	PublishDatapointsFunc  func(ctx *context.Context, feedID string, values map[string][]models.Datapoint) error
	FetchFeedKeysFunc      func(ctx *context.Context, feedID string) ([]models.Key, error)
	CreateFeedKeyFunc      func(ctx *context.Context, feedID string, options api.KeyCreateOptions) (*models.Key, error)
	UpdateFeedKeyFunc      func(ctx *context.Context, feedID, token string, options api.KeyUpdateOptions) (*models.Key, error)

	FetchStreamsFunc      func(ctx *context.Context, feedID string) ([]models.Datastream, error)
	FetchStreamInfoFunc   func(ctx *context.Context, feedID, streamName string) (*models.Datastream, error)
	FetchStreamValuesFunc func(ctx *context.Context, feedID, streamName string, options *api.StreamValuesOptions) ([]models.Datapoint, error)
	UpsertStreamFunc      func(ctx *context.Context, feedID, streamName string, options api.StreamUpsertOptions) (*models.Datastream, error)
	RemoveStreamFunc      func(ctx *context.Context, feedID, streamName string) error

	FetchTriggersFunc    func(ctx *context.Context, feedID string) ([]models.Trigger, error)
	FetchTriggerInfoFunc func(ctx *context.Context, feedID, triggerID string) (*models.Trigger, error)
	CreateTriggerFunc    func(ctx *context.Context, feedID string, options api.TriggerCreateOptions) (*models.Trigger, error)
	UpdateTriggerFunc    func(ctx *context.Context, feedID, triggerID string, options api.TriggerUpdateOptions) (*models.Trigger, error)
	TestTriggerFunc      func(ctx *context.Context, feedID, triggerID string) error
	DeleteTriggerFunc    func(ctx *context.Context, feedID, triggerID string) error

	FetchKeysFunc    func(ctx *context.Context, options *api.KeyListOptions) ([]models.Key, error)
	FetchKeyInfoFunc func(ctx *context.Context, token string) (*models.Key, error)
	CreateKeyFunc    func(ctx *context.Context, options api.KeyCreateOptions) (*models.Key, error)
	UpdateKeyFunc    func(ctx *context.Context, token string, options api.KeyUpdateOptions) (*models.Key, error)
	DeleteKeyFunc    func(ctx *context.Context, token string) error

	FetchCategoryFeedsFunc    func(ctx *context.Context, category api.Category) ([]models.Feed, error)
	FetchCategoryFeedInfoFunc func(ctx *context.Context, category api.Category, id string) (*models.Feed, error)
	CreateCategoryFeedFunc    func(ctx *context.Context, category api.Category, options api.FeedCreateOptions) (*models.Feed, error)
	UpdateCategoryFeedFunc    func(ctx *context.Context, category api.Category, id string, options api.FeedUpdateOptions) (*models.Feed, error)
	DeleteCategoryFeedFunc    func(ctx *context.Context, category api.Category, id string) error

	FetchStatusFunc func(ctx *context.Context) (*models.Status, error)
}

func (m *MockAPIClient) SearchFeeds(ctx *context.Context, options *api.FeedSearchOptions) ([]models.Feed, error) {
	if m.SearchFeedsFunc != nil {
		return m.SearchFeedsFunc(ctx, options)
	}
	return nil, nil
}

func (m *MockAPIClient) FetchFeeds(ctx *context.Context) ([]models.Feed, error) {
	if m.FetchFeedsFunc != nil {
		return m.FetchFeedsFunc(ctx)
	}
	return nil, nil
}

func (m *MockAPIClient) FetchFeedInfo(ctx *context.Context, feedID string) (*models.Feed, error) {
	if m.FetchFeedInfoFunc != nil {
		return m.FetchFeedInfoFunc(ctx, feedID)
	}
	return nil, nil
}

func (m *MockAPIClient) CreateFeed(ctx *context.Context, options api.FeedCreateOptions) (*models.Feed, error) {
	if m.CreateFeedFunc != nil {
		return m.CreateFeedFunc(ctx, options)
	}
	return nil, nil
}

func (m *MockAPIClient) UpdateFeed(ctx *context.Context, feedID string, options api.FeedUpdateOptions) (*models.Feed, error) {
	if m.UpdateFeedFunc != nil {
		return m.UpdateFeedFunc(ctx, feedID, options)
	}
	return nil, nil
}

func (m *MockAPIClient) DeleteFeed(ctx *context.Context, feedID string) error {
	if m.DeleteFeedFunc != nil {
		return m.DeleteFeedFunc(ctx, feedID)
	}
	return nil
}

func (m *MockAPIClient) FetchFeedAccessLog(ctx *context.Context, feedID string) ([]models.AccessLogEntry, error) {
	if m.FetchFeedAccessLogFunc != nil {
		return m.FetchFeedAccessLogFunc(ctx, feedID)
	}
	return nil, nil
}

func (m *MockAPIClient) FetchFeedLocation(ctx *context.Context, feedID string) (*models.Location, error) {
	if m.FetchFeedLocationFunc != nil {
		return m.FetchFeedLocationFunc(ctx, feedID)
	}
	return nil, nil
}

func (m *MockAPIClient) UpdateFeedLocation(ctx *context.Context, feedID string, location models.Location) error {
	if m.UpdateFeedLocationFunc != nil {
		return m.UpdateFeedLocationFunc(ctx, feedID, location)
	}
	return nil
}

func (m *MockAPIClient) PublishDatapoints(ctx *context.Context, feedID string, values map[string][]models.Datapoint) error {
	if m.PublishDatapointsFunc != nil {
		return m.PublishDatapointsFunc(ctx, feedID, values)
	}
	return nil
}

func (m *MockAPIClient) FetchFeedKeys(ctx *context.Context, feedID string) ([]models.Key, error) {
	if m.FetchFeedKeysFunc != nil {
		return m.FetchFeedKeysFunc(ctx, feedID)
	}
	return nil, nil
}

func (m *MockAPIClient) CreateFeedKey(ctx *context.Context, feedID string, options api.KeyCreateOptions) (*models.Key, error) {
	if m.CreateFeedKeyFunc != nil {
		return m.CreateFeedKeyFunc(ctx, feedID, options)
	}
	return nil, nil
}

func (m *MockAPIClient) UpdateFeedKey(ctx *context.Context, feedID, token string, options api.KeyUpdateOptions) (*models.Key, error) {
	if m.UpdateFeedKeyFunc != nil {
		return m.UpdateFeedKeyFunc(ctx, feedID, token, options)
	}
	return nil, nil
}

func (m *MockAPIClient) FetchStreams(ctx *context.Context, feedID string) ([]models.Datastream, error) {
	if m.FetchStreamsFunc != nil {
		return m.FetchStreamsFunc(ctx, feedID)
	}
	return nil, nil
}

func (m *MockAPIClient) FetchStreamInfo(ctx *context.Context, feedID, streamName string) (*models.Datastream, error) {
	if m.FetchStreamInfoFunc != nil {
		return m.FetchStreamInfoFunc(ctx, feedID, streamName)
	}
	return nil, nil
}

func (m *MockAPIClient) FetchStreamValues(ctx *context.Context, feedID, streamName string, options *api.StreamValuesOptions) ([]models.Datapoint, error) {
	if m.FetchStreamValuesFunc != nil {
		return m.FetchStreamValuesFunc(ctx, feedID, streamName, options)
	}
	return nil, nil
}

func (m *MockAPIClient) UpsertStream(ctx *context.Context, feedID, streamName string, options api.StreamUpsertOptions) (*models.Datastream, error) {
	if m.UpsertStreamFunc != nil {
		return m.UpsertStreamFunc(ctx, feedID, streamName, options)
	}
	return nil, nil
}

func (m *MockAPIClient) RemoveStream(ctx *context.Context, feedID, streamName string) error {
	if m.RemoveStreamFunc != nil {
		return m.RemoveStreamFunc(ctx, feedID, streamName)
	}
	return nil
}

func (m *MockAPIClient) FetchTriggers(ctx *context.Context, feedID string) ([]models.Trigger, error) {
	if m.FetchTriggersFunc != nil {
		return m.FetchTriggersFunc(ctx, feedID)
	}
	return nil, nil
}

func (m *MockAPIClient) FetchTriggerInfo(ctx *context.Context, feedID, triggerID string) (*models.Trigger, error) {
	if m.FetchTriggerInfoFunc != nil {
		return m.FetchTriggerInfoFunc(ctx, feedID, triggerID)
	}
	return nil, nil
}

func (m *MockAPIClient) CreateTrigger(ctx *context.Context, feedID string, options api.TriggerCreateOptions) (*models.Trigger, error) {
	if m.CreateTriggerFunc != nil {
		return m.CreateTriggerFunc(ctx, feedID, options)
	}
	return nil, nil
}

func (m *MockAPIClient) UpdateTrigger(ctx *context.Context, feedID, triggerID string, options api.TriggerUpdateOptions) (*models.Trigger, error) {
	if m.UpdateTriggerFunc != nil {
		return m.UpdateTriggerFunc(ctx, feedID, triggerID, options)
	}
	return nil, nil
}

func (m *MockAPIClient) TestTrigger(ctx *context.Context, feedID, triggerID string) error {
	if m.TestTriggerFunc != nil {
		return m.TestTriggerFunc(ctx, feedID, triggerID)
	}
	return nil
}

func (m *MockAPIClient) DeleteTrigger(ctx *context.Context, feedID, triggerID string) error {
	if m.DeleteTriggerFunc != nil {
		return m.DeleteTriggerFunc(ctx, feedID, triggerID)
	}
	return nil
}

func (m *MockAPIClient) FetchKeys(ctx *context.Context, options *api.KeyListOptions) ([]models.Key, error) {
	if m.FetchKeysFunc != nil {
		return m.FetchKeysFunc(ctx, options)
	}
	return nil, nil
}

func (m *MockAPIClient) FetchKeyInfo(ctx *context.Context, token string) (*models.Key, error) {
	if m.FetchKeyInfoFunc != nil {
		return m.FetchKeyInfoFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockAPIClient) CreateKey(ctx *context.Context, options api.KeyCreateOptions) (*models.Key, error) {
	if m.CreateKeyFunc != nil {
		return m.CreateKeyFunc(ctx, options)
	}
	return nil, nil
}

func (m *MockAPIClient) UpdateKey(ctx *context.Context, token string, options api.KeyUpdateOptions) (*models.Key, error) {
	if m.UpdateKeyFunc != nil {
		return m.UpdateKeyFunc(ctx, token, options)
	}
	return nil, nil
}

func (m *MockAPIClient) DeleteKey(ctx *context.Context, token string) error {
	if m.DeleteKeyFunc != nil {
		return m.DeleteKeyFunc(ctx, token)
	}
	return nil
}

func (m *MockAPIClient) FetchCategoryFeeds(ctx *context.Context, category api.Category) ([]models.Feed, error) {
	if m.FetchCategoryFeedsFunc != nil {
		return m.FetchCategoryFeedsFunc(ctx, category)
	}
	return nil, nil
}

func (m *MockAPIClient) FetchCategoryFeedInfo(ctx *context.Context, category api.Category, id string) (*models.Feed, error) {
	if m.FetchCategoryFeedInfoFunc != nil {
		return m.FetchCategoryFeedInfoFunc(ctx, category, id)
	}
	return nil, nil
}

func (m *MockAPIClient) CreateCategoryFeed(ctx *context.Context, category api.Category, options api.FeedCreateOptions) (*models.Feed, error) {
	if m.CreateCategoryFeedFunc != nil {
		return m.CreateCategoryFeedFunc(ctx, category, options)
	}
	return nil, nil
}

func (m *MockAPIClient) UpdateCategoryFeed(ctx *context.Context, category api.Category, id string, options api.FeedUpdateOptions) (*models.Feed, error) {
	if m.UpdateCategoryFeedFunc != nil {
		return m.UpdateCategoryFeedFunc(ctx, category, id, options)
	}
	return nil, nil
}

func (m *MockAPIClient) DeleteCategoryFeed(ctx *context.Context, category api.Category, id string) error {
	if m.DeleteCategoryFeedFunc != nil {
		return m.DeleteCategoryFeedFunc(ctx, category, id)
	}
	return nil
}

func (m *MockAPIClient) FetchStatus(ctx *context.Context) (*models.Status, error) {
	if m.FetchStatusFunc != nil {
		return m.FetchStatusFunc(ctx)
	}
	return nil, nil
}
