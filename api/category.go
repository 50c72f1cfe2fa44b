package api

import (
	"fmt"
	"net/http"

	"github.com/telemetrahq/telemetra-cli/context"
	"github.com/telemetrahq/telemetra-cli/models"
)

// Category is one of the feed-like resource collections the platform
// exposes alongside plain feeds. They share CRUD semantics and the feed
// wire shape, only the collection path differs.
type Category string

const (
	CategoryBatch      Category = "batches"
	CategoryBlueprint  Category = "blueprints"
	CategoryDatasource Category = "datasources"
)

// BuildFetchCategoryFeeds builds the HTTP request for listing a category's feeds
func BuildFetchCategoryFeeds(ctx *context.Context, category Category) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodGet,
		Path:       "/{category}",
		PathParams: map[string]string{"category": string(category)},
	})
}

// FetchCategoryFeeds lists the feeds of a category
func FetchCategoryFeeds(ctx *context.Context, category Category) ([]models.Feed, error) {
	req, err := BuildFetchCategoryFeeds(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("error building fetch %s request: %w", category, err)
	}

	var feedsResponse FeedsResponse
	if err := doRequest(req, &feedsResponse); err != nil {
		return nil, err
	}

	return feedsResponse.Feeds, nil
}

// BuildFetchCategoryFeedInfo builds the HTTP request for fetching one category feed
func BuildFetchCategoryFeedInfo(ctx *context.Context, category Category, id string) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodGet,
		Path:       "/{category}/{id}",
		PathParams: map[string]string{"category": string(category), "id": id},
	})
}

// FetchCategoryFeedInfo retrieves one feed of a category
func FetchCategoryFeedInfo(ctx *context.Context, category Category, id string) (*models.Feed, error) {
	req, err := BuildFetchCategoryFeedInfo(ctx, category, id)
	if err != nil {
		return nil, fmt.Errorf("error building fetch %s info request: %w", category, err)
	}

	var feed models.Feed
	if err := doRequest(req, &feed); err != nil {
		return nil, err
	}

	return &feed, nil
}

// BuildCreateCategoryFeed builds the HTTP request for creating a category feed
func BuildCreateCategoryFeed(ctx *context.Context, category Category, options FeedCreateOptions) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodPost,
		Path:       "/{category}",
		PathParams: map[string]string{"category": string(category)},
		Body:       options,
	})
}

// CreateCategoryFeed creates a feed under a category
func CreateCategoryFeed(ctx *context.Context, category Category, options FeedCreateOptions) (*models.Feed, error) {
	req, err := BuildCreateCategoryFeed(ctx, category, options)
	if err != nil {
		return nil, fmt.Errorf("error building create %s request: %w", category, err)
	}

	var feed models.Feed
	if err := doRequest(req, &feed); err != nil {
		return nil, err
	}

	return &feed, nil
}

// BuildUpdateCategoryFeed builds the HTTP request for updating a category feed
func BuildUpdateCategoryFeed(ctx *context.Context, category Category, id string, options FeedUpdateOptions) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodPut,
		Path:       "/{category}/{id}",
		PathParams: map[string]string{"category": string(category), "id": id},
		Body:       options,
	})
}

// UpdateCategoryFeed updates one feed of a category
func UpdateCategoryFeed(ctx *context.Context, category Category, id string, options FeedUpdateOptions) (*models.Feed, error) {
	req, err := BuildUpdateCategoryFeed(ctx, category, id, options)
	if err != nil {
		return nil, fmt.Errorf("error building update %s request: %w", category, err)
	}

	var feed models.Feed
	if err := doRequest(req, &feed); err != nil {
		return nil, err
	}

	return &feed, nil
}

// BuildDeleteCategoryFeed builds the HTTP request for deleting a category feed
func BuildDeleteCategoryFeed(ctx *context.Context, category Category, id string) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodDelete,
		Path:       "/{category}/{id}",
		PathParams: map[string]string{"category": string(category), "id": id},
	})
}

// DeleteCategoryFeed deletes one feed of a category
func DeleteCategoryFeed(ctx *context.Context, category Category, id string) error {
	req, err := BuildDeleteCategoryFeed(ctx, category, id)
	if err != nil {
		return fmt.Errorf("error building delete %s request: %w", category, err)
	}

	return doRequest(req, nil)
}

// Named facades for the three categories.

func FetchBatches(ctx *context.Context) ([]models.Feed, error) {
	return FetchCategoryFeeds(ctx, CategoryBatch)
}

func FetchBatchInfo(ctx *context.Context, id string) (*models.Feed, error) {
	return FetchCategoryFeedInfo(ctx, CategoryBatch, id)
}

func CreateBatch(ctx *context.Context, options FeedCreateOptions) (*models.Feed, error) {
	return CreateCategoryFeed(ctx, CategoryBatch, options)
}

func UpdateBatch(ctx *context.Context, id string, options FeedUpdateOptions) (*models.Feed, error) {
	return UpdateCategoryFeed(ctx, CategoryBatch, id, options)
}

func DeleteBatch(ctx *context.Context, id string) error {
	return DeleteCategoryFeed(ctx, CategoryBatch, id)
}

func FetchBlueprints(ctx *context.Context) ([]models.Feed, error) {
	return FetchCategoryFeeds(ctx, CategoryBlueprint)
}

func FetchBlueprintInfo(ctx *context.Context, id string) (*models.Feed, error) {
	return FetchCategoryFeedInfo(ctx, CategoryBlueprint, id)
}

func CreateBlueprint(ctx *context.Context, options FeedCreateOptions) (*models.Feed, error) {
	return CreateCategoryFeed(ctx, CategoryBlueprint, options)
}

func UpdateBlueprint(ctx *context.Context, id string, options FeedUpdateOptions) (*models.Feed, error) {
	return UpdateCategoryFeed(ctx, CategoryBlueprint, id, options)
}

func DeleteBlueprint(ctx *context.Context, id string) error {
	return DeleteCategoryFeed(ctx, CategoryBlueprint, id)
}

func FetchDatasources(ctx *context.Context) ([]models.Feed, error) {
	return FetchCategoryFeeds(ctx, CategoryDatasource)
}

func FetchDatasourceInfo(ctx *context.Context, id string) (*models.Feed, error) {
	return FetchCategoryFeedInfo(ctx, CategoryDatasource, id)
}

func CreateDatasource(ctx *context.Context, options FeedCreateOptions) (*models.Feed, error) {
	return CreateCategoryFeed(ctx, CategoryDatasource, options)
}

func UpdateDatasource(ctx *context.Context, id string, options FeedUpdateOptions) (*models.Feed, error) {
	return UpdateCategoryFeed(ctx, CategoryDatasource, id, options)
}

func DeleteDatasource(ctx *context.Context, id string) error {
	return DeleteCategoryFeed(ctx, CategoryDatasource, id)
}
