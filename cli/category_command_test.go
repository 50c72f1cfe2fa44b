package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/telemetrahq/telemetra-cli/api"
	"github.com/telemetrahq/telemetra-cli/context"
	"github.com/telemetrahq/telemetra-cli/models"
)

func TestCategoryLs(t *testing.T) {
	config := testConfig(t)

	var gotCategory api.Category
	mock := &MockAPIClient{
		FetchCategoryFeedsFunc: func(ctx *context.Context, category api.Category) ([]models.Feed, error) {
			gotCategory = category
			return []models.Feed{{ID: "bp-1", Name: "Air Quality Node"}}, nil
		},
	}

	var err error
	output := captureOutput(func() {
		err = categoryLs(nil, config, api.CategoryBlueprint, mock)
	})

	assert.NoError(t, err)
	assert.Equal(t, api.CategoryBlueprint, gotCategory)
	assert.Contains(t, output, "Blueprints")
	assert.Contains(t, output, "bp-1")
}

func TestCategoryAdd(t *testing.T) {
	config := testConfig(t)
	cc := &CategoryConfig{Name: "Nightly Export", Description: "Batch of sensor rollups"}

	var gotCategory api.Category
	var gotOptions api.FeedCreateOptions
	mock := &MockAPIClient{
		CreateCategoryFeedFunc: func(ctx *context.Context, category api.Category, options api.FeedCreateOptions) (*models.Feed, error) {
			gotCategory = category
			gotOptions = options
			return &models.Feed{ID: "batch-7", Name: options.Name}, nil
		},
	}

	var err error
	output := captureOutput(func() {
		err = categoryAdd(nil, config, api.CategoryBatch, cc, mock)
	})

	assert.NoError(t, err)
	assert.Equal(t, api.CategoryBatch, gotCategory)
	assert.Equal(t, "Nightly Export", gotOptions.Name)
	assert.Contains(t, output, "Nightly Export created with ID batch-7")
}

func TestCategoryEdit(t *testing.T) {
	config := testConfig(t)
	cc := &CategoryConfig{ID: "ds-3", Name: "Renamed Source"}

	mock := &MockAPIClient{
		UpdateCategoryFeedFunc: func(ctx *context.Context, category api.Category, id string, options api.FeedUpdateOptions) (*models.Feed, error) {
			assert.Equal(t, api.CategoryDatasource, category)
			assert.Equal(t, "ds-3", id)
			assert.Equal(t, "Renamed Source", options.Name)
			return &models.Feed{ID: id, Name: options.Name}, nil
		},
	}

	var err error
	output := captureOutput(func() {
		err = categoryEdit(nil, config, api.CategoryDatasource, cc, mock)
	})

	assert.NoError(t, err)
	assert.Contains(t, output, "ds-3 updated")
}
