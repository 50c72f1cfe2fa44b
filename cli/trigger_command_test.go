package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/telemetrahq/telemetra-cli/api"
	"github.com/telemetrahq/telemetra-cli/context"
	"github.com/telemetrahq/telemetra-cli/models"
)

func TestTriggerLs(t *testing.T) {
	config := testConfig(t)
	config.FeedID = "feed-1"

	mock := &MockAPIClient{
		FetchTriggersFunc: func(ctx *context.Context, feedID string) ([]models.Trigger, error) {
			assert.Equal(t, "feed-1", feedID)
			return []models.Trigger{
				{ID: "trg-1", StreamName: "temperature", Type: "gt", Threshold: 30, NotifyURL: "https://example.com/hook"},
			}, nil
		},
	}

	var err error
	output := captureOutput(func() {
		err = triggerLs(nil, config, mock)
	})

	assert.NoError(t, err)
	assert.Contains(t, output, "Triggers of Feed feed-1")
	assert.Contains(t, output, "trg-1")
	assert.Contains(t, output, "temperature")
}

func TestTriggerLsEmpty(t *testing.T) {
	config := testConfig(t)
	config.FeedID = "feed-1"

	mock := &MockAPIClient{
		FetchTriggersFunc: func(ctx *context.Context, feedID string) ([]models.Trigger, error) {
			return nil, nil
		},
	}

	var err error
	output := captureOutput(func() {
		err = triggerLs(nil, config, mock)
	})

	assert.NoError(t, err)
	assert.Contains(t, output, "No triggers defined")
}

func TestTriggerInfo(t *testing.T) {
	config := testConfig(t)
	config.FeedID = "feed-1"
	config.TriggerID = "trg-1"

	mock := &MockAPIClient{
		FetchTriggerInfoFunc: func(ctx *context.Context, feedID, triggerID string) (*models.Trigger, error) {
			assert.Equal(t, "trg-1", triggerID)
			return &models.Trigger{
				ID:         "trg-1",
				FeedID:     "feed-1",
				StreamName: "temperature",
				Type:       "gt",
				Threshold:  30,
				NotifyURL:  "https://example.com/hook",
				CreatedAt:  time.Now(),
			}, nil
		},
	}

	var err error
	output := captureOutput(func() {
		err = triggerInfo(nil, config, mock)
	})

	assert.NoError(t, err)
	assert.Contains(t, output, "Information for Trigger trg-1")
	assert.Contains(t, output, "https://example.com/hook")
}

func TestTriggerAdd(t *testing.T) {
	config := testConfig(t)
	config.FeedID = "feed-1"
	tc := &TriggerConfig{StreamName: "temperature", Type: "gt", Threshold: 30, NotifyURL: "https://example.com/hook"}

	var gotOptions api.TriggerCreateOptions
	mock := &MockAPIClient{
		CreateTriggerFunc: func(ctx *context.Context, feedID string, options api.TriggerCreateOptions) (*models.Trigger, error) {
			gotOptions = options
			return &models.Trigger{ID: "trg-9"}, nil
		},
	}

	var err error
	output := captureOutput(func() {
		err = triggerAdd(nil, config, tc, mock)
	})

	assert.NoError(t, err)
	assert.Equal(t, "temperature", gotOptions.StreamName)
	assert.Equal(t, "gt", gotOptions.Type)
	assert.Equal(t, 30.0, gotOptions.Threshold)
	assert.Contains(t, output, "Trigger trg-9 created successfully")
}

func TestTriggerTest(t *testing.T) {
	config := testConfig(t)
	config.FeedID = "feed-1"
	config.TriggerID = "trg-1"

	called := false
	mock := &MockAPIClient{
		TestTriggerFunc: func(ctx *context.Context, feedID, triggerID string) error {
			called = true
			assert.Equal(t, "feed-1", feedID)
			assert.Equal(t, "trg-1", triggerID)
			return nil
		},
	}

	var err error
	output := captureOutput(func() {
		err = triggerTest(nil, config, mock)
	})

	assert.NoError(t, err)
	assert.True(t, called)
	assert.Contains(t, output, "Test notification fired for trigger trg-1")
}

func TestTriggerRm(t *testing.T) {
	config := testConfig(t)
	config.FeedID = "feed-1"
	config.TriggerID = "trg-1"

	mock := &MockAPIClient{
		DeleteTriggerFunc: func(ctx *context.Context, feedID, triggerID string) error {
			return nil
		},
	}

	var err error
	output := captureOutput(func() {
		err = triggerRm(nil, config, mock)
	})

	assert.NoError(t, err)
	assert.Contains(t, output, "Trigger trg-1 has been deleted")
}

func TestTriggerAddError(t *testing.T) {
	config := testConfig(t)
	config.FeedID = "feed-1"
	tc := &TriggerConfig{StreamName: "temperature", Type: "gt", NotifyURL: "https://example.com/hook"}

	mock := &MockAPIClient{
		CreateTriggerFunc: func(ctx *context.Context, feedID string, options api.TriggerCreateOptions) (*models.Trigger, error) {
			return nil, errors.New("boom")
		},
	}

	err := triggerAdd(nil, config, tc, mock)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
