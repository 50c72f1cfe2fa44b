package api

import (
	"fmt"
	"net/http"

	"github.com/telemetrahq/telemetra-cli/context"
	"github.com/telemetrahq/telemetra-cli/models"
)

type TriggersResponse struct {
	Triggers []models.Trigger `json:"data"`
}

type TriggerCreateOptions struct {
	StreamName string  `json:"stream_name"`
	Type       string  `json:"type"` // gt, gte, lt, lte, eq, change, frozen, live
	Threshold  float64 `json:"threshold_value,omitempty"`
	NotifyURL  string  `json:"notify_url"`
}

type TriggerUpdateOptions struct {
	Type      string  `json:"type,omitempty"`
	Threshold float64 `json:"threshold_value,omitempty"`
	NotifyURL string  `json:"notify_url,omitempty"`
}

// BuildFetchTriggers builds the HTTP request for listing a feed's triggers
func BuildFetchTriggers(ctx *context.Context, feedID string) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodGet,
		Path:       "/feeds/{feed}/triggers",
		PathParams: map[string]string{"feed": feedID},
	})
}

// FetchTriggers retrieves all triggers defined on a feed
func FetchTriggers(ctx *context.Context, feedID string) ([]models.Trigger, error) {
	req, err := BuildFetchTriggers(ctx, feedID)
	if err != nil {
		return nil, fmt.Errorf("error building fetch triggers request: %w", err)
	}

	var triggersResponse TriggersResponse
	if err := doRequest(req, &triggersResponse); err != nil {
		return nil, err
	}

	return triggersResponse.Triggers, nil
}

// BuildFetchTriggerInfo builds the HTTP request for fetching a single trigger
func BuildFetchTriggerInfo(ctx *context.Context, feedID, triggerID string) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodGet,
		Path:       "/feeds/{feed}/triggers/{trigger}",
		PathParams: map[string]string{"feed": feedID, "trigger": triggerID},
	})
}

// FetchTriggerInfo retrieves a single trigger
func FetchTriggerInfo(ctx *context.Context, feedID, triggerID string) (*models.Trigger, error) {
	req, err := BuildFetchTriggerInfo(ctx, feedID, triggerID)
	if err != nil {
		return nil, fmt.Errorf("error building fetch trigger info request: %w", err)
	}

	var trigger models.Trigger
	if err := doRequest(req, &trigger); err != nil {
		return nil, err
	}

	return &trigger, nil
}

// BuildCreateTrigger builds the HTTP request for creating a trigger
func BuildCreateTrigger(ctx *context.Context, feedID string, options TriggerCreateOptions) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodPost,
		Path:       "/feeds/{feed}/triggers",
		PathParams: map[string]string{"feed": feedID},
		Body:       options,
	})
}

// CreateTrigger creates a new trigger on a feed
func CreateTrigger(ctx *context.Context, feedID string, options TriggerCreateOptions) (*models.Trigger, error) {
	req, err := BuildCreateTrigger(ctx, feedID, options)
	if err != nil {
		return nil, fmt.Errorf("error building create trigger request: %w", err)
	}

	var trigger models.Trigger
	if err := doRequest(req, &trigger); err != nil {
		return nil, err
	}

	return &trigger, nil
}

// BuildUpdateTrigger builds the HTTP request for updating a trigger
func BuildUpdateTrigger(ctx *context.Context, feedID, triggerID string, options TriggerUpdateOptions) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodPut,
		Path:       "/feeds/{feed}/triggers/{trigger}",
		PathParams: map[string]string{"feed": feedID, "trigger": triggerID},
		Body:       options,
	})
}

// UpdateTrigger updates an existing trigger
func UpdateTrigger(ctx *context.Context, feedID, triggerID string, options TriggerUpdateOptions) (*models.Trigger, error) {
	req, err := BuildUpdateTrigger(ctx, feedID, triggerID, options)
	if err != nil {
		return nil, fmt.Errorf("error building update trigger request: %w", err)
	}

	var trigger models.Trigger
	if err := doRequest(req, &trigger); err != nil {
		return nil, err
	}

	return &trigger, nil
}

// BuildTestTrigger builds the HTTP request for firing a test notification.
// The platform fires a synthetic notification on a bodyless POST to the
// trigger's own path.
func BuildTestTrigger(ctx *context.Context, feedID, triggerID string) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodPost,
		Path:       "/feeds/{feed}/triggers/{trigger}",
		PathParams: map[string]string{"feed": feedID, "trigger": triggerID},
	})
}

// TestTrigger fires a synthetic test notification for a trigger
func TestTrigger(ctx *context.Context, feedID, triggerID string) error {
	req, err := BuildTestTrigger(ctx, feedID, triggerID)
	if err != nil {
		return fmt.Errorf("error building test trigger request: %w", err)
	}

	return doRequest(req, nil)
}

// BuildDeleteTrigger builds the HTTP request for deleting a trigger
func BuildDeleteTrigger(ctx *context.Context, feedID, triggerID string) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodDelete,
		Path:       "/feeds/{feed}/triggers/{trigger}",
		PathParams: map[string]string{"feed": feedID, "trigger": triggerID},
	})
}

// DeleteTrigger deletes a trigger
func DeleteTrigger(ctx *context.Context, feedID, triggerID string) error {
	req, err := BuildDeleteTrigger(ctx, feedID, triggerID)
	if err != nil {
		return fmt.Errorf("error building delete trigger request: %w", err)
	}

	return doRequest(req, nil)
}
