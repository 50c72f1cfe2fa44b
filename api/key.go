package api

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/telemetrahq/telemetra-cli/context"
	"github.com/telemetrahq/telemetra-cli/models"
)

type KeysResponse struct {
	Keys []models.Key `json:"data"`
}

// KeyListOptions filter the key listing. A nil value lists every key the
// calling credential can see.
type KeyListOptions struct {
	Feed string
}

func (o *KeyListOptions) values() url.Values {
	query := url.Values{}
	if o == nil {
		return query
	}
	if o.Feed != "" {
		query.Set("feed", o.Feed)
	}
	return query
}

type KeyCreateOptions struct {
	Label         string              `json:"label"`
	Feed          string              `json:"feed,omitempty"`
	PrivateAccess bool                `json:"private_access,omitempty"`
	ExpiresAt     *time.Time          `json:"expires_at,omitempty"`
	Permissions   []models.Permission `json:"permissions,omitempty"`
}

type KeyUpdateOptions struct {
	Label       string              `json:"label,omitempty"`
	Feed        string              `json:"feed,omitempty"`
	Permissions []models.Permission `json:"permissions,omitempty"`
}

// BuildFetchKeys builds the HTTP request for listing keys
func BuildFetchKeys(ctx *context.Context, options *KeyListOptions) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method: http.MethodGet,
		Path:   "/keys",
		Query:  options.values(),
	})
}

// FetchKeys retrieves access keys, optionally filtered by feed
func FetchKeys(ctx *context.Context, options *KeyListOptions) ([]models.Key, error) {
	req, err := BuildFetchKeys(ctx, options)
	if err != nil {
		return nil, fmt.Errorf("error building fetch keys request: %w", err)
	}

	var keysResponse KeysResponse
	if err := doRequest(req, &keysResponse); err != nil {
		return nil, err
	}

	return keysResponse.Keys, nil
}

// BuildFetchKeyInfo builds the HTTP request for fetching a single key
func BuildFetchKeyInfo(ctx *context.Context, token string) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodGet,
		Path:       "/keys/{key}",
		PathParams: map[string]string{"key": token},
	})
}

// FetchKeyInfo retrieves a single access key by token
func FetchKeyInfo(ctx *context.Context, token string) (*models.Key, error) {
	req, err := BuildFetchKeyInfo(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("error building fetch key info request: %w", err)
	}

	var key models.Key
	if err := doRequest(req, &key); err != nil {
		return nil, err
	}

	return &key, nil
}

// BuildCreateKey builds the HTTP request for creating a key
func BuildCreateKey(ctx *context.Context, options KeyCreateOptions) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method: http.MethodPost,
		Path:   "/keys",
		Body:   options,
	})
}

// CreateKey creates a new access key
func CreateKey(ctx *context.Context, options KeyCreateOptions) (*models.Key, error) {
	req, err := BuildCreateKey(ctx, options)
	if err != nil {
		return nil, fmt.Errorf("error building create key request: %w", err)
	}

	var key models.Key
	if err := doRequest(req, &key); err != nil {
		return nil, err
	}

	return &key, nil
}

// BuildUpdateKey builds the HTTP request for updating a key
func BuildUpdateKey(ctx *context.Context, token string, options KeyUpdateOptions) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodPut,
		Path:       "/keys/{key}",
		PathParams: map[string]string{"key": token},
		Body:       options,
	})
}

// UpdateKey updates an existing access key
func UpdateKey(ctx *context.Context, token string, options KeyUpdateOptions) (*models.Key, error) {
	req, err := BuildUpdateKey(ctx, token, options)
	if err != nil {
		return nil, fmt.Errorf("error building update key request: %w", err)
	}

	var key models.Key
	if err := doRequest(req, &key); err != nil {
		return nil, err
	}

	return &key, nil
}

// BuildDeleteKey builds the HTTP request for deleting a key
func BuildDeleteKey(ctx *context.Context, token string) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:     http.MethodDelete,
		Path:       "/keys/{key}",
		PathParams: map[string]string{"key": token},
	})
}

// DeleteKey revokes an access key
func DeleteKey(ctx *context.Context, token string) error {
	req, err := BuildDeleteKey(ctx, token)
	if err != nil {
		return fmt.Errorf("error building delete key request: %w", err)
	}

	return doRequest(req, nil)
}
