package api

import (
	"fmt"
	"net/http"

	"github.com/telemetrahq/telemetra-cli/context"
	"github.com/telemetrahq/telemetra-cli/models"
)

// BuildFetchStatus builds the HTTP request for the platform status check.
// The status endpoint lives outside the versioned path.
func BuildFetchStatus(ctx *context.Context) (*http.Request, error) {
	return buildRequest(ctx, requestSpec{
		Method:      http.MethodGet,
		Path:        "/status",
		Unversioned: true,
	})
}

// FetchStatus checks platform liveness and that the configured credentials
// are accepted.
func FetchStatus(ctx *context.Context) (*models.Status, error) {
	req, err := BuildFetchStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("error building fetch status request: %w", err)
	}

	var status models.Status
	if err := doRequest(req, &status); err != nil {
		return nil, err
	}

	return &status, nil
}
