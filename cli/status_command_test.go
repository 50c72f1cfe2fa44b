package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/telemetrahq/telemetra-cli/context"
	"github.com/telemetrahq/telemetra-cli/models"
)

func TestStatusCheckUp(t *testing.T) {
	config := testConfig(t)

	mock := &MockAPIClient{
		FetchStatusFunc: func(ctx *context.Context) (*models.Status, error) {
			return &models.Status{Status: "ok", Version: "2.4.1", Time: time.Now()}, nil
		},
	}

	var err error
	output := captureOutput(func() {
		err = statusCheck(nil, config, mock)
	})

	assert.NoError(t, err)
	assert.Contains(t, output, "Platform is up")
	assert.Contains(t, output, "Version: 2.4.1")
}

func TestStatusCheckDegraded(t *testing.T) {
	config := testConfig(t)

	mock := &MockAPIClient{
		FetchStatusFunc: func(ctx *context.Context) (*models.Status, error) {
			return &models.Status{Status: "degraded"}, nil
		},
	}

	var err error
	output := captureOutput(func() {
		err = statusCheck(nil, config, mock)
	})

	assert.NoError(t, err)
	assert.Contains(t, output, `status "degraded"`)
}

func TestStatusCheckUnreachable(t *testing.T) {
	config := testConfig(t)

	mock := &MockAPIClient{
		FetchStatusFunc: func(ctx *context.Context) (*models.Status, error) {
			return nil, errors.New("connection refused")
		},
	}

	err := statusCheck(nil, config, mock)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "platform unreachable")
}
