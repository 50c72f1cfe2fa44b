package cli

import (
	"fmt"
	"time"

	"github.com/choria-io/fisk"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/telemetrahq/telemetra-cli/api"
	"github.com/telemetrahq/telemetra-cli/context"
)

func AddStatusCommand(app *fisk.Application, config *Config, apiClient api.API) {
	app.Command("status", "Check platform availability").Action(func(c *fisk.ParseContext) error {
		return statusCheck(c, config, apiClient)
	})
}

func statusCheck(_ *fisk.ParseContext, config *Config, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	if config.AsCurl {
		return printCurl(api.BuildFetchStatus(ctx))
	}

	serverURL, err := ctx.ServerURL()
	if err != nil {
		return err
	}

	status, err := apiClient.FetchStatus(ctx)
	if err != nil {
		return fmt.Errorf("platform unreachable at %s: %w", serverURL, err)
	}

	if status.Status == "ok" {
		fmt.Print(text.FgGreen.Sprintf("Platform is up at %s\n", serverURL))
	} else {
		fmt.Print(text.FgYellow.Sprintf("Platform reports status %q at %s\n", status.Status, serverURL))
	}
	if status.Version != "" {
		fmt.Printf("Version: %s\n", status.Version)
	}
	if !status.Time.IsZero() {
		fmt.Printf("Server time: %s\n", status.Time.Format(time.RFC3339))
	}
	return nil
}
