package main

import (
	"log"
	"os"
	"runtime/debug"

	"github.com/choria-io/fisk"

	"github.com/telemetrahq/telemetra-cli/api"
	"github.com/telemetrahq/telemetra-cli/cli"
)

var (
	version = "development"
	config  = cli.Config{}
)

func main() {
	help := `Telemetra Utility

Manage feeds, datastreams, triggers and access keys on a Telemetra platform.

See 'telemetra cheat' for a quick cheatsheet of commands`

	tcli := fisk.New("telemetra", help)
	tcli.Author("Telemetra Authors <support@telemetra.io>")
	tcli.UsageWriter(os.Stdout)
	tcli.Version(getVersion())
	tcli.HelpFlag.Short('h')
	tcli.WithCheats().CheatCommand.Hidden()

	// Global flags
	tcli.Flag("context", "Use a specific context").StringVar(&config.ContextName)
	tcli.Flag("as-curl", "Print the request as a curl command instead of sending it").UnNegatableBoolVar(&config.AsCurl)

	apiClient := api.NewClient()

	cli.AddContextCommands(tcli, &config)
	cli.AddStatusCommand(tcli, &config, apiClient)
	cli.AddFeedCommands(tcli, &config, apiClient)
	cli.AddStreamCommands(tcli, &config, apiClient)
	cli.AddTriggerCommands(tcli, &config, apiClient)
	cli.AddKeyCommands(tcli, &config, apiClient)
	cli.AddCategoryCommands(tcli, &config, apiClient)

	log.SetFlags(log.Ltime)

	tcli.MustParseWithUsage(os.Args[1:])
}

func getVersion() string {
	if version != "development" {
		return version
	}

	nfo, ok := debug.ReadBuildInfo()
	if !ok || (nfo != nil && nfo.Main.Version == "") {
		return version
	}

	return nfo.Main.Version
}
