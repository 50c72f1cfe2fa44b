package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/choria-io/fisk"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/telemetrahq/telemetra-cli/api"
	"github.com/telemetrahq/telemetra-cli/context"
)

type TriggerConfig struct {
	StreamName string
	Type       string
	Threshold  float64
	NotifyURL  string
}

func AddTriggerCommands(app *fisk.Application, config *Config, apiClient api.API) {
	trigger := app.Command("trigger", "Trigger related commands").Alias("trg").Alias("t")

	addCheat("trigger", trigger)

	tc := &TriggerConfig{}

	lsCmd := trigger.Command("ls", "List a feed's triggers").Action(func(c *fisk.ParseContext) error {
		return triggerLs(c, config, apiClient)
	})
	lsCmd.Arg("feed", "ID of the feed").StringVar(&config.FeedID)

	infoCmd := trigger.Command("info", "Show trigger info").Action(func(c *fisk.ParseContext) error {
		return triggerInfo(c, config, apiClient)
	})
	infoCmd.Arg("feed", "ID of the feed").Required().StringVar(&config.FeedID)
	infoCmd.Arg("trigger", "ID of the trigger").Required().StringVar(&config.TriggerID)

	addCmd := trigger.Command("add", "Create a trigger").Action(func(c *fisk.ParseContext) error {
		return triggerAdd(c, config, tc, apiClient)
	})
	addCmd.Arg("feed", "ID of the feed").Required().StringVar(&config.FeedID)
	addCmd.Flag("stream", "Stream the trigger watches").Required().StringVar(&tc.StreamName)
	addCmd.Flag("type", "Condition type").Required().EnumVar(&tc.Type, "gt", "gte", "lt", "lte", "eq", "change", "frozen", "live")
	addCmd.Flag("threshold", "Threshold value for comparison types").Float64Var(&tc.Threshold)
	addCmd.Flag("notify-url", "URL receiving the notification").Required().StringVar(&tc.NotifyURL)

	editCmd := trigger.Command("edit", "Update a trigger").Action(func(c *fisk.ParseContext) error {
		return triggerEdit(c, config, tc, apiClient)
	})
	editCmd.Arg("feed", "ID of the feed").Required().StringVar(&config.FeedID)
	editCmd.Arg("trigger", "ID of the trigger").Required().StringVar(&config.TriggerID)
	editCmd.Flag("type", "Condition type").EnumVar(&tc.Type, "gt", "gte", "lt", "lte", "eq", "change", "frozen", "live")
	editCmd.Flag("threshold", "Threshold value").Float64Var(&tc.Threshold)
	editCmd.Flag("notify-url", "URL receiving the notification").StringVar(&tc.NotifyURL)

	testCmd := trigger.Command("test", "Fire a synthetic test notification").Action(func(c *fisk.ParseContext) error {
		return triggerTest(c, config, apiClient)
	})
	testCmd.Arg("feed", "ID of the feed").Required().StringVar(&config.FeedID)
	testCmd.Arg("trigger", "ID of the trigger").Required().StringVar(&config.TriggerID)

	rmCmd := trigger.Command("rm", "Delete a trigger").Action(func(c *fisk.ParseContext) error {
		return triggerRm(c, config, apiClient)
	})
	rmCmd.Arg("feed", "ID of the feed").Required().StringVar(&config.FeedID)
	rmCmd.Arg("trigger", "ID of the trigger").Required().StringVar(&config.TriggerID)
}

func triggerLs(_ *fisk.ParseContext, config *Config, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	if config.FeedID == "" {
		config.FeedID, err = promptForFeed(ctx, apiClient)
		if err != nil {
			return err
		}
	}

	if config.AsCurl {
		return printCurl(api.BuildFetchTriggers(ctx, config.FeedID))
	}

	triggers, err := apiClient.FetchTriggers(ctx, config.FeedID)
	if err != nil {
		return err
	}

	if len(triggers) == 0 {
		fmt.Println(text.FgBlue.Sprint("No triggers defined"))
		return nil
	}

	columns := []table.Column{
		{Title: "ID", Width: 12},
		{Title: "Stream", Width: 20},
		{Title: "Type", Width: 8},
		{Title: "Threshold", Width: 10},
		{Title: "Notify URL", Width: 40},
	}

	rows := []table.Row{}
	for _, trigger := range triggers {
		rows = append(rows, table.Row{
			trigger.ID,
			trigger.StreamName,
			trigger.Type,
			fmt.Sprintf("%g", trigger.Threshold),
			truncate(trigger.NotifyURL, 40),
		})
	}

	t := NewTable(columns, rows, PrintableTable)
	fmt.Printf("Triggers of Feed %s\n", config.FeedID)
	return t.Render()
}

func triggerInfo(_ *fisk.ParseContext, config *Config, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	if config.AsCurl {
		return printCurl(api.BuildFetchTriggerInfo(ctx, config.FeedID, config.TriggerID))
	}

	trigger, err := apiClient.FetchTriggerInfo(ctx, config.FeedID, config.TriggerID)
	if err != nil {
		return err
	}

	rows := []table.Row{
		{"ID", trigger.ID},
		{"Feed", trigger.FeedID},
		{"Stream", trigger.StreamName},
		{"Type", trigger.Type},
		{"Threshold", fmt.Sprintf("%g", trigger.Threshold)},
		{"Notify URL", trigger.NotifyURL},
		{"Created", trigger.CreatedAt.Format(time.RFC3339)},
	}

	fmt.Printf("Information for Trigger %s\n", trigger.ID)
	return NewKVTable(rows).Render()
}

func triggerAdd(_ *fisk.ParseContext, config *Config, tc *TriggerConfig, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	options := api.TriggerCreateOptions{
		StreamName: tc.StreamName,
		Type:       tc.Type,
		Threshold:  tc.Threshold,
		NotifyURL:  tc.NotifyURL,
	}

	if config.AsCurl {
		return printCurl(api.BuildCreateTrigger(ctx, config.FeedID, options))
	}

	trigger, err := apiClient.CreateTrigger(ctx, config.FeedID, options)
	if err != nil {
		return err
	}

	fmt.Print(text.FgGreen.Sprintf("Trigger %s created successfully.\n", trigger.ID))
	return nil
}

func triggerEdit(_ *fisk.ParseContext, config *Config, tc *TriggerConfig, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	options := api.TriggerUpdateOptions{
		Type:      tc.Type,
		Threshold: tc.Threshold,
		NotifyURL: tc.NotifyURL,
	}

	if config.AsCurl {
		return printCurl(api.BuildUpdateTrigger(ctx, config.FeedID, config.TriggerID, options))
	}

	trigger, err := apiClient.UpdateTrigger(ctx, config.FeedID, config.TriggerID, options)
	if err != nil {
		return err
	}

	fmt.Printf("Trigger %s updated.\n", trigger.ID)
	return nil
}

func triggerTest(_ *fisk.ParseContext, config *Config, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	if config.AsCurl {
		return printCurl(api.BuildTestTrigger(ctx, config.FeedID, config.TriggerID))
	}

	err = apiClient.TestTrigger(ctx, config.FeedID, config.TriggerID)
	if err != nil {
		return err
	}

	fmt.Printf("Test notification fired for trigger %s.\n", config.TriggerID)
	return nil
}

func triggerRm(_ *fisk.ParseContext, config *Config, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	if config.AsCurl {
		return printCurl(api.BuildDeleteTrigger(ctx, config.FeedID, config.TriggerID))
	}

	err = apiClient.DeleteTrigger(ctx, config.FeedID, config.TriggerID)
	if err != nil {
		return err
	}

	fmt.Printf("Trigger %s has been deleted.\n", config.TriggerID)
	return nil
}
