package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/bubbles/table"
	"github.com/choria-io/fisk"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/telemetrahq/telemetra-cli/context"
)

type ctxConfig struct {
	Name        string
	Description string
	Hostname    string
	TLS         bool
	APIKey      string
	SetDefault  bool
}

func AddContextCommands(app *fisk.Application, config *Config) {
	ctx := app.Command("context", "Manage platform contexts").Alias("ctx")

	addCheat("context", ctx)

	c := &ctxConfig{}

	addCmd := ctx.Command("add", "Add a new context").Alias("create").Action(func(pc *fisk.ParseContext) error {
		return ctxAdd(pc, c)
	})
	addCmd.Arg("name", "Context name").StringVar(&c.Name)
	addCmd.Flag("description", "Context description").StringVar(&c.Description)
	addCmd.Flag("hostname", "Platform hostname").StringVar(&c.Hostname)
	addCmd.Flag("tls", "Use TLS").Default("true").BoolVar(&c.TLS)
	addCmd.Flag("api-key", "API key").StringVar(&c.APIKey)
	addCmd.Flag("set-default", "Make this the default context").BoolVar(&c.SetDefault)

	ctx.Command("ls", "List contexts").Action(ctxLs)

	infoCmd := ctx.Command("info", "Show context details").Action(func(pc *fisk.ParseContext) error {
		return ctxInfo(pc, c)
	})
	infoCmd.Arg("name", "Context name").StringVar(&c.Name)

	selectCmd := ctx.Command("select", "Select the default context").Action(func(pc *fisk.ParseContext) error {
		return ctxSelect(pc, c)
	})
	selectCmd.Arg("name", "Context name").StringVar(&c.Name)

	rmCmd := ctx.Command("rm", "Remove a context").Action(func(pc *fisk.ParseContext) error {
		return ctxRm(pc, c)
	})
	rmCmd.Arg("name", "Context name").Required().StringVar(&c.Name)
}

func ctxAdd(_ *fisk.ParseContext, c *ctxConfig) error {
	if c.Name == "" {
		err := survey.AskOne(&survey.Input{Message: "Context name:"}, &c.Name, survey.WithValidator(survey.Required))
		if err != nil {
			return err
		}
	}

	if c.Hostname == "" {
		err := survey.AskOne(&survey.Input{
			Message: "Platform hostname:",
			Default: "api.telemetra.io",
		}, &c.Hostname)
		if err != nil {
			return err
		}
	}

	if c.APIKey == "" {
		err := survey.AskOne(&survey.Password{Message: "API key:"}, &c.APIKey)
		if err != nil {
			return err
		}
	}

	newCtx := context.Context{
		Name:        c.Name,
		Description: c.Description,
		Hostname:    c.Hostname,
		TLS:         c.TLS,
		APIKey:      c.APIKey,
	}

	err := context.SaveContext(newCtx)
	if err != nil {
		return fmt.Errorf("could not save context: %w", err)
	}

	fmt.Print(text.FgGreen.Sprintf("Context %s created.\n", c.Name))

	if c.SetDefault {
		err = context.SetDefaultContext(c.Name)
		if err != nil {
			return fmt.Errorf("could not set default context: %w", err)
		}
		fmt.Printf("Context %s is now the default.\n", c.Name)
	}

	return nil
}

func ctxLs(_ *fisk.ParseContext) error {
	contexts, err := context.ListContexts()
	if err != nil {
		return fmt.Errorf("could not list contexts: %w", err)
	}

	if len(contexts) == 0 {
		fmt.Println(text.FgBlue.Sprint("No contexts defined"))
		return nil
	}

	columns := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Hostname", Width: 30},
		{Title: "TLS", Width: 5},
		{Title: "Default", Width: 8},
	}

	rows := []table.Row{}
	for _, ctx := range contexts {
		def := ""
		if ctx.Default {
			def = "*"
		}
		rows = append(rows, table.Row{ctx.Name, ctx.Hostname, fmt.Sprintf("%t", ctx.TLS), def})
	}

	t := NewTable(columns, rows, PrintableTable)
	fmt.Println("Contexts")
	return t.Render()
}

func ctxInfo(_ *fisk.ParseContext, c *ctxConfig) error {
	ctx, err := context.LoadContext(c.Name)
	if err != nil {
		return fmt.Errorf("could not load context: %w", err)
	}

	rows := []table.Row{
		{"Name", ctx.Name},
		{"Description", ctx.Description},
		{"Hostname", ctx.Hostname},
		{"TLS", fmt.Sprintf("%t", ctx.TLS)},
		{"API key", maskKey(ctx.APIKey)},
		{"Default", fmt.Sprintf("%t", ctx.Default)},
	}

	fmt.Printf("Information for Context %s\n", ctx.Name)
	return NewKVTable(rows).Render()
}

func ctxSelect(_ *fisk.ParseContext, c *ctxConfig) error {
	if c.Name == "" {
		contexts, err := context.ListContexts()
		if err != nil {
			return fmt.Errorf("could not list contexts: %w", err)
		}
		if len(contexts) == 0 {
			return fmt.Errorf("no contexts defined")
		}

		names := make([]string, 0, len(contexts))
		for _, ctx := range contexts {
			names = append(names, ctx.Name)
		}

		err = survey.AskOne(&survey.Select{
			Message: "Select a context:",
			Options: names,
		}, &c.Name)
		if err != nil {
			return err
		}
	}

	err := context.SetDefaultContext(c.Name)
	if err != nil {
		return fmt.Errorf("could not set default context: %w", err)
	}

	fmt.Printf("Context %s is now the default.\n", c.Name)
	return nil
}

func ctxRm(_ *fisk.ParseContext, c *ctxConfig) error {
	ok, err := askConfirmation(fmt.Sprintf("Remove context %s?", c.Name), false)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Aborted.")
		return nil
	}

	err = context.RemoveContext(c.Name)
	if err != nil {
		return fmt.Errorf("could not remove context: %w", err)
	}

	fmt.Printf("Context %s has been removed.\n", c.Name)
	return nil
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "********"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
