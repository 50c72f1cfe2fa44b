package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/choria-io/fisk"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/telemetrahq/telemetra-cli/api"
	"github.com/telemetrahq/telemetra-cli/context"
)

type KeyConfig struct {
	Label     string
	Feed      string
	Private   bool
	ExpiresAt string
}

func AddKeyCommands(app *fisk.Application, config *Config, apiClient api.API) {
	key := app.Command("key", "Access key related commands").Alias("keys").Alias("k")

	addCheat("key", key)

	kc := &KeyConfig{}

	lsCmd := key.Command("ls", "List access keys").Action(func(c *fisk.ParseContext) error {
		return keyLs(c, config, kc, apiClient)
	})
	lsCmd.Flag("feed", "Only keys scoped to this feed").StringVar(&kc.Feed)

	infoCmd := key.Command("info", "Show one key").Action(func(c *fisk.ParseContext) error {
		return keyInfo(c, config, apiClient)
	})
	infoCmd.Arg("token", "The key token").Required().StringVar(&config.KeyToken)

	addCmd := key.Command("add", "Create a key").Action(func(c *fisk.ParseContext) error {
		return keyAdd(c, config, kc, apiClient)
	})
	addCmd.Flag("label", "Key label").Required().StringVar(&kc.Label)
	addCmd.Flag("feed", "Scope the key to a feed").StringVar(&kc.Feed)
	addCmd.Flag("private", "Allow access to private resources").BoolVar(&kc.Private)
	addCmd.Flag("expires", "Expiry timestamp (RFC 3339)").StringVar(&kc.ExpiresAt)

	editCmd := key.Command("edit", "Update a key").Action(func(c *fisk.ParseContext) error {
		return keyEdit(c, config, kc, apiClient)
	})
	editCmd.Arg("token", "The key token").Required().StringVar(&config.KeyToken)
	editCmd.Flag("label", "New label").StringVar(&kc.Label)
	editCmd.Flag("feed", "Scope the key to a feed").StringVar(&kc.Feed)

	rmCmd := key.Command("rm", "Revoke a key").Action(func(c *fisk.ParseContext) error {
		return keyRm(c, config, apiClient)
	})
	rmCmd.Arg("token", "The key token").Required().StringVar(&config.KeyToken)
}

func keyLs(_ *fisk.ParseContext, config *Config, kc *KeyConfig, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	var options *api.KeyListOptions
	if kc.Feed != "" {
		options = &api.KeyListOptions{Feed: kc.Feed}
	}

	if config.AsCurl {
		return printCurl(api.BuildFetchKeys(ctx, options))
	}

	keys, err := apiClient.FetchKeys(ctx, options)
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		fmt.Println(text.FgBlue.Sprint("No keys found"))
		return nil
	}

	columns := []table.Column{
		{Title: "Token", Width: 30},
		{Title: "Label", Width: 25},
		{Title: "Private", Width: 8},
		{Title: "Expires", Width: 25},
	}

	rows := []table.Row{}
	for _, key := range keys {
		rows = append(rows, table.Row{
			truncate(key.Token, 30),
			key.Label,
			fmt.Sprintf("%t", key.PrivateAccess),
			key.FormatExpiresAt(),
		})
	}

	t := NewTable(columns, rows, PrintableTable)
	fmt.Println("Keys")
	return t.Render()
}

func keyInfo(_ *fisk.ParseContext, config *Config, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	if config.AsCurl {
		return printCurl(api.BuildFetchKeyInfo(ctx, config.KeyToken))
	}

	key, err := apiClient.FetchKeyInfo(ctx, config.KeyToken)
	if err != nil {
		return err
	}

	rows := []table.Row{
		{"Token", key.Token},
		{"Label", key.Label},
		{"Private", fmt.Sprintf("%t", key.PrivateAccess)},
		{"Expires", key.FormatExpiresAt()},
	}
	for _, permission := range key.Permissions {
		scope := "all resources"
		if len(permission.Resources) > 0 {
			resource := permission.Resources[0]
			scope = fmt.Sprintf("feed %s", resource.FeedID)
			if resource.StreamName != "" {
				scope += fmt.Sprintf(", stream %s", resource.StreamName)
			}
		}
		rows = append(rows, table.Row{"Permission", fmt.Sprintf("%v on %s", permission.AccessMethods, scope)})
	}

	fmt.Printf("Information for Key %s\n", key.Label)
	return NewKVTable(rows).Render()
}

func keyAdd(_ *fisk.ParseContext, config *Config, kc *KeyConfig, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	options := api.KeyCreateOptions{
		Label:         kc.Label,
		Feed:          kc.Feed,
		PrivateAccess: kc.Private,
	}
	if kc.ExpiresAt != "" {
		expires, err := parseTimeFlag(kc.ExpiresAt, "expires")
		if err != nil {
			return err
		}
		options.ExpiresAt = &expires
	}

	if config.AsCurl {
		return printCurl(api.BuildCreateKey(ctx, options))
	}

	key, err := apiClient.CreateKey(ctx, options)
	if err != nil {
		return err
	}

	fmt.Print(text.FgGreen.Sprintf("Key %s created.\n", key.Label))
	fmt.Printf("Token: %s\n", key.Token)
	return nil
}

func keyEdit(_ *fisk.ParseContext, config *Config, kc *KeyConfig, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	options := api.KeyUpdateOptions{
		Label: kc.Label,
		Feed:  kc.Feed,
	}

	if config.AsCurl {
		return printCurl(api.BuildUpdateKey(ctx, config.KeyToken, options))
	}

	key, err := apiClient.UpdateKey(ctx, config.KeyToken, options)
	if err != nil {
		return err
	}

	fmt.Printf("Key %s updated.\n", key.Label)
	return nil
}

func keyRm(_ *fisk.ParseContext, config *Config, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	if config.AsCurl {
		return printCurl(api.BuildDeleteKey(ctx, config.KeyToken))
	}

	ok, err := askConfirmation(fmt.Sprintf("Revoke key %s?", config.KeyToken), false)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Aborted.")
		return nil
	}

	err = apiClient.DeleteKey(ctx, config.KeyToken)
	if err != nil {
		return err
	}

	fmt.Printf("Key %s has been revoked.\n", config.KeyToken)
	return nil
}
