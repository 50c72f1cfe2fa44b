package cli

import (
	"fmt"

	"github.com/choria-io/fisk"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/telemetrahq/telemetra-cli/api"
	"github.com/telemetrahq/telemetra-cli/context"
	"github.com/telemetrahq/telemetra-cli/models"
)

type CategoryConfig struct {
	ID          string
	Name        string
	Description string
	Tags        string
	Private     bool
}

// AddCategoryCommands registers the batch, blueprint and datasource command
// groups. The three collections share CRUD semantics, so one builder covers
// them all.
func AddCategoryCommands(app *fisk.Application, config *Config, apiClient api.API) {
	groups := []struct {
		name     string
		help     string
		category api.Category
	}{
		{"batch", "Batch related commands", api.CategoryBatch},
		{"blueprint", "Blueprint related commands", api.CategoryBlueprint},
		{"datasource", "Datasource related commands", api.CategoryDatasource},
	}

	for _, group := range groups {
		category := group.category
		cmd := app.Command(group.name, group.help)
		cc := &CategoryConfig{}

		cmd.Command("ls", fmt.Sprintf("List %s", category)).Action(func(c *fisk.ParseContext) error {
			return categoryLs(c, config, category, apiClient)
		})

		infoCmd := cmd.Command("info", fmt.Sprintf("Show one of the %s", category)).Action(func(c *fisk.ParseContext) error {
			return categoryInfo(c, config, category, cc, apiClient)
		})
		infoCmd.Arg("id", "Resource ID").Required().StringVar(&cc.ID)

		addCmd := cmd.Command("add", fmt.Sprintf("Create a %s", group.name)).Action(func(c *fisk.ParseContext) error {
			return categoryAdd(c, config, category, cc, apiClient)
		})
		addCmd.Arg("name", "Resource name").Required().StringVar(&cc.Name)
		addCmd.Flag("description", "Resource description").StringVar(&cc.Description)
		addCmd.Flag("tags", "Comma-separated tags").StringVar(&cc.Tags)
		addCmd.Flag("private", "Hide from public search").BoolVar(&cc.Private)

		editCmd := cmd.Command("edit", fmt.Sprintf("Update a %s", group.name)).Action(func(c *fisk.ParseContext) error {
			return categoryEdit(c, config, category, cc, apiClient)
		})
		editCmd.Arg("id", "Resource ID").Required().StringVar(&cc.ID)
		editCmd.Flag("name", "New name").StringVar(&cc.Name)
		editCmd.Flag("description", "New description").StringVar(&cc.Description)
		editCmd.Flag("tags", "Comma-separated tags").StringVar(&cc.Tags)

		rmCmd := cmd.Command("rm", fmt.Sprintf("Delete a %s", group.name)).Action(func(c *fisk.ParseContext) error {
			return categoryRm(c, config, category, cc, apiClient)
		})
		rmCmd.Arg("id", "Resource ID").Required().StringVar(&cc.ID)
	}
}

func categoryLs(_ *fisk.ParseContext, config *Config, category api.Category, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	if config.AsCurl {
		return printCurl(api.BuildFetchCategoryFeeds(ctx, category))
	}

	feeds, err := apiClient.FetchCategoryFeeds(ctx, category)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", capitalize(string(category)))
	return renderFeedsTable(feeds)
}

func categoryInfo(_ *fisk.ParseContext, config *Config, category api.Category, cc *CategoryConfig, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	if config.AsCurl {
		return printCurl(api.BuildFetchCategoryFeedInfo(ctx, category, cc.ID))
	}

	feed, err := apiClient.FetchCategoryFeedInfo(ctx, category, cc.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Information for %s\n", feed.ID)
	return renderFeedsTable([]models.Feed{*feed})
}

func categoryAdd(_ *fisk.ParseContext, config *Config, category api.Category, cc *CategoryConfig, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	options := api.FeedCreateOptions{
		Name:        cc.Name,
		Description: cc.Description,
		Tags:        splitTags(cc.Tags),
	}
	if cc.Private {
		options.Visibility = "private"
	}

	if config.AsCurl {
		return printCurl(api.BuildCreateCategoryFeed(ctx, category, options))
	}

	feed, err := apiClient.CreateCategoryFeed(ctx, category, options)
	if err != nil {
		return err
	}

	fmt.Print(text.FgGreen.Sprintf("%s created with ID %s.\n", feed.Name, feed.ID))
	return nil
}

func categoryEdit(_ *fisk.ParseContext, config *Config, category api.Category, cc *CategoryConfig, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	options := api.FeedUpdateOptions{
		Name:        cc.Name,
		Description: cc.Description,
		Tags:        splitTags(cc.Tags),
	}

	if config.AsCurl {
		return printCurl(api.BuildUpdateCategoryFeed(ctx, category, cc.ID, options))
	}

	feed, err := apiClient.UpdateCategoryFeed(ctx, category, cc.ID, options)
	if err != nil {
		return err
	}

	fmt.Printf("%s updated.\n", feed.ID)
	return nil
}

func categoryRm(_ *fisk.ParseContext, config *Config, category api.Category, cc *CategoryConfig, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	if config.AsCurl {
		return printCurl(api.BuildDeleteCategoryFeed(ctx, category, cc.ID))
	}

	ok, err := askConfirmation(fmt.Sprintf("Delete %s?", cc.ID), false)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Aborted.")
		return nil
	}

	err = apiClient.DeleteCategoryFeed(ctx, category, cc.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s has been deleted.\n", cc.ID)
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-('a'-'A')) + s[1:]
}
