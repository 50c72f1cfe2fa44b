package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/choria-io/fisk"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/telemetrahq/telemetra-cli/api"
	"github.com/telemetrahq/telemetra-cli/context"
	"github.com/telemetrahq/telemetra-cli/models"
)

type FeedConfig struct {
	Query        string
	Type         string
	Tags         string
	Limit        int
	Page         int
	Lat          string
	Lon          string
	Distance     string
	DistanceUnit string

	Latitude  float64
	Longitude float64

	Name        string
	Description string
	Private     bool

	LocationName string
	Elevation    string
	Exposure     string
	Domain       string

	Values string
	AsJSON bool
}

func AddFeedCommands(app *fisk.Application, config *Config, apiClient api.API) {
	feed := app.Command("feed", "Feed related commands").Alias("feeds").Alias("f")

	addCheat("feed", feed)

	f := &FeedConfig{}

	feed.Command("ls", "List feeds").Action(func(c *fisk.ParseContext) error {
		return feedLs(c, config, apiClient)
	})

	searchCmd := feed.Command("search", "Search feeds").Action(func(c *fisk.ParseContext) error {
		return feedSearch(c, config, f, apiClient)
	})
	searchCmd.Flag("query", "Free-text search").Short('q').StringVar(&f.Query)
	searchCmd.Flag("type", "Feed type (blueprint, batch or datasource)").EnumVar(&f.Type, "blueprint", "batch", "datasource")
	searchCmd.Flag("tags", "Comma-separated tags").StringVar(&f.Tags)
	searchCmd.Flag("limit", "Maximum results per page").IntVar(&f.Limit)
	searchCmd.Flag("page", "Result page").IntVar(&f.Page)
	searchCmd.Flag("lat", "Latitude for location search").StringVar(&f.Lat)
	searchCmd.Flag("lon", "Longitude for location search").StringVar(&f.Lon)
	searchCmd.Flag("distance", "Search radius").StringVar(&f.Distance)
	searchCmd.Flag("distance-unit", "Radius unit (miles, mi or km)").EnumVar(&f.DistanceUnit, "miles", "mi", "km")

	infoCmd := feed.Command("info", "Show feed info").Action(func(c *fisk.ParseContext) error {
		return feedInfo(c, config, f, apiClient)
	})
	infoCmd.Arg("feed", "ID of the feed to show").StringVar(&config.FeedID)
	infoCmd.Flag("as-json", "Print feed as JSON").BoolVar(&f.AsJSON)

	addCmd := feed.Command("add", "Create a new feed").Action(func(c *fisk.ParseContext) error {
		return feedAdd(c, config, f, apiClient)
	})
	addCmd.Arg("name", "Name of the feed").Required().StringVar(&f.Name)
	addCmd.Flag("description", "Feed description").StringVar(&f.Description)
	addCmd.Flag("tags", "Comma-separated tags").StringVar(&f.Tags)
	addCmd.Flag("private", "Hide the feed from public search").BoolVar(&f.Private)

	editCmd := feed.Command("edit", "Update a feed").Action(func(c *fisk.ParseContext) error {
		return feedEdit(c, config, f, apiClient)
	})
	editCmd.Arg("feed", "ID of the feed to update").Required().StringVar(&config.FeedID)
	editCmd.Flag("name", "New name").StringVar(&f.Name)
	editCmd.Flag("description", "New description").StringVar(&f.Description)
	editCmd.Flag("tags", "Comma-separated tags").StringVar(&f.Tags)

	rmCmd := feed.Command("rm", "Delete a feed").Action(func(c *fisk.ParseContext) error {
		return feedRm(c, config, apiClient)
	})
	rmCmd.Arg("feed", "ID of the feed to delete").StringVar(&config.FeedID)

	logCmd := feed.Command("log", "Show a feed's access log").Action(func(c *fisk.ParseContext) error {
		return feedLog(c, config, apiClient)
	})
	logCmd.Arg("feed", "ID of the feed").StringVar(&config.FeedID)

	locationCmd := feed.Command("location", "Show a feed's location").Action(func(c *fisk.ParseContext) error {
		return feedLocation(c, config, apiClient)
	})
	locationCmd.Arg("feed", "ID of the feed").StringVar(&config.FeedID)

	setLocationCmd := feed.Command("set-location", "Set a feed's location").Action(func(c *fisk.ParseContext) error {
		return feedSetLocation(c, config, f, apiClient)
	})
	setLocationCmd.Arg("feed", "ID of the feed").Required().StringVar(&config.FeedID)
	setLocationCmd.Flag("lat", "Latitude").Required().Float64Var(&f.Latitude)
	setLocationCmd.Flag("lon", "Longitude").Required().Float64Var(&f.Longitude)
	setLocationCmd.Flag("name", "Location name").StringVar(&f.LocationName)
	setLocationCmd.Flag("ele", "Elevation").StringVar(&f.Elevation)
	setLocationCmd.Flag("exposure", "indoor or outdoor").EnumVar(&f.Exposure, "indoor", "outdoor")
	setLocationCmd.Flag("domain", "physical or virtual").EnumVar(&f.Domain, "physical", "virtual")

	publishCmd := feed.Command("publish", "Publish datapoints to one or more streams").Action(func(c *fisk.ParseContext) error {
		return feedPublish(c, config, f, apiClient)
	})
	publishCmd.Arg("feed", "ID of the feed").Required().StringVar(&config.FeedID)
	publishCmd.Arg("values", "JSON mapping of stream name to datapoints").Required().StringVar(&f.Values)
}

func feedLs(_ *fisk.ParseContext, config *Config, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	if config.AsCurl {
		return printCurl(api.BuildSearchFeeds(ctx, nil))
	}

	feeds, err := apiClient.FetchFeeds(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Feeds")
	return renderFeedsTable(feeds)
}

func feedSearch(_ *fisk.ParseContext, config *Config, f *FeedConfig, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	options := &api.FeedSearchOptions{
		Query:        f.Query,
		Type:         f.Type,
		Tags:         f.Tags,
		Limit:        f.Limit,
		Page:         f.Page,
		DistanceUnit: f.DistanceUnit,
	}

	// Geo flags arrive as strings so 0 stays distinguishable from unset.
	if f.Lat != "" {
		lat, err := parseFloatFlag(f.Lat, "lat")
		if err != nil {
			return err
		}
		options.Latitude = &lat
	}
	if f.Lon != "" {
		lon, err := parseFloatFlag(f.Lon, "lon")
		if err != nil {
			return err
		}
		options.Longitude = &lon
	}
	if f.Distance != "" {
		distance, err := parseFloatFlag(f.Distance, "distance")
		if err != nil {
			return err
		}
		options.Distance = &distance
	}

	if config.AsCurl {
		return printCurl(api.BuildSearchFeeds(ctx, options))
	}

	feeds, err := apiClient.SearchFeeds(ctx, options)
	if err != nil {
		return err
	}

	fmt.Println("Feeds")
	return renderFeedsTable(feeds)
}

func renderFeedsTable(feeds []models.Feed) error {
	if len(feeds) == 0 {
		fmt.Println(text.FgBlue.Sprint("No feeds found"))
		return nil
	}

	columns := []table.Column{
		{Title: "ID", Width: 12},
		{Title: "Name", Width: 30},
		{Title: "Status", Width: 8},
		{Title: "Visibility", Width: 10},
		{Title: "Tags", Width: 25},
		{Title: "Updated", Width: 20},
	}

	rows := []table.Row{}
	for _, feed := range feeds {
		rows = append(rows, table.Row{
			feed.ID,
			truncate(feed.Name, 30),
			feed.Status,
			feed.Visibility,
			truncate(formatTags(feed.Tags), 25),
			formatAge(feed.UpdatedAt),
		})
	}

	t := NewTable(columns, rows, PrintableTable)
	return t.Render()
}

func feedInfo(_ *fisk.ParseContext, config *Config, f *FeedConfig, apiClient api.API) error {
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
		return printCurl(api.BuildFetchFeedInfo(ctx, config.FeedID))
	}

	feed, err := apiClient.FetchFeedInfo(ctx, config.FeedID)
	if err != nil {
		return err
	}

	if f.AsJSON {
		data, err := json.MarshalIndent(feed, "", "  ")
		if err != nil {
			return fmt.Errorf("could not marshal feed: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	rows := []table.Row{
		{"ID", feed.ID},
		{"Name", feed.Name},
		{"Description", truncate(feed.Description, 50)},
		{"Status", feed.Status},
		{"Visibility", feed.Visibility},
		{"Tags", formatTags(feed.Tags)},
		{"Created", feed.CreatedAt.Format(time.RFC3339)},
		{"Updated", feed.UpdatedAt.Format(time.RFC3339)},
	}
	if feed.Location != nil {
		rows = append(rows, table.Row{"Location", fmt.Sprintf("%s (%f, %f)", feed.Location.Name, feed.Location.Latitude, feed.Location.Longitude)})
	}

	fmt.Printf("Information for Feed %s\n", feed.ID)
	if err := NewKVTable(rows).Render(); err != nil {
		return err
	}

	if len(feed.Datastreams) > 0 {
		fmt.Println("Datastreams")
		streamColumns := []table.Column{
			{Title: "Name", Width: 20},
			{Title: "Current Value", Width: 15},
			{Title: "At", Width: 25},
		}
		streamRows := []table.Row{}
		for _, stream := range feed.Datastreams {
			streamRows = append(streamRows, table.Row{
				stream.Name,
				stream.CurrentValue,
				stream.At.Format(time.RFC3339),
			})
		}
		return NewTable(streamColumns, streamRows, PrintableTable).Render()
	}

	return nil
}

func feedAdd(_ *fisk.ParseContext, config *Config, f *FeedConfig, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	options := api.FeedCreateOptions{
		Name:        f.Name,
		Description: f.Description,
		Tags:        splitTags(f.Tags),
	}
	if f.Private {
		options.Visibility = "private"
	}

	if config.AsCurl {
		return printCurl(api.BuildCreateFeed(ctx, options))
	}

	feed, err := apiClient.CreateFeed(ctx, options)
	if err != nil {
		return err
	}

	fmt.Print(text.FgGreen.Sprintf("Feed %s created successfully.\n", feed.ID))
	return nil
}

func feedEdit(_ *fisk.ParseContext, config *Config, f *FeedConfig, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	options := api.FeedUpdateOptions{
		Name:        f.Name,
		Description: f.Description,
		Tags:        splitTags(f.Tags),
	}

	if config.AsCurl {
		return printCurl(api.BuildUpdateFeed(ctx, config.FeedID, options))
	}

	feed, err := apiClient.UpdateFeed(ctx, config.FeedID, options)
	if err != nil {
		return err
	}

	fmt.Printf("Feed %s updated.\n", feed.ID)
	return nil
}

func feedRm(_ *fisk.ParseContext, config *Config, apiClient api.API) error {
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
		return printCurl(api.BuildDeleteFeed(ctx, config.FeedID))
	}

	ok, err := askConfirmation(fmt.Sprintf("Delete feed %s and all of its streams?", config.FeedID), false)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Aborted.")
		return nil
	}

	err = apiClient.DeleteFeed(ctx, config.FeedID)
	if err != nil {
		return err
	}

	fmt.Printf("Feed %s has been deleted.\n", config.FeedID)
	return nil
}

func feedLog(_ *fisk.ParseContext, config *Config, apiClient api.API) error {
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
		return printCurl(api.BuildFetchFeedAccessLog(ctx, config.FeedID))
	}

	entries, err := apiClient.FetchFeedAccessLog(ctx, config.FeedID)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println(text.FgBlue.Sprint("No access log entries"))
		return nil
	}

	columns := []table.Column{
		{Title: "At", Width: 25},
		{Title: "Method", Width: 8},
		{Title: "Path", Width: 40},
		{Title: "Status", Width: 8},
		{Title: "Key", Width: 15},
	}

	rows := []table.Row{}
	for _, entry := range entries {
		rows = append(rows, table.Row{
			entry.At.Format(time.RFC3339),
			entry.Method,
			truncate(entry.Path, 40),
			fmt.Sprintf("%d", entry.Status),
			truncate(entry.APIKey, 15),
		})
	}

	t := NewTable(columns, rows, PrintableTable)
	fmt.Printf("Access log for Feed %s\n", config.FeedID)
	return t.Render()
}

func feedLocation(_ *fisk.ParseContext, config *Config, apiClient api.API) error {
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
		return printCurl(api.BuildFetchFeedLocation(ctx, config.FeedID))
	}

	location, err := apiClient.FetchFeedLocation(ctx, config.FeedID)
	if err != nil {
		return err
	}

	if location == nil {
		fmt.Println(text.FgBlue.Sprintf("Feed %s has no location set", config.FeedID))
		return nil
	}

	rows := []table.Row{
		{"Name", location.Name},
		{"Latitude", fmt.Sprintf("%f", location.Latitude)},
		{"Longitude", fmt.Sprintf("%f", location.Longitude)},
		{"Elevation", location.Elevation},
		{"Exposure", location.Exposure},
		{"Domain", location.Domain},
		{"Disposition", location.Disposition},
	}

	fmt.Printf("Location of Feed %s\n", config.FeedID)
	return NewKVTable(rows).Render()
}

func feedSetLocation(_ *fisk.ParseContext, config *Config, f *FeedConfig, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	location := models.Location{
		Name:      f.LocationName,
		Latitude:  f.Latitude,
		Longitude: f.Longitude,
		Elevation: f.Elevation,
		Exposure:  f.Exposure,
		Domain:    f.Domain,
	}

	if config.AsCurl {
		return printCurl(api.BuildUpdateFeedLocation(ctx, config.FeedID, location))
	}

	err = apiClient.UpdateFeedLocation(ctx, config.FeedID, location)
	if err != nil {
		return err
	}

	fmt.Printf("Location of feed %s updated.\n", config.FeedID)
	return nil
}

func feedPublish(_ *fisk.ParseContext, config *Config, f *FeedConfig, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	var values map[string][]models.Datapoint
	err = json.Unmarshal([]byte(f.Values), &values)
	if err != nil {
		return fmt.Errorf("invalid values JSON: %w", err)
	}

	if config.AsCurl {
		return printCurl(api.BuildPublishDatapoints(ctx, config.FeedID, values))
	}

	err = apiClient.PublishDatapoints(ctx, config.FeedID, values)
	if err != nil {
		return err
	}

	total := 0
	for _, datapoints := range values {
		total += len(datapoints)
	}
	fmt.Printf("Published %d datapoint(s) to %d stream(s) of feed %s.\n", total, len(values), config.FeedID)
	return nil
}

func splitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	parts := strings.Split(tags, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// printCurl renders a built request as a curl command for --as-curl.
func printCurl(req *http.Request, err error) error {
	if err != nil {
		return err
	}
	curlCmd, err := formatCurl(req)
	if err != nil {
		return err
	}
	fmt.Println(curlCmd)
	return nil
}
