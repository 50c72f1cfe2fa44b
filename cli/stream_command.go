package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/choria-io/fisk"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/jpillora/backoff"

	"github.com/telemetrahq/telemetra-cli/api"
	"github.com/telemetrahq/telemetra-cli/context"
	"github.com/telemetrahq/telemetra-cli/models"
)

type StreamConfig struct {
	Start        string
	End          string
	Limit        int
	UnitLabel    string
	UnitSymbol   string
	CurrentValue string
	Tags         string
	Interval     int
}

func AddStreamCommands(app *fisk.Application, config *Config, apiClient api.API) {
	stream := app.Command("stream", "Datastream related commands").Alias("str").Alias("s")

	addCheat("stream", stream)

	s := &StreamConfig{}

	lsCmd := stream.Command("ls", "List a feed's streams").Action(func(c *fisk.ParseContext) error {
		return streamLs(c, config, apiClient)
	})
	lsCmd.Arg("feed", "ID of the feed").StringVar(&config.FeedID)

	infoCmd := stream.Command("info", "Show stream info").Action(func(c *fisk.ParseContext) error {
		return streamInfo(c, config, apiClient)
	})
	infoCmd.Arg("feed", "ID of the feed").Required().StringVar(&config.FeedID)
	infoCmd.Arg("stream", "Name of the stream").Required().StringVar(&config.StreamName)

	valuesCmd := stream.Command("values", "List a stream's values, most recent first").Action(func(c *fisk.ParseContext) error {
		return streamValues(c, config, s, apiClient)
	})
	valuesCmd.Arg("feed", "ID of the feed").Required().StringVar(&config.FeedID)
	valuesCmd.Arg("stream", "Name of the stream").Required().StringVar(&config.StreamName)
	valuesCmd.Flag("start", "Window start (RFC 3339)").StringVar(&s.Start)
	valuesCmd.Flag("end", "Window end (RFC 3339)").StringVar(&s.End)
	valuesCmd.Flag("limit", "Maximum number of values").IntVar(&s.Limit)

	upsertCmd := stream.Command("upsert", "Create or update a stream").Action(func(c *fisk.ParseContext) error {
		return streamUpsert(c, config, s, apiClient)
	})
	upsertCmd.Arg("feed", "ID of the feed").Required().StringVar(&config.FeedID)
	upsertCmd.Arg("stream", "Name of the stream").Required().StringVar(&config.StreamName)
	upsertCmd.Flag("unit-label", "Unit label, e.g. Celsius").StringVar(&s.UnitLabel)
	upsertCmd.Flag("unit-symbol", "Unit symbol, e.g. C").StringVar(&s.UnitSymbol)
	upsertCmd.Flag("current-value", "Current value").StringVar(&s.CurrentValue)
	upsertCmd.Flag("tags", "Comma-separated tags").StringVar(&s.Tags)

	rmCmd := stream.Command("rm", "Delete a stream and all of its values").Action(func(c *fisk.ParseContext) error {
		return streamRm(c, config, apiClient)
	})
	rmCmd.Arg("feed", "ID of the feed").Required().StringVar(&config.FeedID)
	rmCmd.Arg("stream", "Name of the stream").Required().StringVar(&config.StreamName)

	tailCmd := stream.Command("tail", "Live view of a stream's most recent values").Action(func(c *fisk.ParseContext) error {
		return streamTail(c, config, s, apiClient)
	})
	tailCmd.Arg("feed", "ID of the feed").Required().StringVar(&config.FeedID)
	tailCmd.Arg("stream", "Name of the stream").Required().StringVar(&config.StreamName)
	tailCmd.Flag("interval", "Poll interval in seconds").Default("2").IntVar(&s.Interval)
	tailCmd.Flag("limit", "Number of values to show").Default("15").IntVar(&s.Limit)
}

func streamLs(_ *fisk.ParseContext, config *Config, apiClient api.API) error {
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
		return printCurl(api.BuildFetchStreams(ctx, config.FeedID))
	}

	streams, err := apiClient.FetchStreams(ctx, config.FeedID)
	if err != nil {
		return err
	}

	if len(streams) == 0 {
		fmt.Println(text.FgBlue.Sprint("No streams defined"))
		return nil
	}

	columns := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Current Value", Width: 15},
		{Title: "Unit", Width: 12},
		{Title: "Tags", Width: 25},
		{Title: "Updated", Width: 20},
	}

	rows := []table.Row{}
	for _, stream := range streams {
		unit := ""
		if stream.Unit != nil {
			unit = stream.Unit.Symbol
			if unit == "" {
				unit = stream.Unit.Label
			}
		}
		rows = append(rows, table.Row{
			stream.Name,
			stream.CurrentValue,
			unit,
			truncate(formatTags(stream.Tags), 25),
			formatAge(stream.At),
		})
	}

	t := NewTable(columns, rows, PrintableTable)
	fmt.Printf("Streams of Feed %s\n", config.FeedID)
	return t.Render()
}

func streamInfo(_ *fisk.ParseContext, config *Config, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	if config.AsCurl {
		return printCurl(api.BuildFetchStreamInfo(ctx, config.FeedID, config.StreamName))
	}

	stream, err := apiClient.FetchStreamInfo(ctx, config.FeedID, config.StreamName)
	if err != nil {
		return err
	}

	unit := ""
	if stream.Unit != nil {
		unit = fmt.Sprintf("%s (%s)", stream.Unit.Label, stream.Unit.Symbol)
	}

	rows := []table.Row{
		{"Name", stream.Name},
		{"Current Value", stream.CurrentValue},
		{"Unit", unit},
		{"Min", stream.MinValue},
		{"Max", stream.MaxValue},
		{"Tags", formatTags(stream.Tags)},
		{"Updated", stream.At.Format(time.RFC3339)},
	}

	fmt.Printf("Information for Stream %s of Feed %s\n", stream.Name, config.FeedID)
	return NewKVTable(rows).Render()
}

func streamValues(_ *fisk.ParseContext, config *Config, s *StreamConfig, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	options, err := streamValuesOptions(s)
	if err != nil {
		return err
	}

	if config.AsCurl {
		return printCurl(api.BuildFetchStreamValues(ctx, config.FeedID, config.StreamName, options))
	}

	datapoints, err := apiClient.FetchStreamValues(ctx, config.FeedID, config.StreamName, options)
	if err != nil {
		return err
	}

	if len(datapoints) == 0 {
		fmt.Println(text.FgBlue.Sprint("No values in this window"))
		return nil
	}

	columns := []table.Column{
		{Title: "At", Width: 25},
		{Title: "Value", Width: 20},
		{Title: "Age", Width: 20},
	}

	rows := []table.Row{}
	for _, datapoint := range datapoints {
		rows = append(rows, table.Row{
			datapoint.At.Format(time.RFC3339),
			datapoint.Value,
			formatAge(datapoint.At),
		})
	}

	t := NewTable(columns, rows, PrintableTable)
	fmt.Printf("Values of Stream %s of Feed %s\n", config.StreamName, config.FeedID)
	return t.Render()
}

// streamValuesOptions translates the flag values into API options, keeping
// a fully-unset flag set as nil so the request carries no query string.
func streamValuesOptions(s *StreamConfig) (*api.StreamValuesOptions, error) {
	if s.Start == "" && s.End == "" && s.Limit == 0 {
		return nil, nil
	}

	start, err := parseTimeFlag(s.Start, "start")
	if err != nil {
		return nil, err
	}
	end, err := parseTimeFlag(s.End, "end")
	if err != nil {
		return nil, err
	}

	return &api.StreamValuesOptions{Start: start, End: end, Limit: s.Limit}, nil
}

func streamUpsert(_ *fisk.ParseContext, config *Config, s *StreamConfig, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	options := api.StreamUpsertOptions{
		CurrentValue: s.CurrentValue,
		Tags:         splitTags(s.Tags),
	}
	if s.UnitLabel != "" || s.UnitSymbol != "" {
		options.Unit = &models.Unit{Label: s.UnitLabel, Symbol: s.UnitSymbol}
	}

	if config.AsCurl {
		return printCurl(api.BuildUpsertStream(ctx, config.FeedID, config.StreamName, options))
	}

	stream, err := apiClient.UpsertStream(ctx, config.FeedID, config.StreamName, options)
	if err != nil {
		return err
	}

	fmt.Print(text.FgGreen.Sprintf("Stream %s saved.\n", stream.Name))
	return nil
}

func streamRm(_ *fisk.ParseContext, config *Config, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	if config.AsCurl {
		return printCurl(api.BuildRemoveStream(ctx, config.FeedID, config.StreamName))
	}

	ok, err := askConfirmation(fmt.Sprintf("Delete stream %s and all of its values?", config.StreamName), false)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Aborted.")
		return nil
	}

	err = apiClient.RemoveStream(ctx, config.FeedID, config.StreamName)
	if err != nil {
		return err
	}

	fmt.Printf("Stream %s has been removed.\n", config.StreamName)
	return nil
}

func streamTail(_ *fisk.ParseContext, config *Config, s *StreamConfig, apiClient api.API) error {
	ctx, err := context.LoadContext(config.ContextName)
	if err != nil {
		return err
	}

	if config.AsCurl {
		return printCurl(api.BuildFetchStreamValues(ctx, config.FeedID, config.StreamName, &api.StreamValuesOptions{Limit: s.Limit}))
	}

	if !isTerminal() {
		return fmt.Errorf("stream tail requires an interactive terminal")
	}

	interval := time.Duration(s.Interval) * time.Second
	model := newTailModel(ctx, apiClient, config.FeedID, config.StreamName, s.Limit, interval)

	_, err = tea.NewProgram(model).Run()
	return err
}

type tailPollMsg struct{}

type tailValuesMsg []models.Datapoint

type tailErrMsg struct{ err error }

type tailModel struct {
	ctx      *context.Context
	client   api.API
	feedID   string
	stream   string
	limit    int
	interval time.Duration
	retry    *backoff.Backoff
	table    table.Model
	err      error
	updated  time.Time
}

func newTailModel(ctx *context.Context, client api.API, feedID, stream string, limit int, interval time.Duration) tailModel {
	columns := []table.Column{
		{Title: "At", Width: 25},
		{Title: "Value", Width: 20},
		{Title: "Age", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(limit),
	)
	t.SetStyles(tableStyles(PrintableTable))

	return tailModel{
		ctx:      ctx,
		client:   client,
		feedID:   feedID,
		stream:   stream,
		limit:    limit,
		interval: interval,
		retry: &backoff.Backoff{
			Min:    interval,
			Max:    time.Minute,
			Factor: 2,
			Jitter: true,
		},
		table: t,
	}
}

func (m tailModel) Init() tea.Cmd {
	return m.fetch()
}

func (m tailModel) fetch() tea.Cmd {
	return func() tea.Msg {
		datapoints, err := m.client.FetchStreamValues(m.ctx, m.feedID, m.stream, &api.StreamValuesOptions{Limit: m.limit})
		if err != nil {
			return tailErrMsg{err}
		}
		return tailValuesMsg(datapoints)
	}
}

func tailTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tailPollMsg{}
	})
}

func (m tailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tailPollMsg:
		return m, m.fetch()

	case tailValuesMsg:
		m.err = nil
		m.updated = time.Now()
		m.retry.Reset()

		rows := []table.Row{}
		for _, datapoint := range msg {
			rows = append(rows, table.Row{
				datapoint.At.Format(time.RFC3339),
				datapoint.Value,
				formatAge(datapoint.At),
			})
		}
		m.table.SetRows(rows)

		return m, tailTick(m.interval)

	case tailErrMsg:
		// Keep showing the last good rows, pace retries with backoff.
		m.err = msg.err
		return m, tailTick(m.retry.Duration())
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var tailErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

func (m tailModel) View() string {
	view := fmt.Sprintf("\nTailing stream %s of feed %s (q to quit)\n\n%s\n", m.stream, m.feedID, m.table.View())
	if m.err != nil {
		view += tailErrStyle.Render(fmt.Sprintf("poll failed: %v", m.err)) + "\n"
	} else if !m.updated.IsZero() {
		view += fmt.Sprintf("updated %s\n", m.updated.Format(time.TimeOnly))
	}
	return view
}
