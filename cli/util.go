package cli

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/choria-io/fisk"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"moul.io/http2curl"

	"github.com/telemetrahq/telemetra-cli/api"
	"github.com/telemetrahq/telemetra-cli/context"
)

func addCheat(name string, cmd *fisk.CmdClause) {
	cmd.CheatFile(fs, name, fmt.Sprintf("cheats/%s.md", name))
}

func formatCurl(req *http.Request) (string, error) {
	curl, err := http2curl.GetCurlCommand(req)
	if err != nil {
		return "", fmt.Errorf("error generating curl command: %w", err)
	}
	return curl.String(), nil
}

func askConfirmation(prompt string, dflt bool) (bool, error) {
	ans := dflt

	err := survey.AskOne(&survey.Confirm{
		Message: prompt,
		Default: dflt,
	}, &ans)

	return ans, err
}

func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func formatAge(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}

func formatTags(tags []string) string {
	return strings.Join(tags, ", ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func parseFloatFlag(value, name string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return f, nil
}

func parseTimeFlag(value, name string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s timestamp %q, expected RFC 3339: %w", name, value, err)
	}
	return t, nil
}

// promptForFeed lets the user pick a feed when the argument was omitted.
func promptForFeed(ctx *context.Context, apiClient api.API) (string, error) {
	feeds, err := apiClient.FetchFeeds(ctx)
	if err != nil {
		return "", fmt.Errorf("could not list feeds: %w", err)
	}

	if len(feeds) == 0 {
		return "", fmt.Errorf("no feeds available")
	}

	options := make([]string, len(feeds))
	for i, feed := range feeds {
		options[i] = fmt.Sprintf("%s (%s)", feed.ID, feed.Name)
	}

	prompt := &survey.Select{
		Message: "Choose a feed:",
		Options: options,
		Filter: func(filterValue string, optValue string, index int) bool {
			return strings.Contains(strings.ToLower(optValue), strings.ToLower(filterValue))
		},
	}

	var choice string
	err = survey.AskOne(prompt, &choice)
	if err != nil {
		return "", err
	}

	return strings.SplitN(choice, " ", 2)[0], nil
}
